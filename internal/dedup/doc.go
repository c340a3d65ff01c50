// Package dedup finds files with identical content under a directory tree
// and resolves each duplicate set down to a single retained copy.
//
// Candidate files are enumerated with fastwalk, hashed one at a time in
// fixed-size blocks, and tracked in a digest-keyed retention map. A
// retention policy (keep oldest or keep newest) decides which copy of a
// duplicate pair survives. Optionally, directories left empty are reclaimed
// bottom-up.
package dedup
