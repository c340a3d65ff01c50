//go:build linux

package dedup

import (
	"os"
	"syscall"
	"time"
)

// changeTime returns the inode change time (ctime) for info, or the zero
// time if the underlying stat data is unavailable.
func changeTime(info os.FileInfo) time.Time {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}
	}

	return time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec)
}
