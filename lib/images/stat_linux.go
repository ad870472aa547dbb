//go:build linux

package images

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// fileTimes returns the inode change time and modification time of path.
func fileTimes(path string, info os.FileInfo) (created, modified time.Time) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return info.ModTime(), info.ModTime()
	}
	return time.Unix(st.Ctim.Unix()), info.ModTime()
}
