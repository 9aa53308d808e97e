//go:build darwin

package writer

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile uses F_FULLFSYNC when full is set, so the data reaches the
// physical disk rather than the drive cache. Otherwise it falls back to fsync.
func syncFile(f *os.File, full bool) error {
	if full {
		_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
		return err
	}
	return unix.Fsync(int(f.Fd()))
}
