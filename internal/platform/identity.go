package platform

import (
	"os"

	"golang.org/x/sys/unix"
)

// IdentityOf returns the identity of the filesystem object at path. Symlinks
// are not followed: the link itself is identified, not its target. The
// dev/ino extraction is selected per OS family at compile time.
func IdentityOf(path string) (Identity, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return Identity{}, &os.PathError{Op: "lstat", Path: path, Err: err}
	}
	return identityFromStat(&st), nil
}
