//go:build linux

package platform

import "golang.org/x/sys/unix"

// identityFromStat extracts the device/inode pair from a stat result.
func identityFromStat(st *unix.Stat_t) Identity {
	return Identity{Dev: st.Dev, Ino: st.Ino}
}
