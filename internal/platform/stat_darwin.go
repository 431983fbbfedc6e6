//go:build darwin

package platform

import "golang.org/x/sys/unix"

// identityFromStat extracts the device/inode pair from a stat result.
func identityFromStat(st *unix.Stat_t) Identity {
	//nolint:gosec // G115: dev_t is int32 on darwin, always non-negative
	return Identity{Dev: uint64(st.Dev), Ino: st.Ino}
}
