//go:build !linux && !darwin

package platform

import "golang.org/x/sys/unix"

// identityFromStat extracts the device/inode pair from a stat result.
// Stat_t field widths vary across the BSDs, so both are widened.
func identityFromStat(st *unix.Stat_t) Identity {
	return Identity{Dev: uint64(st.Dev), Ino: uint64(st.Ino)}
}
