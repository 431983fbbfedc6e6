//go:build !linux && !darwin

package platform

// CopyFile falls back to read/write on platforms without a copy syscall.
func CopyFile(params CopyFileParams) (CopyResult, error) {
	return copyReadWrite(params)
}
