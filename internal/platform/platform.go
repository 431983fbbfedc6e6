// Package platform provides the OS-specific filesystem primitives the walk
// is built on: byte-for-byte file copies using the fastest syscall the
// platform offers, and stable per-object identities for cycle detection.
package platform

import "os"

// CopyMethod identifies which syscall/strategy was used for a copy.
type CopyMethod int

const (
	ReadWrite     CopyMethod = iota
	CopyFileRange            // Linux copy_file_range(2)
	Sendfile                 // Linux sendfile(2)
	Clonefile                // macOS clonefile(2)
)

func (m CopyMethod) String() string {
	switch m {
	case ReadWrite:
		return "read_write"
	case CopyFileRange:
		return "copy_file_range"
	case Sendfile:
		return "sendfile"
	case Clonefile:
		return "clonefile"
	default:
		return "unknown"
	}
}

// CopyResult reports the outcome of a copy operation.
type CopyResult struct {
	BytesWritten int64
	Method       CopyMethod
}

// CopyFileParams describes a whole-file copy into an already-open
// destination.
type CopyFileParams struct {
	DstFd   *os.File
	SrcPath string
	SrcSize int64
}

// Identity uniquely identifies a filesystem object within one filesystem.
// Two paths with equal Identity name the same underlying object. It is used
// only for cycle detection, never for ownership.
type Identity struct {
	Dev uint64
	Ino uint64
}
