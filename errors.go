package copydir

import (
	"errors"
	"fmt"
)

// Kind classifies a copy failure.
type Kind int

const (
	// KindIO wraps an underlying filesystem error not otherwise classified.
	KindIO Kind = iota
	// KindSourceDoesNotExist means the source path does not exist.
	KindSourceDoesNotExist
	// KindDestinationExists means something already occupies the destination.
	KindDestinationExists
	// KindSourceIsDestinationRoot means the walk reached the destination of
	// its own copy, i.e. the destination is nested inside the source.
	KindSourceIsDestinationRoot
	// KindTargetNotADirectory means the resolved merge target exists but is
	// not a directory.
	KindTargetNotADirectory
	// KindCannotDetermineBasename means the source path has no usable final
	// component to nest under an existing destination directory.
	KindCannotDetermineBasename
	// KindUnsupportedEntry means the entry is neither a regular file, a
	// directory, nor a symlink (e.g. a socket or device node).
	KindUnsupportedEntry
)

var kindNames = [...]string{
	KindIO:                      "io",
	KindSourceDoesNotExist:      "source_does_not_exist",
	KindDestinationExists:       "destination_exists",
	KindSourceIsDestinationRoot: "source_is_destination_root",
	KindTargetNotADirectory:     "target_not_a_directory",
	KindCannotDetermineBasename: "cannot_determine_basename",
	KindUnsupportedEntry:        "unsupported_entry",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Error describes a single copy failure with enough context to act on it.
// Failures reported through a Policy and the hard errors returned by the
// top-level operations are all of this type.
type Error struct {
	Kind   Kind
	Source string
	Dest   string
	Err    error // underlying cause, set for KindIO
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindSourceDoesNotExist:
		return fmt.Sprintf("source %s does not exist", e.Source)
	case KindDestinationExists:
		return fmt.Sprintf("destination %s already exists", e.Dest)
	case KindSourceIsDestinationRoot:
		return fmt.Sprintf("cannot copy %s into itself at %s", e.Source, e.Dest)
	case KindTargetNotADirectory:
		return fmt.Sprintf("target %s is not a directory", e.Dest)
	case KindCannotDetermineBasename:
		return fmt.Sprintf("cannot determine basename of %s", e.Source)
	case KindUnsupportedEntry:
		return fmt.Sprintf("unsupported entry type at %s", e.Source)
	default:
		if e.Source != "" {
			return fmt.Sprintf("copy %s: %v", e.Source, e.Err)
		}
		return fmt.Sprintf("copy %s: %v", e.Dest, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// ioError wraps an underlying filesystem failure, preserving an existing
// *Error unchanged.
func ioError(src, dst string, err error) *Error {
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}
	return &Error{Kind: KindIO, Source: src, Dest: dst, Err: err}
}
