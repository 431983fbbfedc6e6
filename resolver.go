package copydir

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bamsammich/copydir/internal/platform"
)

// resolveDest decides the actual destination path for a merge-mode copy,
// following cp target-naming rules:
//
//   - nothing at dst       → dst itself
//   - dst is a directory   → dst/basename(src)
//   - dst is anything else → refuse
//
// When createMissing is set and the resolved path does not exist yet, it is
// created as a directory (the caller passes this only for directory sources).
func resolveDest(src, dst string, createMissing bool) (string, *Error) {
	info, err := os.Lstat(dst)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return "", ioError(src, dst, err)
		}
		// Nothing at dst: it becomes the destination directly.
		if createMissing {
			if err := os.MkdirAll(dst, 0o755); err != nil {
				return "", ioError(src, dst, err)
			}
		}
		return dst, nil
	}

	if !info.IsDir() {
		return "", &Error{Kind: KindDestinationExists, Source: src, Dest: dst}
	}

	// dst is an existing directory: nest the source's basename under it.
	// "." collapses to no name at all and ".." would name the parent,
	// sending the copy outside dst entirely; neither is a usable basename.
	base := filepath.Base(filepath.Clean(src))
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", &Error{Kind: KindCannotDetermineBasename, Source: src, Dest: dst}
	}

	target := filepath.Join(dst, base)
	tinfo, err := os.Lstat(target)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return "", ioError(src, target, err)
		}
		if createMissing {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return "", ioError(src, target, err)
			}
		}
		return target, nil
	}

	if !tinfo.IsDir() {
		return "", &Error{Kind: KindTargetNotADirectory, Source: src, Dest: target}
	}

	// Reusing an existing directory can resolve right back to the source
	// (copying D/sub into D yields D/sub): walking that would truncate
	// every source file onto itself. Refuse before touching anything.
	if sid, ierr := platform.IdentityOf(src); ierr == nil {
		tid, terr := platform.IdentityOf(target)
		if terr != nil {
			return "", ioError(src, target, terr)
		}
		if sid == tid {
			return "", &Error{Kind: KindSourceIsDestinationRoot, Source: src, Dest: target}
		}
	}
	return target, nil
}
