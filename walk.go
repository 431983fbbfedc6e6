package copydir

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bamsammich/copydir/filter"
	"github.com/bamsammich/copydir/internal/platform"
)

// rootID carries the identity of the destination root directory through the
// recursive walk. It is unset until the first directory visit creates the
// destination root, and immutable afterwards. Threaded by value: each call
// only passes it forward, never back.
type rootID struct {
	id  platform.Identity
	set bool
}

// copier holds the per-operation state threaded through one walk.
type copier struct {
	policy Policy
	filter *filter.Chain
	stats  *Stats
}

func (c *copier) report(err *Error) {
	if c.stats != nil {
		c.stats.ErrorsReported++
	}
	c.policy.Report(err)
}

// copyEntry copies one filesystem entry to dst, dispatching on its kind.
// Every failure is handed to the policy and aborts this branch only;
// sibling branches continue. rel is the path relative to the copy root
// ("" for the root itself), used for filtering.
func (c *copier) copyEntry(src, dst string, root rootID, rel string) {
	info, err := os.Lstat(src)
	if err != nil {
		c.report(ioError(src, dst, err))
		return
	}

	if rel != "" && c.filter != nil && !c.filter.Match(rel, info.IsDir(), info.Size()) {
		if c.stats != nil {
			c.stats.EntriesSkipped++
		}
		return
	}

	switch {
	case info.Mode().IsRegular():
		c.copyFile(src, dst, info)
	case info.IsDir():
		c.copyDir(src, dst, info, root, rel)
	case info.Mode()&fs.ModeSymlink != 0:
		c.copySymlink(src, dst)
	default:
		c.report(&Error{Kind: KindUnsupportedEntry, Source: src, Dest: dst})
	}
}

// copyFile copies a regular file's bytes to dst, creating or truncating it
// with the source's permission bits.
func (c *copier) copyFile(src, dst string, info fs.FileInfo) {
	dstFd, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		c.report(ioError(src, dst, err))
		return
	}

	result, err := platform.CopyFile(platform.CopyFileParams{
		DstFd:   dstFd,
		SrcPath: src,
		SrcSize: info.Size(),
	})
	closeErr := dstFd.Close()
	if err != nil {
		c.report(ioError(src, dst, err))
		return
	}
	if closeErr != nil {
		c.report(ioError(src, dst, closeErr))
		return
	}

	if c.stats != nil {
		c.stats.FilesCopied++
		c.stats.BytesCopied += result.BytesWritten
	}
}

// copyDir recreates a directory at dst and recurses into its children.
//
// The first directory visited is the copy root: its destination is created
// and that destination's identity is captured. Every later directory is
// compared against it, so a destination nested inside the source is skipped
// instead of recursed into forever. Only the single root identity is
// checked; copying a directory into a sibling of itself is fine.
func (c *copier) copyDir(src, dst string, info fs.FileInfo, root rootID, rel string) {
	if root.set {
		id, err := platform.IdentityOf(src)
		if err != nil {
			c.report(ioError(src, dst, err))
			return
		}
		if id == root.id {
			c.report(&Error{Kind: KindSourceIsDestinationRoot, Source: src, Dest: dst})
			return
		}
	}

	if err := os.MkdirAll(dst, 0o755); err != nil {
		c.report(ioError(src, dst, err))
		return
	}

	if !root.set {
		id, err := platform.IdentityOf(dst)
		if err != nil {
			c.report(ioError(src, dst, err))
			return
		}
		root = rootID{id: id, set: true}
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		c.report(ioError(src, dst, err))
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		childRel := name
		if rel != "" {
			childRel = rel + "/" + name
		}
		c.copyEntry(filepath.Join(src, name), filepath.Join(dst, name), root, childRel)
	}

	// Permissions go on last so a restrictive source mode (say, no write
	// bit) cannot block writing the directory's own contents.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		c.report(ioError(src, dst, err))
		return
	}

	if c.stats != nil {
		c.stats.DirsCreated++
	}
}

// copySymlink reproduces a symlink's target verbatim; links are never
// dereferenced.
func (c *copier) copySymlink(src, dst string) {
	target, err := os.Readlink(src)
	if err != nil {
		c.report(ioError(src, dst, err))
		return
	}

	// Merge mode may find a stale entry in the way.
	_ = os.Remove(dst)

	if err := os.Symlink(target, dst); err != nil {
		c.report(ioError(src, dst, err))
		return
	}

	if c.stats != nil {
		c.stats.SymlinksCreated++
	}
}
