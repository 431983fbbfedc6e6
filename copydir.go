// Package copydir copies a file or directory tree from one path to another
// in a straightforward and predictable way, mirroring cp's target-naming
// rules while refusing to copy a directory into a destination nested inside
// itself.
//
// Known limitations, by design: hard links are copied as independent files,
// filesystem boundaries may be crossed, and symlinks are copied as links,
// never followed. Identity-based cycle detection cannot see through path
// aliases the platform reports as distinct filesystem objects (bind mounts,
// unresolved symlink ancestors).
package copydir

import (
	"errors"
	"io/fs"
	"os"

	"github.com/bamsammich/copydir/filter"
)

// Options adjusts a strict-mode copy. The zero value copies everything and
// discards per-entry errors.
type Options struct {
	// Policy receives every non-fatal per-entry error. nil discards them.
	Policy Policy

	// Filter selects which entries to copy, matched against paths relative
	// to the copy root. nil copies everything. A filtered directory's
	// subtree is not visited.
	Filter *filter.Chain

	// Stats, when non-nil, is filled with counters for this operation.
	Stats *Stats
}

// CopyTree copies the file or directory tree at src to dst.
//
// src must exist and dst must not; both are checked before any filesystem
// mutation. Per-entry failures during the walk abandon only the failing
// branch and are discarded — use CopyTreeWithPolicy to observe them.
func CopyTree(src, dst string) error {
	return CopyTreeWithOptions(src, dst, Options{})
}

// CopyTreeWithPolicy is CopyTree with per-entry errors routed through the
// supplied policy instead of being discarded.
func CopyTreeWithPolicy(src, dst string, policy Policy) error {
	return CopyTreeWithOptions(src, dst, Options{Policy: policy})
}

// CopyTreeWithOptions is CopyTree with filtering, stats and an error policy.
func CopyTreeWithOptions(src, dst string, opts Options) error {
	if opts.Policy == nil {
		opts.Policy = DiscardPolicy{}
	}

	if _, err := os.Lstat(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Error{Kind: KindSourceDoesNotExist, Source: src, Dest: dst}
		}
		return ioError(src, dst, err)
	}
	if _, err := os.Lstat(dst); err == nil {
		return &Error{Kind: KindDestinationExists, Source: src, Dest: dst}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return ioError(src, dst, err)
	}

	c := &copier{policy: opts.Policy, filter: opts.Filter, stats: opts.Stats}
	c.copyEntry(src, dst, rootID{}, "")
	return nil
}

// CopyTreeMerge copies src into dst in merge mode: dst may already exist as
// a directory, in which case the copy lands at dst/basename(src); a missing
// dst is created. It fails outright only on precondition errors (missing
// source, destination occupied by a non-directory, unresolvable basename,
// or a destination that resolves back to the source itself).
// Per-entry errors are accumulated, in walk order, into the returned slice.
func CopyTreeMerge(src, dst string) ([]*Error, error) {
	_, errs, err := CopyTreeMergeWithOptions(src, dst, Options{})
	return errs, err
}

// CopyTreeMergeWithOptions is CopyTreeMerge with filtering and stats. It
// additionally returns the path the copy actually landed at, which differs
// from dst when the source was nested under an existing directory. Errors
// are still accumulated into the returned slice; a non-nil opts.Policy
// additionally sees each one as it occurs.
func CopyTreeMergeWithOptions(src, dst string, opts Options) (string, []*Error, error) {
	srcInfo, err := os.Lstat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, &Error{Kind: KindSourceDoesNotExist, Source: src, Dest: dst}
		}
		return "", nil, ioError(src, dst, err)
	}

	// Pre-creating the resolved destination only makes sense for directory
	// sources; a file source writes the target itself.
	target, rerr := resolveDest(src, dst, srcInfo.IsDir())
	if rerr != nil {
		return "", nil, rerr
	}

	policy := &teePolicy{next: opts.Policy}
	c := &copier{policy: policy, filter: opts.Filter, stats: opts.Stats}
	c.copyEntry(src, target, rootID{}, "")
	return target, policy.collect.Errors, nil
}
