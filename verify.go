package copydir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// VerifyResult holds the outcome of a verification pass.
type VerifyResult struct {
	Verified   int64
	Failed     int64
	Mismatches []Mismatch
}

// Mismatch records one entry whose copy does not match its source.
type Mismatch struct {
	Path    string // relative to the roots
	Reason  string
	SrcHash string // set for content mismatches
	DstHash string
}

// VerifyTree walks the tree at src and checks that dst holds a faithful
// copy: regular files are compared by BLAKE3 checksum, symlinks by target.
// Missing or unreadable destination entries count as failures. It returns a
// hard error only when either root cannot be read at all.
func VerifyTree(src, dst string) (*VerifyResult, error) {
	srcInfo, err := os.Lstat(src)
	if err != nil {
		return nil, fmt.Errorf("verify source: %w", err)
	}
	if _, err := os.Lstat(dst); err != nil {
		return nil, fmt.Errorf("verify destination: %w", err)
	}

	result := &VerifyResult{}
	if !srcInfo.IsDir() {
		// Single-entry copy: compare the roots directly.
		if srcInfo.Mode().IsRegular() {
			verifyFile(result, filepath.Base(src), src, dst)
		} else if srcInfo.Mode()&fs.ModeSymlink != 0 {
			verifySymlink(result, filepath.Base(src), src, dst)
		}
		return result, nil
	}
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(src, path)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			return nil
		}

		switch {
		case d.Type().IsRegular():
			verifyFile(result, rel, path, filepath.Join(dst, rel))
		case d.Type()&fs.ModeSymlink != 0:
			verifySymlink(result, rel, path, filepath.Join(dst, rel))
		default:
			// Directories are covered by their contents; other kinds are
			// never copied.
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("verify walk: %w", err)
	}
	return result, nil
}

func verifyFile(result *VerifyResult, rel, srcPath, dstPath string) {
	srcHash, err := hashFile(srcPath)
	if err != nil {
		result.fail(Mismatch{Path: rel, Reason: fmt.Sprintf("source unreadable: %v", err)})
		return
	}
	dstHash, err := hashFile(dstPath)
	if err != nil {
		reason := "destination unreadable"
		if errors.Is(err, fs.ErrNotExist) {
			reason = "missing in destination"
		}
		result.fail(Mismatch{Path: rel, Reason: reason, SrcHash: srcHash})
		return
	}
	if srcHash != dstHash {
		result.fail(Mismatch{Path: rel, Reason: "content mismatch", SrcHash: srcHash, DstHash: dstHash})
		return
	}
	result.Verified++
}

func verifySymlink(result *VerifyResult, rel, srcPath, dstPath string) {
	srcTarget, err := os.Readlink(srcPath)
	if err != nil {
		result.fail(Mismatch{Path: rel, Reason: fmt.Sprintf("source unreadable: %v", err)})
		return
	}
	dstTarget, err := os.Readlink(dstPath)
	if err != nil {
		reason := "destination unreadable"
		if errors.Is(err, fs.ErrNotExist) {
			reason = "missing in destination"
		}
		result.fail(Mismatch{Path: rel, Reason: reason})
		return
	}
	if srcTarget != dstTarget {
		result.fail(Mismatch{Path: rel, Reason: fmt.Sprintf("link target %q != %q", dstTarget, srcTarget)})
		return
	}
	result.Verified++
}

func (r *VerifyResult) fail(m Mismatch) {
	r.Failed++
	r.Mismatches = append(r.Mismatches, m)
}
