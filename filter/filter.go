// Package filter implements rsync-style include/exclude pattern chains used
// to select which entries a copy visits. Paths are matched in slash form,
// relative to the copy root, exactly as a recursive walk produces them.
package filter

// rule pairs a compiled pattern with its verdict.
type rule struct {
	pat     *pattern
	include bool
}

// Chain holds an ordered list of filter rules plus size bounds. Rules are
// evaluated in insertion order and the first match wins; an unmatched path
// is included.
type Chain struct {
	rules   []rule
	minSize int64
	maxSize int64
}

// NewChain creates an empty filter chain.
func NewChain() *Chain {
	return &Chain{}
}

// AddExclude appends an exclude rule for pattern.
func (c *Chain) AddExclude(pattern string) error {
	return c.add(pattern, false)
}

// AddInclude appends an include rule for pattern.
func (c *Chain) AddInclude(pattern string) error {
	return c.add(pattern, true)
}

func (c *Chain) add(pat string, include bool) error {
	p, err := compile(pat)
	if err != nil {
		return err
	}
	c.rules = append(c.rules, rule{pat: p, include: include})
	return nil
}

// SetMinSize sets the minimum file size, in bytes. Zero disables it.
func (c *Chain) SetMinSize(n int64) { c.minSize = n }

// SetMaxSize sets the maximum file size, in bytes. Zero disables it.
func (c *Chain) SetMaxSize(n int64) { c.maxSize = n }

// Empty reports whether the chain has no rules and no size bounds.
func (c *Chain) Empty() bool {
	return len(c.rules) == 0 && c.minSize == 0 && c.maxSize == 0
}

// Match reports whether relPath should be copied. relPath is relative to
// the copy root and slash-separated; size is consulted only for files.
func (c *Chain) Match(relPath string, isDir bool, size int64) bool {
	if !isDir && !c.sizeOK(size) {
		return false
	}
	for _, r := range c.rules {
		if r.pat.match(relPath, isDir) {
			return r.include
		}
	}
	return true
}

func (c *Chain) sizeOK(size int64) bool {
	if c.minSize > 0 && size < c.minSize {
		return false
	}
	if c.maxSize > 0 && size > c.maxSize {
		return false
	}
	return true
}
