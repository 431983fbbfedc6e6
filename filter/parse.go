package filter

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadFile reads filter rules from a file and appends them to the chain,
// one rule per line: "+ pattern" includes, "- pattern" excludes, and a bare
// pattern excludes (the rsync default). Blank lines and lines starting with
// # are skipped.
func (c *Chain) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open filter file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		include := false
		pat := line
		if rest, ok := strings.CutPrefix(line, "+ "); ok {
			include = true
			pat = strings.TrimSpace(rest)
		} else if rest, ok := strings.CutPrefix(line, "- "); ok {
			pat = strings.TrimSpace(rest)
		}

		if err := c.add(pat, include); err != nil {
			return fmt.Errorf("filter file %s line %d: %w", path, n, err)
		}
	}
	return scanner.Err()
}
