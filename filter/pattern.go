package filter

import (
	"regexp"
	"strings"
)

// pattern is one compiled rsync-style glob.
//
// A trailing / restricts the pattern to directories. A pattern containing a
// / (leading or interior) is anchored to the copy root; one without matches
// the basename at any depth.
type pattern struct {
	re      *regexp.Regexp
	source  string
	dirOnly bool
}

func compile(glob string) (*pattern, error) {
	p := &pattern{source: glob}

	if rest, ok := strings.CutSuffix(glob, "/"); ok {
		p.dirOnly = true
		glob = rest
	}

	anchored := strings.Contains(glob, "/")
	glob = strings.TrimPrefix(glob, "/")

	var b strings.Builder
	if anchored {
		b.WriteString("^")
	} else {
		b.WriteString("(^|/)")
	}
	translate(&b, glob)
	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, err
	}
	p.re = re
	return p, nil
}

func (p *pattern) match(relPath string, isDir bool) bool {
	if p.dirOnly && !isDir {
		return false
	}
	return p.re.MatchString(relPath)
}

// translate appends the regex form of an rsync glob to b: ** crosses path
// separators, * and ? stop at them, [...] passes through as a class with !
// mapped to ^.
func translate(b *strings.Builder, glob string) {
	for i := 0; i < len(glob); {
		switch glob[i] {
		case '*':
			switch {
			case strings.HasPrefix(glob[i:], "**/"):
				b.WriteString("(.*/)?")
				i += 3
			case strings.HasPrefix(glob[i:], "**"):
				b.WriteString(".*")
				i += 2
			default:
				b.WriteString("[^/]*")
				i++
			}
		case '?':
			b.WriteString("[^/]")
			i++
		case '[':
			i += writeClass(b, glob[i:])
		default:
			b.WriteString(regexp.QuoteMeta(glob[i : i+1]))
			i++
		}
	}
}

// writeClass emits the character class opening glob and returns how many
// input bytes it consumed. An unterminated class degrades to a literal [.
func writeClass(b *strings.Builder, glob string) int {
	// The closing ] is literal when it is the first class member.
	end := 1
	if end < len(glob) && glob[end] == '!' {
		end++
	}
	if end < len(glob) && glob[end] == ']' {
		end++
	}
	for end < len(glob) && glob[end] != ']' {
		end++
	}
	if end == len(glob) {
		b.WriteString(regexp.QuoteMeta("["))
		return 1
	}

	members := glob[1:end]
	if rest, ok := strings.CutPrefix(members, "!"); ok {
		members = "^" + rest
	}
	b.WriteString("[" + members + "]")
	return end + 1
}
