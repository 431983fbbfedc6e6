package copydir

import "fmt"

// Stats counts what a copy operation did. The walk is single-threaded, so
// plain integers suffice; supply one via Options.Stats to have it filled in.
type Stats struct {
	FilesCopied     int64
	DirsCreated     int64
	SymlinksCreated int64
	BytesCopied     int64
	EntriesSkipped  int64 // filtered out, not errors
	ErrorsReported  int64
}

// Summary renders a one-line human-readable summary.
func (s *Stats) Summary() string {
	out := fmt.Sprintf("%d files, %d dirs, %d symlinks, %d bytes",
		s.FilesCopied, s.DirsCreated, s.SymlinksCreated, s.BytesCopied)
	if s.EntriesSkipped > 0 {
		out += fmt.Sprintf(", %d skipped", s.EntriesSkipped)
	}
	if s.ErrorsReported > 0 {
		out += fmt.Sprintf(", %d errors", s.ErrorsReported)
	}
	return out
}
