package copydir

import "log/slog"

// Policy decides what happens to non-fatal per-entry errors encountered
// during a copy. Reporting never halts the walk; only the failing branch is
// abandoned. One policy instance governs one top-level operation.
type Policy interface {
	Report(err *Error)
}

// CollectPolicy appends every reported error, in walk order, to Errors.
// The caller owns the slice and inspects it after the copy returns.
type CollectPolicy struct {
	Errors []*Error
}

func (p *CollectPolicy) Report(err *Error) {
	p.Errors = append(p.Errors, err)
}

// LogPolicy forwards reported errors to a slog logger without retaining
// them. A nil Logger falls back to slog.Default().
type LogPolicy struct {
	Logger *slog.Logger
}

func (p *LogPolicy) Report(err *Error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error("copy failed",
		"kind", err.Kind.String(),
		"source", err.Source,
		"destination", err.Dest,
		"error", err,
	)
}

// DiscardPolicy drops every reported error.
type DiscardPolicy struct{}

func (DiscardPolicy) Report(*Error) {}

// teePolicy collects errors for the merge entry points while optionally
// forwarding each one to a caller-supplied policy.
type teePolicy struct {
	collect CollectPolicy
	next    Policy
}

func (p *teePolicy) Report(err *Error) {
	p.collect.Report(err)
	if p.next != nil {
		p.next.Report(err)
	}
}
