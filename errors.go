package talentpdf

import (
	"errors"
	"fmt"
)

// Sentinel errors for report generation failure conditions.
var (
	ErrUnknownReport  = errors.New("talentpdf: unknown report kind")
	ErrInvalidPayload = errors.New("talentpdf: invalid report payload")
	ErrInvalidParam   = errors.New("talentpdf: invalid parameter")
	ErrFinalized      = errors.New("talentpdf: document is finalized")
	ErrRender         = errors.New("talentpdf: rendering failed")
)

// ReportError represents an error that occurred during a specific generation step.
// It wraps an underlying error and includes the operation name for context.
type ReportError struct {
	Op   string // operation name, e.g. "Decode", "Output"
	Kind Kind   // report kind, empty when not known yet
	Err  error  // underlying error
}

func (e *ReportError) Error() string {
	prefix := "talentpdf." + e.Op
	if e.Kind != "" {
		prefix += "[" + string(e.Kind) + "]"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	}
	return prefix + ": unknown error"
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a ReportError wrapping err with operation context.
func NewReportError(op string, kind Kind, err error) *ReportError {
	return &ReportError{Op: op, Kind: kind, Err: err}
}
