package compare

import "fmt"

// Reason explains why a destination is not in sync
type Reason string

const (
	ReasonNone         Reason = ""
	ReasonMissing      Reason = "missing"
	ReasonUnexpected   Reason = "unexpected"
	ReasonContent      Reason = "content"
	ReasonTypeMismatch Reason = "type-mismatch"
)

// Result is the outcome of a comparison. Path names the offending file when
// InSync is false.
type Result struct {
	InSync bool
	Reason Reason
	Path   string
}

// InSync is the convergent result
func InSync() Result {
	return Result{InSync: true}
}

// Drift builds a non-convergent result
func Drift(reason Reason, path string) Result {
	return Result{Reason: reason, Path: path}
}

// String describes the result for verbose output
func (r Result) String() string {
	if r.InSync {
		return "in sync"
	}
	switch r.Reason {
	case ReasonMissing:
		return fmt.Sprintf("missing %s", r.Path)
	case ReasonUnexpected:
		return fmt.Sprintf("unexpected file %s", r.Path)
	case ReasonContent:
		return fmt.Sprintf("content differs at %s", r.Path)
	case ReasonTypeMismatch:
		return fmt.Sprintf("file/directory mismatch at %s", r.Path)
	default:
		return "out of sync"
	}
}
