package style

// Status is the state of one destination in check or sync output
type Status string

const (
	StatusInSync Status = "in-sync" // Check found nothing to do
	StatusDrift  Status = "drift"   // Check found a difference
	StatusSynced Status = "synced"  // Sync applied the plan
	StatusFailed Status = "failed"  // Planning or execution failed
)

// Tag returns the markup tag used to color the status
func (s Status) Tag() string {
	switch s {
	case StatusInSync, StatusSynced:
		return "success"
	case StatusDrift:
		return "warning"
	case StatusFailed:
		return "error"
	default:
		return "info"
	}
}

// Indicator returns the single-character marker for the status
func (s Status) Indicator() string {
	switch s {
	case StatusInSync, StatusSynced:
		return "✓"
	case StatusDrift:
		return "!"
	case StatusFailed:
		return "✗"
	default:
		return "○"
	}
}

// Marker returns the indicator wrapped in the status markup
func (s Status) Marker() string {
	return "[" + s.Tag() + "]" + s.Indicator() + "[/" + s.Tag() + "]"
}
