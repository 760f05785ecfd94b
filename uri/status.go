package uri

// Status is the result of a parse call.
type Status uint8

const (
	// Success means the grammar matched and the whole input was consumed.
	Success Status = iota
	// Canceled means a hook asked to stop.
	Canceled
	// Error means the grammar did not match, input was left after the match,
	// or a decode buffer was too small.
	Error
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Canceled:
		return "canceled"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}
