package alerts

// Outcome is how a dialog ended.
type Outcome int

const (
	OutcomeCancelled Outcome = iota
	OutcomeConfirmed
	OutcomeTimedOut
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConfirmed:
		return "confirmed"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// Result settles an alert or confirmation dialog.
type Result struct {
	ID      DialogID
	Outcome Outcome
}

// Bool returns the true/false/null view of the result: ok is false when the
// dialog timed out.
func (r Result) Bool() (value, ok bool) {
	switch r.Outcome {
	case OutcomeConfirmed:
		return true, true
	case OutcomeCancelled:
		return false, true
	}
	return false, false
}

// Confirmed reports whether the user confirmed.
func (r Result) Confirmed() bool {
	return r.Outcome == OutcomeConfirmed
}

// FormResult settles a form dialog. Values is never nil; it is empty unless
// the form was confirmed.
type FormResult struct {
	ID        DialogID
	Confirmed bool
	TimedOut  bool
	Values    map[string]string
}

// InputResult settles an input or select dialog.
type InputResult struct {
	ID        DialogID
	Confirmed bool
	TimedOut  bool
	Value     string
}
