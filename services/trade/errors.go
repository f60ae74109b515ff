package trade

import "strings"

// ValidationError reports malformed or missing input fields.
type ValidationError struct {
	Msg     string
	Details []string
}

func (e ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Msg
	}
	return e.Msg + ": " + strings.Join(e.Details, "; ")
}
