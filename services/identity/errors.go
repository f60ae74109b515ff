package identity

import (
	"errors"
	"strings"
)

// ErrInvalidOTP signals a wrong passcode for an otherwise valid identifier.
var ErrInvalidOTP = errors.New("invalid OTP")

// ErrOTPExpired signals a missing or expired passcode.
var ErrOTPExpired = errors.New("OTP not found or expired")

// ErrIdentityNotFound signals that the identifier passed validation but no
// matching identity exists in the directory or the organization store.
var ErrIdentityNotFound = errors.New("identity not found")

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
