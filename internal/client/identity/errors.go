package identity

import "errors"

var (
	ErrUserCancelled           = errors.New("sign-in cancelled by user")
	ErrNoEmailAvailable        = errors.New("no email available from sign-in")
	ErrVerificationUnavailable = errors.New("token verification unavailable")
	ErrVerificationFailed      = errors.New("token verification failed")
)

// ProviderFailure is an error reported by the identity provider itself.
type ProviderFailure struct {
	Message string
	Err     error
}

func (e *ProviderFailure) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "identity provider failure"
}

func (e *ProviderFailure) Unwrap() error { return e.Err }
