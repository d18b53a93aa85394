package identity

import (
	"context"

	"github.com/healthguidelab/keto365/internal/client/models"
)

type Outcome int

const (
	OutcomeCancelled Outcome = iota
	OutcomeSuccess
	OutcomeSuccessNoToken
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeSuccess:
		return "success"
	case OutcomeSuccessNoToken:
		return "success_no_token"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Result is the single resolution of a sign-in attempt.
type Result struct {
	Outcome Outcome
	Email   string
	IDToken string // set for OutcomeSuccess only
	Err     error  // set for OutcomeFailure only
}

func Cancelled() Result { return Result{Outcome: OutcomeCancelled} }

// Success builds a result carrying a token. An empty token is reported as
// SuccessNoToken.
func Success(email, token string) Result {
	if token == "" {
		return SuccessNoToken(email)
	}
	return Result{Outcome: OutcomeSuccess, Email: email, IDToken: token}
}

func SuccessNoToken(email string) Result {
	return Result{Outcome: OutcomeSuccessNoToken, Email: email}
}

func Failure(err error) Result {
	return Result{Outcome: OutcomeFailure, Err: err}
}

// Provider performs the interactive sign-in flow.
type Provider interface {
	// SignIn runs one attempt and blocks until it resolves.
	SignIn(ctx context.Context) Result

	// LastSignedInAccount returns the account cached on this device by a
	// previous sign-in, or nil.
	LastSignedInAccount(ctx context.Context) (*models.DeviceAccount, error)
}

// Identity is what a successful verification vouches for.
type Identity struct {
	Subject       string
	Email         string
	EmailVerified bool
}

// Verifier exchanges a provider token for a verified Identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// UnavailableVerifier is used when no verification key is configured.
type UnavailableVerifier struct{}

func (UnavailableVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	return Identity{}, ErrVerificationUnavailable
}
