package session

import "fmt"

type Kind int

const (
	KindLoading Kind = iota
	KindSigningIn
	KindLoggedOut
	KindLoggedIn
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindSigningIn:
		return "signing_in"
	case KindLoggedOut:
		return "logged_out"
	case KindLoggedIn:
		return "logged_in"
	default:
		return "unknown"
	}
}

// State is the session as seen by the presentation layer.
type State struct {
	Kind Kind

	// Email is set when LoggedIn.
	Email string
	// Advisory is an optional non-blocking notice shown with LoggedIn.
	Advisory string
	// LastError is the message of the last rejected attempt when LoggedOut.
	LastError string
	// Cause classifies LastError or Advisory; see package identity.
	Cause error
}

func Loading() State { return State{Kind: KindLoading} }

func SigningIn() State { return State{Kind: KindSigningIn} }

func LoggedOut(lastError string, cause error) State {
	return State{Kind: KindLoggedOut, LastError: lastError, Cause: cause}
}

func LoggedIn(email, advisory string, cause error) State {
	return State{Kind: KindLoggedIn, Email: email, Advisory: advisory, Cause: cause}
}

func (s State) String() string {
	switch s.Kind {
	case KindLoggedIn:
		return fmt.Sprintf("%s(%s)", s.Kind, s.Email)
	case KindLoggedOut:
		if s.LastError != "" {
			return fmt.Sprintf("%s(%s)", s.Kind, s.LastError)
		}
	}
	return s.Kind.String()
}
