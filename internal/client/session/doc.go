// Package session reconciles the persisted login flag, the stored user
// profile and the outcome of sign-in attempts into a single State.
//
// # States
//
//	Loading ──Init──► LoggedOut ──Login──► SigningIn ──► LoggedIn
//	   │                  ▲                    │
//	   └──Init──► LoggedIn └────── rejected ───┘
//
// Init moves Loading to LoggedIn only when the flag is set and a profile
// with a non-empty email exists; anything else is LoggedOut. LoggedIn has
// no outgoing transition.
//
// # Login policy
//
// Any attempt that yields a non-empty email is accepted, even when the
// token could not be verified; the State then carries an advisory message.
// A verified identity's email wins over the account email. A failed flow
// falls back to the account cached on the device. Only a cancelled flow or
// a flow without any email ends in LoggedOut, with stores untouched.
//
// # Concurrency
//
// Controller is safe for concurrent use. At most one Login runs at a time;
// an overlapping call returns ErrLoginInProgress. Subscribers receive the
// latest State; intermediate states may be skipped by slow readers.
package session
