// Package identity is the boundary to the external identity provider.
//
// A sign-in attempt resolves to exactly one Result: Cancelled, Success
// (email plus an ID token), SuccessNoToken (a cached account without fresh
// proof) or Failure. A Success token may be checked by a Verifier; the
// JWTVerifier validates the token locally and ProbingVerifier first checks
// that the identity backend answers the standard gRPC health service.
//
// Error taxonomy, matched with errors.Is / errors.As:
//
//   - ErrUserCancelled           the user backed out of the flow
//   - ErrNoEmailAvailable        the flow produced no usable email
//   - ErrVerificationUnavailable the token could not be checked
//   - ErrVerificationFailed      the token was checked and rejected
//   - *ProviderFailure           the provider reported an error
//
// Only the first two block a login; the rest degrade to an accepted login
// with an advisory message (see internal/client/session).
package identity
