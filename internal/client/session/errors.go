package session

import "errors"

var (
	ErrLoginInProgress = errors.New("login already in progress")
	ErrNotInitialized  = errors.New("session not initialized")
)
