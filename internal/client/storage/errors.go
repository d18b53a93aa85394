package storage

import "errors"

var ErrDatabaseUnavailable = errors.New("local database unavailable")
