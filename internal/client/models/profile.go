package models

import "time"

// ProfileID is the fixed primary key of the single user_email row.
const ProfileID = 1

// UserProfile is the locally persisted identity of the device user.
// At most one exists; a new login replaces it.
type UserProfile struct {
	Email     string
	CreatedAt time.Time
}

// Usable reports whether the profile can back a LoggedIn session.
func (p *UserProfile) Usable() bool {
	return p != nil && p.Email != ""
}
