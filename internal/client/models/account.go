package models

import "time"

// DeviceAccount is the last account the identity provider signed in on this
// device. It carries no verification proof.
type DeviceAccount struct {
	Email        string    `json:"email"`
	LastSignedIn time.Time `json:"last_signed_in"`
}
