// Package profile persists the device user's profile: a singleton row in
// the user_email table keyed by models.ProfileID.
//
// Upsert has replace semantics. Each call overwrites the email and stamps a
// fresh creation time, so no history is retained. Get returns (nil, nil)
// when no login has ever completed on the device.
package profile
