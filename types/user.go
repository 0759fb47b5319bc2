package types

import "time"

// User represents an account in the SimHub marketplace.
type User struct {
	// ID is the unique identifier of the user. IDs are time-derived
	// strings assigned at registration and never reused.
	ID string `json:"id"`

	// Email is the user's login email. Uniqueness is enforced with a
	// case-sensitive exact match at registration.
	Email string `json:"email"`

	// Name is the user's display or full name.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt hash of the user's password. It must
	// survive JSON persistence, so handlers clear it before writing a user
	// into an API response.
	PasswordHash string `json:"passwordHash,omitempty"`

	// Avatar is a URL to the user's profile picture. New accounts get a
	// generated default.
	Avatar string `json:"avatar"`

	// Title is the user's marketplace headline. New accounts default to
	// "Simulation Enthusiast".
	Title string `json:"title"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// UserSummary is a point-in-time snapshot of a user embedded in listings
// (Job.PostedBy, Software.Owner, Hardware.Owner). It is captured when the
// listing is created and is never re-synced with the source user record.
type UserSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Summary returns the embeddable snapshot of the user.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}
