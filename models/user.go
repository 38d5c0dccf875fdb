package models

import "time"

// User represents a registered account. Accounts carry no credential; the
// username alone identifies the user at login.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
