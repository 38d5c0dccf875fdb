package models

import "time"

// File represents an uploaded file owned by a single user
type File struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	StorageName string    `json:"-"` // Internal blob key, never shown to clients
	DisplayName string    `json:"display_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

// OwnedBy reports whether the file belongs to the given user
func (f *File) OwnedBy(user *User) bool {
	return user != nil && f.OwnerID == user.ID
}
