package model

import "time"

// BackendSession is the session created by the hosted backend on login.
// Secret authenticates subsequent requests on the user's behalf.
type BackendSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Secret    string    `json:"secret"`
	ExpiresAt time.Time `json:"expires_at"`
}

// StoredFile is a file record in the hosted backend's storage bucket.
type StoredFile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}
