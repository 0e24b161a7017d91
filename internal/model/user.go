package model

// UserProfile is the account record returned by the hosted backend.
// Name and Email may be empty depending on how the account was created.
type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
