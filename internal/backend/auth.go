package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/InkwellBlog/web-client/internal/model"
	"github.com/google/uuid"
)

type accountResponse struct {
	ID    string `json:"$id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (a accountResponse) toProfile() *model.UserProfile {
	return &model.UserProfile{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
	}
}

type sessionResponse struct {
	ID        string    `json:"$id"`
	UserID    string    `json:"userId"`
	Secret    string    `json:"secret"`
	ExpiresAt time.Time `json:"expire"`
}

// CreateAccount registers a new account. The backend assigns the provided
// unique id; the caller is expected to log in afterwards.
func (c *Client) CreateAccount(ctx context.Context, email string, password string, name string) (*model.UserProfile, error) {
	in := map[string]string{
		"userId":   uuid.NewString(),
		"email":    email,
		"password": password,
		"name":     name,
	}

	var out accountResponse
	if err := c.do(ctx, http.MethodPost, "/account", "", in, &out); err != nil {
		return nil, err
	}

	return out.toProfile(), nil
}

// CreateEmailSession logs in with email/password and returns the backend
// session whose secret authenticates subsequent calls.
func (c *Client) CreateEmailSession(ctx context.Context, email string, password string) (*model.BackendSession, error) {
	in := map[string]string{
		"email":    email,
		"password": password,
	}

	var out sessionResponse
	if err := c.do(ctx, http.MethodPost, "/account/sessions/email", "", in, &out); err != nil {
		return nil, err
	}

	return &model.BackendSession{
		ID:        out.ID,
		UserID:    out.UserID,
		Secret:    out.Secret,
		ExpiresAt: out.ExpiresAt,
	}, nil
}

// GetAccount fetches the profile behind a session secret. An invalid or
// expired session yields (nil, nil): absence of a current user is an expected
// state, not a failure.
func (c *Client) GetAccount(ctx context.Context, sessionSecret string) (*model.UserProfile, error) {
	var out accountResponse
	if err := c.do(ctx, http.MethodGet, "/account", sessionSecret, nil, &out); err != nil {
		if err == ErrUnauthorized {
			return nil, nil
		}
		return nil, err
	}

	return out.toProfile(), nil
}

// DeleteSessions logs the user out of the backend by destroying all of their
// sessions.
func (c *Client) DeleteSessions(ctx context.Context, sessionSecret string) error {
	return c.do(ctx, http.MethodDelete, "/account/sessions", sessionSecret, nil, nil)
}
