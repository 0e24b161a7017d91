package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("session is missing, invalid or expired")
)

// Error is the error envelope the hosted backend returns on non-2xx
// responses.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend error(%d, %s): %s", e.Code, e.Type, e.Message)
}

func (c *Client) decodeError(path string, statusCode int, body []byte) error {
	switch statusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	}

	var backendErr Error
	if err := json.Unmarshal(body, &backendErr); err != nil {
		c.logger.Sugar().Errorf("failed to decode error response from backend endpoint(%s), code(%d): %s", path, statusCode, err.Error())
		return fmt.Errorf("backend returned status %d", statusCode)
	}
	if backendErr.Code == 0 {
		backendErr.Code = statusCode
	}

	c.logger.Sugar().Errorf("ERROR from backend endpoint(%s), code(%d), details: %s", path, statusCode, backendErr.Message)
	return &backendErr
}
