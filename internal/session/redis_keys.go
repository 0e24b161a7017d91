package session

import "fmt"

const (
	SESSION_KEY = "session:%s" // <sessionID>
)

func Key(sessionID string) string {
	return fmt.Sprintf(SESSION_KEY, sessionID)
}
