package config

import (
	"net/http"
	"time"
)

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// BackendConfig points the client at the hosted backend: the API endpoint and
// the opaque project/database/collection/bucket identifiers it scopes
// requests with.
type BackendConfig struct {
	Endpoint     string
	ProjectID    string
	DatabaseID   string
	CollectionID string
	BucketID     string
}
