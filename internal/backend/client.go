package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/InkwellBlog/web-client/internal/config"
	"go.uber.org/zap"
)

// Client talks to the hosted backend's REST API. All persistence, auth and
// file storage live behind it; this application keeps no storage of its own.
type Client struct {
	logger     *zap.Logger
	httpClient *http.Client

	endpoint     string
	projectID    string
	databaseID   string
	collectionID string
	bucketID     string
}

func New(cfg config.BackendConfig, logger *zap.Logger) *Client {
	return &Client{
		logger:       logger,
		httpClient:   &http.Client{},
		endpoint:     strings.TrimSuffix(cfg.Endpoint, "/"),
		projectID:    cfg.ProjectID,
		databaseID:   cfg.DatabaseID,
		collectionID: cfg.CollectionID,
		bucketID:     cfg.BucketID,
	}
}

func (c *Client) url(path string) string {
	return c.endpoint + path
}

// do sends a JSON request and decodes the JSON response into out (when out is
// non-nil). sessionSecret may be empty for unauthenticated calls.
func (c *Client) do(ctx context.Context, method string, path string, sessionSecret string, in interface{}, out interface{}) error {
	var requestBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			c.logger.Sugar().Errorf("failed to marshal request body for %s %s: %s", method, path, err.Error())
			return err
		}
		requestBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), requestBody)
	if err != nil {
		c.logger.Sugar().Errorf("failed to create request to backend: %s", err.Error())
		return err
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setHeaders(req, sessionSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Sugar().Errorf("failed to send request to backend endpoint(%s): %s", path, err.Error())
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Sugar().Errorf("failed to read response body from backend endpoint(%s): %s", path, err.Error())
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(path, resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Sugar().Errorf("failed to decode response body from backend endpoint(%s): %s", path, err.Error())
		return err
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request, sessionSecret string) {
	req.Header.Set("X-Project", c.projectID)
	if sessionSecret != "" {
		req.Header.Set("X-Session", sessionSecret)
	}
}
