package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/InkwellBlog/web-client/internal/model"
	"github.com/InkwellBlog/web-client/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPost overrides the operations the tests hit; untouched methods
// delegate to the embedded nil interface and are never called.
type stubPost struct {
	service.Post
	feed []model.FeedPost
}

func (s *stubPost) Feed(ctx context.Context, sessionSecret string, current *model.UserProfile, opts service.FeedOptions) ([]model.FeedPost, error) {
	return s.feed, nil
}

func newTestRouter(services *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	viper.Set("client.origin", "http://localhost:5173")
	return New(services).InitRoutes()
}

func TestRouter_AnonymousFeed(t *testing.T) {
	feedPosts := []model.FeedPost{
		{Post: model.Post{ID: "p1", UserID: "u1"}, AuthorName: "User_u1", IsOwner: false},
	}
	router := newTestRouter(&service.Service{Post: &stubPost{feed: feedPosts}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []model.FeedPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, feedPosts, got)
}

func TestRouter_WriteEndpointsRequireAuth(t *testing.T) {
	router := newTestRouter(&service.Service{Post: &stubPost{}})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/posts"},
		{http.MethodPatch, "/api/v1/posts/p1"},
		{http.MethodDelete, "/api/v1/posts/p1"},
		{http.MethodPost, "/api/v1/files/upload"},
		{http.MethodPost, "/api/v1/auth/signout"},
		{http.MethodGet, "/api/v1/auth/me"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
