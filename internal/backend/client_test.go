package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/InkwellBlog/web-client/internal/config"
	"github.com/InkwellBlog/web-client/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := New(config.BackendConfig{
		Endpoint:     srv.URL,
		ProjectID:    "proj",
		DatabaseID:   "db",
		CollectionID: "posts",
		BucketID:     "images",
	}, zap.NewNop())

	return client, srv
}

func TestGetAccount(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account", r.URL.Path)
		assert.Equal(t, "proj", r.Header.Get("X-Project"))

		if r.Header.Get("X-Session") != "secret-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		json.NewEncoder(w).Encode(map[string]string{"$id": "u1", "name": "Jane", "email": "jane@x.com"})
	}))

	profile, err := client.GetAccount(context.Background(), "secret-1")
	require.NoError(t, err)
	assert.Equal(t, &model.UserProfile{ID: "u1", Name: "Jane", Email: "jane@x.com"}, profile)
}

func TestGetAccount_ExpiredSessionIsNotAnError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	profile, err := client.GetAccount(context.Background(), "stale")
	assert.NoError(t, err)
	assert.Nil(t, profile)
}

func TestCreateEmailSession(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/account/sessions/email", r.URL.Path)

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "jane@x.com", in["email"])

		json.NewEncoder(w).Encode(map[string]string{"$id": "s1", "userId": "u1", "secret": "secret-1"})
	}))

	session, err := client.CreateEmailSession(context.Background(), "jane@x.com", "password")
	require.NoError(t, err)
	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, "secret-1", session.Secret)
}

func TestListPosts_QueriesAndOrder(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/databases/db/collections/posts/documents", r.URL.Path)

		queries := r.URL.Query()["queries[]"]
		require.Len(t, queries, 2)
		assert.Equal(t, `equal("status",["active"])`, queries[0])
		assert.Equal(t, `orderDesc("$createdAt")`, queries[1])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"total": 2,
			"documents": []map[string]interface{}{
				{"$id": "p2", "userId": "u2", "title": "newer", "status": "active"},
				{"$id": "p1", "userId": "u1", "title": "older", "status": "active"},
			},
		})
	}))

	posts, err := client.ListPosts(context.Background(), "secret-1",
		Equal("status", string(model.PostStatusActive)),
		OrderDesc("$createdAt"),
	)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "p2", posts[0].ID, "backend ordering preserved")
	assert.Equal(t, "p1", posts[1].ID)
}

func TestGetPost_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.GetPost(context.Background(), "secret-1", "missing")
	assert.Equal(t, ErrNotFound, err)
}

func TestCreatePost(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var in struct {
			DocumentID string `json:"documentId"`
			Data       struct {
				UserID string `json:"userId"`
				Title  string `json:"title"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "my-post-1a2b3c4d", in.DocumentID)
		assert.Equal(t, "u1", in.Data.UserID)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"$id": in.DocumentID, "userId": in.Data.UserID, "title": in.Data.Title, "status": "active",
		})
	}))

	created, err := client.CreatePost(context.Background(), "secret-1", model.Post{
		ID:     "my-post-1a2b3c4d",
		UserID: "u1",
		Title:  "My Post",
		Status: model.PostStatusActive,
	})
	require.NoError(t, err)
	assert.Equal(t, "my-post-1a2b3c4d", created.ID)
	assert.Equal(t, "u1", created.UserID)
}

func TestUpdatePost_NeverSendsAuthor(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)

		var in struct {
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_, hasUserID := in.Data["userId"]
		assert.False(t, hasUserID, "author id is immutable and must not be sent")

		json.NewEncoder(w).Encode(map[string]interface{}{"$id": "p1", "userId": "u1", "title": in.Data["title"]})
	}))

	updated, err := client.UpdatePost(context.Background(), "secret-1", model.Post{ID: "p1", UserID: "u1", Title: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Title)
}

func TestErrorEnvelopeDecoding(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 409, "message": "document already exists", "type": "document_already_exists",
		})
	}))

	_, err := client.CreatePost(context.Background(), "secret-1", model.Post{ID: "dup"})
	var backendErr *Error
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, 409, backendErr.Code)
	assert.Equal(t, "document_already_exists", backendErr.Type)
}

func TestUploadFile_Validation(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("invalid files must be rejected before any request")
	}))

	_, err := client.UploadFile(context.Background(), "secret-1", "notes.txt", "text/plain", 10, strings.NewReader("hi"))
	assert.Equal(t, ErrFileMustBeImage, err)

	_, err = client.UploadFile(context.Background(), "secret-1", "big.png", "image/png", MaxFileSize+1, strings.NewReader("hi"))
	assert.Equal(t, ErrFileTooLarge, err)
}

func TestUploadFile(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/storage/buckets/images/files", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.NotEmpty(t, r.FormValue("fileId"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "photo.png", header.Filename)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"$id": "f1", "name": "photo.png", "mimeType": "image/png", "sizeOriginal": 4,
		})
	}))

	stored, err := client.UploadFile(context.Background(), "secret-1", "photo.png", "image/png", 4, strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, "f1", stored.ID)
}

func TestFileURLBuilders(t *testing.T) {
	client, srv := newTestClient(t, http.NewServeMux())

	preview := client.FilePreviewURL("f1", 400, 300, 85)
	assert.True(t, strings.HasPrefix(preview, srv.URL+"/storage/buckets/images/files/f1/preview?"))
	assert.Contains(t, preview, "width=400")
	assert.Contains(t, preview, "project=proj")

	assert.Equal(t, srv.URL+"/storage/buckets/images/files/f1/view?project=proj", client.FileViewURL("f1"))
	assert.Equal(t, srv.URL+"/storage/buckets/images/files/f1/download?project=proj", client.FileDownloadURL("f1"))
}
