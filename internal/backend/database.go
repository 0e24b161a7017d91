package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/InkwellBlog/web-client/internal/model"
)

type postDocument struct {
	ID            string    `json:"$id"`
	CreatedAt     time.Time `json:"$createdAt"`
	UserID        string    `json:"userId"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Status        string    `json:"status"`
	FeaturedImage string    `json:"featuredImage"`
}

func (d postDocument) toPost() model.Post {
	return model.Post{
		ID:            d.ID,
		UserID:        d.UserID,
		Title:         d.Title,
		Content:       d.Content,
		Status:        model.PostStatus(d.Status),
		FeaturedImage: d.FeaturedImage,
		CreatedAt:     d.CreatedAt,
	}
}

type documentList struct {
	Total     int            `json:"total"`
	Documents []postDocument `json:"documents"`
}

type postFields struct {
	UserID        string `json:"userId"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Status        string `json:"status"`
	FeaturedImage string `json:"featuredImage"`
}

func (c *Client) documentsPath() string {
	return fmt.Sprintf("/databases/%s/collections/%s/documents", c.databaseID, c.collectionID)
}

// CreatePost stores a new post document under the given id.
func (c *Client) CreatePost(ctx context.Context, sessionSecret string, post model.Post) (*model.Post, error) {
	in := map[string]interface{}{
		"documentId": post.ID,
		"data": postFields{
			UserID:        post.UserID,
			Title:         post.Title,
			Content:       post.Content,
			Status:        string(post.Status),
			FeaturedImage: post.FeaturedImage,
		},
	}

	var out postDocument
	if err := c.do(ctx, http.MethodPost, c.documentsPath(), sessionSecret, in, &out); err != nil {
		return nil, err
	}

	created := out.toPost()
	return &created, nil
}

func (c *Client) GetPost(ctx context.Context, sessionSecret string, id string) (*model.Post, error) {
	var out postDocument
	if err := c.do(ctx, http.MethodGet, c.documentsPath()+"/"+id, sessionSecret, nil, &out); err != nil {
		return nil, err
	}

	post := out.toPost()
	return &post, nil
}

// ListPosts returns posts matching the queries, in the order the backend
// applied. Callers append OrderDesc("$createdAt") for the newest-first feed.
func (c *Client) ListPosts(ctx context.Context, sessionSecret string, queries ...Query) ([]model.Post, error) {
	path := c.documentsPath()
	if len(queries) > 0 {
		values := url.Values{}
		for _, query := range queries {
			values.Add("queries[]", string(query))
		}
		path += "?" + values.Encode()
	}

	var out documentList
	if err := c.do(ctx, http.MethodGet, path, sessionSecret, nil, &out); err != nil {
		return nil, err
	}

	posts := make([]model.Post, 0, len(out.Documents))
	for _, doc := range out.Documents {
		posts = append(posts, doc.toPost())
	}

	return posts, nil
}

// UpdatePost overwrites the mutable fields of a post document. UserID is
// never sent: the author is immutable.
func (c *Client) UpdatePost(ctx context.Context, sessionSecret string, post model.Post) (*model.Post, error) {
	in := map[string]interface{}{
		"data": map[string]string{
			"title":         post.Title,
			"content":       post.Content,
			"status":        string(post.Status),
			"featuredImage": post.FeaturedImage,
		},
	}

	var out postDocument
	if err := c.do(ctx, http.MethodPatch, c.documentsPath()+"/"+post.ID, sessionSecret, in, &out); err != nil {
		return nil, err
	}

	updated := out.toPost()
	return &updated, nil
}

func (c *Client) DeletePost(ctx context.Context, sessionSecret string, id string) error {
	return c.do(ctx, http.MethodDelete, c.documentsPath()+"/"+id, sessionSecret, nil, nil)
}
