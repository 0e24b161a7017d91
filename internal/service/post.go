package service

import (
	"context"
	"io"
	"mime/multipart"
	"strings"
	"sync"

	"github.com/InkwellBlog/web-client/internal/backend"
	"github.com/InkwellBlog/web-client/internal/dto"
	"github.com/InkwellBlog/web-client/internal/feed"
	"github.com/InkwellBlog/web-client/internal/feedcache"
	"github.com/InkwellBlog/web-client/internal/identity"
	"github.com/InkwellBlog/web-client/internal/imageurl"
	"github.com/InkwellBlog/web-client/internal/model"
	"github.com/InkwellBlog/web-client/internal/ownership"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// postBackend is the slice of the backend client the post flow consumes.
type postBackend interface {
	CreatePost(ctx context.Context, sessionSecret string, post model.Post) (*model.Post, error)
	GetPost(ctx context.Context, sessionSecret string, id string) (*model.Post, error)
	ListPosts(ctx context.Context, sessionSecret string, queries ...backend.Query) ([]model.Post, error)
	UpdatePost(ctx context.Context, sessionSecret string, post model.Post) (*model.Post, error)
	DeletePost(ctx context.Context, sessionSecret string, id string) error
	UploadFile(ctx context.Context, sessionSecret string, filename string, contentType string, size int64, file io.Reader) (*model.StoredFile, error)
	DeleteFile(ctx context.Context, sessionSecret string, fileID string) error
}

type postService struct {
	logger   *zap.Logger
	backend  postBackend
	cache    *feedcache.Cache
	resolver *identity.Resolver
	prober   *imageurl.Prober

	// Loaders are scoped per identity over the shared snapshot cache, so
	// concurrent requests from unrelated users never supersede each other.
	loadersMu sync.Mutex
	loaders   map[string]*feed.Loader
}

func newPostService(logger *zap.Logger, backend postBackend, cache *feedcache.Cache, resolver *identity.Resolver, prober *imageurl.Prober) Post {
	return &postService{
		logger:   logger,
		backend:  backend,
		cache:    cache,
		resolver: resolver,
		prober:   prober,
		loaders:  make(map[string]*feed.Loader),
	}
}

func (s *postService) loaderFor(userID string) *feed.Loader {
	s.loadersMu.Lock()
	defer s.loadersMu.Unlock()

	loader, ok := s.loaders[userID]
	if !ok {
		loader = feed.NewLoader(s.cache, s.logger)
		s.loaders[userID] = loader
	}
	return loader
}

// Feed returns the post collection annotated for display, newest first.
// Reads go through the snapshot cache; the loader discards results that
// arrive after the authenticated identity changed.
func (s *postService) Feed(ctx context.Context, sessionSecret string, current *model.UserProfile, opts FeedOptions) ([]model.FeedPost, error) {
	var userID string
	if current != nil {
		userID = current.ID
	}

	queries := []backend.Query{backend.OrderDesc("$createdAt")}
	if !opts.IncludeInactive {
		queries = append([]backend.Query{backend.Equal("status", string(model.PostStatusActive))}, queries...)
	}

	loader := s.loaderFor(userID)
	loader.SetIdentity(userID)
	posts, err := loader.Load(ctx, opts.IncludeInactive, func(ctx context.Context) ([]model.Post, error) {
		return s.backend.ListPosts(ctx, sessionSecret, queries...)
	})
	if err != nil {
		if err == feed.ErrSuperseded {
			return nil, err
		}
		s.logger.Sugar().Errorf("failed to fetch feed for user(%q): %s", userID, err.Error())
		return nil, ErrInternal
	}

	annotated := make([]model.FeedPost, 0, len(posts))
	for i := range posts {
		feedPost := s.annotate(posts[i], current)
		if opts.OnlyMine && !feedPost.IsOwner {
			continue
		}
		annotated = append(annotated, feedPost)
	}

	return annotated, nil
}

func (s *postService) FindByID(ctx context.Context, sessionSecret string, current *model.UserProfile, id string) (*model.FeedPost, error) {
	post, err := s.backend.GetPost(ctx, sessionSecret, id)
	if err != nil {
		if err == backend.ErrNotFound {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to get post(%s): %s", id, err.Error())
		return nil, ErrInternal
	}

	feedPost := s.annotate(*post, current)
	return &feedPost, nil
}

func (s *postService) Create(ctx context.Context, sessionSecret string, current *model.UserProfile, in dto.CreatePostRequest) (*model.Post, error) {
	status := model.PostStatus(in.Status)
	if status == "" {
		status = model.PostStatusActive
	}

	post := model.Post{
		ID:            slugify(in.Title) + "-" + uuid.NewString()[:8],
		UserID:        current.ID,
		Title:         in.Title,
		Content:       in.Content,
		Status:        status,
		FeaturedImage: in.FeaturedImage,
	}

	created, err := s.backend.CreatePost(ctx, sessionSecret, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) post: %s", current.ID, err.Error())
		return nil, ErrInternal
	}

	s.cache.Clear()

	return created, nil
}

func (s *postService) Edit(ctx context.Context, sessionSecret string, current *model.UserProfile, id string, in dto.EditPostRequest) (*model.Post, error) {
	existing, err := s.backend.GetPost(ctx, sessionSecret, id)
	if err != nil {
		if err == backend.ErrNotFound {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to get post(%s) for edit: %s", id, err.Error())
		return nil, ErrInternal
	}

	// Advisory pre-check; the backend rejects non-author writes regardless.
	if result := ownership.Verify(existing, current); !result.IsOwner {
		return nil, ErrNotPostAuthor
	}

	previousImage := existing.FeaturedImage

	if in.Title != nil {
		existing.Title = *in.Title
	}
	if in.Content != nil {
		existing.Content = *in.Content
	}
	if in.Status != nil {
		existing.Status = model.PostStatus(*in.Status)
	}
	if in.FeaturedImage != nil {
		existing.FeaturedImage = *in.FeaturedImage
	}

	updated, err := s.backend.UpdatePost(ctx, sessionSecret, *existing)
	if err != nil {
		s.logger.Sugar().Errorf("failed to update post(%s): %s", id, err.Error())
		return nil, ErrInternal
	}

	if previousImage != "" && previousImage != updated.FeaturedImage {
		if err := s.backend.DeleteFile(ctx, sessionSecret, previousImage); err != nil {
			s.logger.Sugar().Errorf("failed to delete replaced image(%s) of post(%s): %s", previousImage, id, err.Error())
		}
	}

	s.cache.Clear()

	return updated, nil
}

func (s *postService) Delete(ctx context.Context, sessionSecret string, current *model.UserProfile, id string) error {
	existing, err := s.backend.GetPost(ctx, sessionSecret, id)
	if err != nil {
		if err == backend.ErrNotFound {
			return ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to get post(%s) for deletion: %s", id, err.Error())
		return ErrInternal
	}

	if result := ownership.Verify(existing, current); !result.IsOwner {
		return ErrNotPostAuthor
	}

	if err := s.backend.DeletePost(ctx, sessionSecret, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete post(%s): %s", id, err.Error())
		return ErrInternal
	}

	if existing.FeaturedImage != "" {
		if err := s.backend.DeleteFile(ctx, sessionSecret, existing.FeaturedImage); err != nil {
			s.logger.Sugar().Errorf("failed to delete image(%s) of deleted post(%s): %s", existing.FeaturedImage, id, err.Error())
		}
	}

	s.cache.Clear()

	return nil
}

func (s *postService) UploadImage(ctx context.Context, sessionSecret string, file multipart.File, fileHeader *multipart.FileHeader) (*model.StoredFile, error) {
	contentType := fileHeader.Header.Get("Content-Type")

	stored, err := s.backend.UploadFile(ctx, sessionSecret, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		if err == backend.ErrFileMustBeImage || err == backend.ErrFileTooLarge {
			return nil, err
		}
		s.logger.Sugar().Errorf("failed to upload image(%s): %s", fileHeader.Filename, err.Error())
		return nil, ErrInternal
	}

	return stored, nil
}

func (s *postService) ImageURL(ctx context.Context, fileID string) (string, error) {
	return s.prober.Resolve(ctx, fileID)
}

func (s *postService) annotate(post model.Post, current *model.UserProfile) model.FeedPost {
	return model.FeedPost{
		Post:       post,
		AuthorName: s.resolver.Resolve(post.UserID, current),
		IsOwner:    ownership.Verify(&post, current).IsOwner,
	}
}

func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "post"
	}
	return slug
}
