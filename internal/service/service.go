package service

import (
	"context"
	"mime/multipart"

	"github.com/InkwellBlog/web-client/internal/backend"
	"github.com/InkwellBlog/web-client/internal/dto"
	"github.com/InkwellBlog/web-client/internal/feedcache"
	"github.com/InkwellBlog/web-client/internal/identity"
	"github.com/InkwellBlog/web-client/internal/imageurl"
	"github.com/InkwellBlog/web-client/internal/model"
	"github.com/InkwellBlog/web-client/internal/session"
	"go.uber.org/zap"
)

type Auth interface {
	SignUp(ctx context.Context, in dto.SignUpRequest) (*dto.AuthResponse, error)
	SignIn(ctx context.Context, in dto.SignInRequest) (*dto.AuthResponse, error)
	SignOut(ctx context.Context, stored session.Stored) error
	Authenticate(ctx context.Context, accessToken string) (*model.UserProfile, *session.Stored, error)
}

type FeedOptions struct {
	OnlyMine        bool
	IncludeInactive bool
}

type Post interface {
	Feed(ctx context.Context, sessionSecret string, current *model.UserProfile, opts FeedOptions) ([]model.FeedPost, error)
	FindByID(ctx context.Context, sessionSecret string, current *model.UserProfile, id string) (*model.FeedPost, error)
	Create(ctx context.Context, sessionSecret string, current *model.UserProfile, in dto.CreatePostRequest) (*model.Post, error)
	Edit(ctx context.Context, sessionSecret string, current *model.UserProfile, id string, in dto.EditPostRequest) (*model.Post, error)
	Delete(ctx context.Context, sessionSecret string, current *model.UserProfile, id string) error
	UploadImage(ctx context.Context, sessionSecret string, file multipart.File, fileHeader *multipart.FileHeader) (*model.StoredFile, error)
	ImageURL(ctx context.Context, fileID string) (string, error)
}

type Service struct {
	Auth
	Post
}

func New(logger *zap.Logger, client *backend.Client, sessions *session.Store, accessSecret []byte) *Service {
	names := identity.NewNameCache()
	resolver := identity.NewResolver(names)
	cache := feedcache.New()
	prober := imageurl.NewProber(imageurl.DefaultStrategies(client), logger)

	return &Service{
		Auth: newAuthService(logger, client, sessions, names, resolver, accessSecret),
		Post: newPostService(logger, client, cache, resolver, prober),
	}
}
