package service

import (
	"context"
	"time"

	"github.com/InkwellBlog/web-client/internal/dto"
	"github.com/InkwellBlog/web-client/internal/identity"
	"github.com/InkwellBlog/web-client/internal/model"
	"github.com/InkwellBlog/web-client/internal/session"
	"github.com/InkwellBlog/web-client/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// authBackend is the slice of the backend client the auth flow consumes.
type authBackend interface {
	CreateAccount(ctx context.Context, email string, password string, name string) (*model.UserProfile, error)
	CreateEmailSession(ctx context.Context, email string, password string) (*model.BackendSession, error)
	GetAccount(ctx context.Context, sessionSecret string) (*model.UserProfile, error)
	DeleteSessions(ctx context.Context, sessionSecret string) error
}

type sessionStore interface {
	Save(ctx context.Context, stored session.Stored) error
	Find(ctx context.Context, sessionID string) (*session.Stored, error)
	Delete(ctx context.Context, sessionID string) error
}

type authService struct {
	logger       *zap.Logger
	backend      authBackend
	sessions     sessionStore
	names        *identity.NameCache
	resolver     *identity.Resolver
	accessSecret []byte
}

func newAuthService(logger *zap.Logger, backend authBackend, sessions sessionStore, names *identity.NameCache, resolver *identity.Resolver, accessSecret []byte) Auth {
	return &authService{
		logger:       logger,
		backend:      backend,
		sessions:     sessions,
		names:        names,
		resolver:     resolver,
		accessSecret: accessSecret,
	}
}

func (s *authService) SignUp(ctx context.Context, in dto.SignUpRequest) (*dto.AuthResponse, error) {
	if _, err := s.backend.CreateAccount(ctx, in.Email, in.Password, in.Name); err != nil {
		s.logger.Sugar().Errorf("failed to create backend account for email(%s): %s", in.Email, err.Error())
		return nil, err
	}

	return s.SignIn(ctx, dto.SignInRequest{Email: in.Email, Password: in.Password})
}

func (s *authService) SignIn(ctx context.Context, in dto.SignInRequest) (*dto.AuthResponse, error) {
	backendSession, err := s.backend.CreateEmailSession(ctx, in.Email, in.Password)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create backend session for email(%s): %s", in.Email, err.Error())
		return nil, ErrInvalidCredentials
	}

	profile, err := s.backend.GetAccount(ctx, backendSession.Secret)
	if err != nil {
		s.logger.Sugar().Errorf("failed to fetch profile after login for email(%s): %s", in.Email, err.Error())
		return nil, ErrInternal
	}
	if profile == nil {
		return nil, ErrInvalidCredentials
	}

	stored := session.Stored{
		ID:            uuid.NewString(),
		UserID:        profile.ID,
		BackendSecret: backendSession.Secret,
		CreatedAt:     time.Now(),
	}
	if err := s.sessions.Save(ctx, stored); err != nil {
		s.logger.Sugar().Errorf("failed to save session for user(%s): %s", profile.ID, err.Error())
		return nil, ErrInternal
	}

	accessToken, err := utils.GenerateJWT(jwt.MapClaims{"sid": stored.ID, "id": profile.ID}, s.accessSecret, session.TTL)
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate access token for user(%s): %s", profile.ID, err.Error())
		return nil, ErrInternal
	}

	// A session change invalidates previously memoized names.
	s.names.Clear()

	return &dto.AuthResponse{
		AccessToken: accessToken,
		User:        *profile,
		DisplayName: s.resolver.Resolve(profile.ID, profile),
	}, nil
}

func (s *authService) SignOut(ctx context.Context, stored session.Stored) error {
	if err := s.backend.DeleteSessions(ctx, stored.BackendSecret); err != nil {
		// The local session is removed regardless; the backend session will
		// lapse on its own expiry.
		s.logger.Sugar().Errorf("failed to delete backend sessions for user(%s): %s", stored.UserID, err.Error())
	}

	if err := s.sessions.Delete(ctx, stored.ID); err != nil {
		s.logger.Sugar().Errorf("failed to delete session(%s): %s", stored.ID, err.Error())
		return ErrInternal
	}

	s.names.Clear()

	return nil
}

// Authenticate resolves a bearer token to the live profile it represents.
// Ownership decisions downstream always derive from this fresh identity,
// never from cached feed data.
func (s *authService) Authenticate(ctx context.Context, accessToken string) (*model.UserProfile, *session.Stored, error) {
	claims, err := utils.DecodeJWT(accessToken, s.accessSecret)
	if err != nil {
		return nil, nil, ErrNotAuthorized
	}

	sessionID, ok := claims["sid"].(string)
	if !ok || sessionID == "" {
		return nil, nil, ErrNotAuthorized
	}

	stored, err := s.sessions.Find(ctx, sessionID)
	if err != nil {
		if err == session.ErrNotFound {
			return nil, nil, ErrNotAuthorized
		}
		s.logger.Sugar().Errorf("failed to find session(%s): %s", sessionID, err.Error())
		return nil, nil, ErrInternal
	}

	profile, err := s.backend.GetAccount(ctx, stored.BackendSecret)
	if err != nil {
		s.logger.Sugar().Errorf("failed to fetch profile for session(%s): %s", sessionID, err.Error())
		return nil, nil, ErrInternal
	}
	if profile == nil {
		// The backend session expired under us; drop the dangling mapping.
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			s.logger.Sugar().Errorf("failed to delete expired session(%s): %s", sessionID, err.Error())
		}
		return nil, nil, ErrNotAuthorized
	}

	return profile, stored, nil
}
