// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/templates/insights-api/internal/core"
	"github.com/carterperez-dev/templates/insights-api/internal/middleware"
)

const tokenTypeBearer = "bearer"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
)

type UserInfo struct {
	ID           int64
	Email        string
	PasswordHash string
}

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, email, passwordHash string) (*UserInfo, error)
}

type Service struct {
	jwt          *JWTManager
	userProvider UserProvider
}

func NewService(jwt *JWTManager, userProvider UserProvider) *Service {
	return &Service{
		jwt:          jwt,
		userProvider: userProvider,
	}
}

// Register stores a new account. No tokens are issued; the caller logs
// in separately.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*UserInfo, error) {
	exists, err := s.userProvider.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailExists
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userProvider.Create(ctx, req.Email, passwordHash)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	core.AddSpanEvent(ctx, "auth.registered", attribute.Int64("user.id", user.ID))

	return user, nil
}

// Authenticate returns ErrInvalidCredentials for an unknown email and for
// a wrong password alike.
func (s *Service) Authenticate(
	ctx context.Context,
	email, password string,
) (*UserInfo, error) {
	user, err := s.userProvider.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _ = core.VerifyPasswordTimingSafe(password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, err := core.VerifyPasswordTimingSafe(password, &user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*TokenResponse, error) {
	user, err := s.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwt.CreateAccessToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	refreshToken, err := s.jwt.CreateRefreshToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("create refresh token: %w", err)
	}

	core.AddSpanEvent(ctx, "auth.login", attribute.Int64("user.id", user.ID))

	return s.tokenResponse(accessToken, refreshToken), nil
}

// Refresh mints a new access token and hands back the refresh token it
// was given. Refresh tokens are not rotated and stay usable until they
// expire.
func (s *Service) Refresh(
	ctx context.Context,
	refreshToken string,
) (*TokenResponse, error) {
	claims, err := s.jwt.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}

	user, err := s.userProvider.GetByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}

	accessToken, err := s.jwt.CreateAccessToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	return s.tokenResponse(accessToken, refreshToken), nil
}

func (s *Service) ResolveCurrentUser(
	ctx context.Context,
	accessToken string,
) (*UserInfo, error) {
	claims, err := s.jwt.VerifyAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	user, err := s.userProvider.GetByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	return user, nil
}

// Identify adapts ResolveCurrentUser to the request gate.
func (s *Service) Identify(
	ctx context.Context,
	accessToken string,
) (*middleware.Identity, error) {
	user, err := s.ResolveCurrentUser(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	return &middleware.Identity{
		UserID: user.ID,
		Email:  user.Email,
	}, nil
}

func (s *Service) tokenResponse(accessToken, refreshToken string) *TokenResponse {
	return &TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    tokenTypeBearer,
		ExpiresIn:    int(s.jwt.AccessTokenTTL().Seconds()),
	}
}

var _ middleware.IdentityResolver = (*Service)(nil)
