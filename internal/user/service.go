// AngelaMos | 2026
// service.go

package user

import (
	"context"

	"github.com/carterperez-dev/templates/insights-api/internal/auth"
)

// Service is the credential store behind authentication. Emails are
// compared exactly as stored.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	return s.repo.ExistsByEmail(ctx, email)
}

func (s *Service) Create(
	ctx context.Context,
	email, passwordHash string,
) (*auth.UserInfo, error) {
	user := &User{
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}
}

var _ auth.UserProvider = (*Service)(nil)
