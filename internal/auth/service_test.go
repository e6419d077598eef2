// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/insights-api/internal/config"
	"github.com/carterperez-dev/templates/insights-api/internal/core"
)

type fakeUsers struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*UserInfo
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[string]*UserInfo{}}
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[email]
	if !ok {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUsers) Create(_ context.Context, email, passwordHash string) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[email]; ok {
		return nil, fmt.Errorf("create user: %w", core.ErrDuplicateKey)
	}
	f.nextID++
	u := &UserInfo{ID: f.nextID, Email: email, PasswordHash: passwordHash}
	f.users[email] = u
	return u, nil
}

func (f *fakeUsers) delete(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, email)
}

func newTestService(t *testing.T) (*Service, *fakeUsers) {
	t.Helper()

	users := newFakeUsers()
	return NewService(newTestManager(t, nil), users), users
}

func TestRegisterThenAuthenticate(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEqual(t, "pw123", users.users["a@x.com"].PasswordHash)

	authed, err := svc.Authenticate(ctx, "a@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "other"})
	require.ErrorIs(t, err, ErrEmailExists)
}

func TestEmailIsCaseSensitive(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Email: "A@x.com", Password: "pw123"})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "A@X.COM", "pw123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateFailuresLookAlike(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)

	_, wrongPassword := svc.Authenticate(ctx, "a@x.com", "wrong")
	_, unknownEmail := svc.Authenticate(ctx, "nobody@x.com", "pw123")

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginIssuesDistinctTokens(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, LoginRequest{Username: "a@x.com", Password: "pw123"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.NotEqual(t, resp.AccessToken, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, int((15 * time.Minute).Seconds()), resp.ExpiresIn)

	_, err = svc.Login(ctx, LoginRequest{Username: "a@x.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshDoesNotRotate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)
	login, err := svc.Login(ctx, LoginRequest{Username: "a@x.com", Password: "pw123"})
	require.NoError(t, err)

	first, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	second, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)

	assert.Equal(t, login.RefreshToken, first.RefreshToken)
	assert.Equal(t, login.RefreshToken, second.RefreshToken)

	user, err := svc.ResolveCurrentUser(ctx, second.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)
	login, err := svc.Login(ctx, LoginRequest{Username: "a@x.com", Password: "pw123"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, login.AccessToken)
	require.ErrorIs(t, err, core.ErrTokenInvalid)

	_, err = svc.ResolveCurrentUser(ctx, login.RefreshToken)
	require.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestDeletedUserIsNotFound(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)
	login, err := svc.Login(ctx, LoginRequest{Username: "a@x.com", Password: "pw123"})
	require.NoError(t, err)

	users.delete("a@x.com")

	_, err = svc.Refresh(ctx, login.RefreshToken)
	require.ErrorIs(t, err, core.ErrNotFound)

	_, err = svc.ResolveCurrentUser(ctx, login.AccessToken)
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestExpiredAccessTokenRejectedByResolve(t *testing.T) {
	users := newFakeUsers()
	jwtManager := newTestManager(t, func(c *config.JWTConfig) {
		c.AccessTokenExpire = -time.Second
	})
	svc := NewService(jwtManager, users)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)

	token, err := jwtManager.CreateAccessToken("a@x.com")
	require.NoError(t, err)

	_, err = svc.ResolveCurrentUser(ctx, token)
	require.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestIdentify(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterRequest{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)
	login, err := svc.Login(ctx, LoginRequest{Username: "a@x.com", Password: "pw123"})
	require.NoError(t, err)

	identity, err := svc.Identify(ctx, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, "a@x.com", identity.Email)
}
