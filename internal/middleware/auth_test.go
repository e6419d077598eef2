// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carterperez-dev/templates/insights-api/internal/core"
)

type resolverFunc func(ctx context.Context, token string) (*Identity, error)

func (f resolverFunc) Identify(ctx context.Context, token string) (*Identity, error) {
	return f(ctx, token)
}

func TestExtractToken(t *testing.T) {
	tests := map[string]string{
		"":                 "",
		"Bearer abc":       "abc",
		"bearer  abc ":     "abc",
		"Basic dXNlcjpwdw": "",
		"Bearer":           "",
	}

	for header, want := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		assert.Equal(t, want, ExtractToken(r), header)
	}
}

func TestAuthenticator(t *testing.T) {
	resolver := resolverFunc(func(_ context.Context, token string) (*Identity, error) {
		switch token {
		case "good":
			return &Identity{UserID: 1, Email: "a@x.com"}, nil
		case "expired":
			return nil, fmt.Errorf("resolve user: %w", core.ErrTokenExpired)
		case "invalid":
			return nil, fmt.Errorf("resolve user: %w", core.ErrTokenInvalid)
		case "gone":
			return nil, fmt.Errorf("resolve user: %w", core.ErrNotFound)
		default:
			return nil, errors.New("database down")
		}
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(GetUserEmail(r.Context())))
	})
	h := Authenticator(resolver)(next)

	tests := []struct {
		name      string
		header    string
		status    int
		challenge bool
	}{
		{"valid", "Bearer good", http.StatusOK, false},
		{"missing", "", http.StatusUnauthorized, true},
		{"expired", "Bearer expired", http.StatusUnauthorized, true},
		{"invalid", "Bearer invalid", http.StatusUnauthorized, true},
		{"user gone", "Bearer gone", http.StatusNotFound, false},
		{"backend error", "Bearer other", http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, r)

			assert.Equal(t, tt.status, rec.Code)
			if tt.challenge {
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			}
			if tt.status == http.StatusOK {
				assert.Equal(t, "a@x.com", rec.Body.String())
			}
		})
	}
}

func TestGetIdentityEmptyContext(t *testing.T) {
	assert.Nil(t, GetIdentity(context.Background()))
	assert.Empty(t, GetUserEmail(context.Background()))
}
