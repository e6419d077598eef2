// AngelaMos | 2026
// dto.go

package auth

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=128"`
}

// LoginRequest is read from an OAuth2 password-grant style form.
type LoginRequest struct {
	Username string `form:"username" validate:"required,max=255"`
	Password string `form:"password" validate:"required,max=128"`
}

type RefreshRequest struct {
	RefreshToken string `form:"refresh_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type MeResponse struct {
	Email string `json:"email"`
}
