package services

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"bpo-website/internal/middleware"
	"bpo-website/internal/models"
)

// OperatorTokenTTL is the lifetime of an operator access token.
const OperatorTokenTTL = 8 * time.Hour

// AuthService checks the single configured operator credential. It stands in
// for a real identity provider.
type AuthService struct {
	jwt          *middleware.JWTAuth
	adminEmail   string
	passwordHash []byte
}

func NewAuthService(jwt *middleware.JWTAuth, adminEmail, passwordHash string) *AuthService {
	return &AuthService{
		jwt:          jwt,
		adminEmail:   strings.TrimSpace(adminEmail),
		passwordHash: []byte(passwordHash),
	}
}

func (s *AuthService) Configured() bool {
	return s.jwt != nil && len(s.jwt.Secret) > 0 && s.adminEmail != "" && len(s.passwordHash) > 0
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthTokens, error) {
	fieldErrors := make(map[string]string)
	requireFields(fieldErrors, field{"email", req.Email}, field{"password", req.Password})
	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	emailOK := subtle.ConstantTimeCompare(
		[]byte(strings.ToLower(strings.TrimSpace(req.Email))),
		[]byte(strings.ToLower(s.adminEmail)),
	) == 1
	passOK := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)) == nil
	if !emailOK || !passOK {
		return nil, &UnauthorizedError{Message: "Invalid email or password"}
	}

	token, err := s.jwt.GenerateAccessToken(s.adminEmail, OperatorTokenTTL)
	if err != nil {
		return nil, err
	}
	return &models.AuthTokens{AccessToken: token, ExpiresIn: int(OperatorTokenTTL.Seconds())}, nil
}
