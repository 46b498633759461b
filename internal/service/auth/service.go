package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/stitchlabs/workshop-backend-go/internal/domain/auth"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/jwt"
)

// AuthService verifies the single back-office login and issues access tokens.
type AuthService struct {
	jwtService   jwt.Service
	username     string
	passwordHash string
}

func NewAuthService(jwtService jwt.Service, username, passwordHash string) *AuthService {
	return &AuthService{
		jwtService:   jwtService,
		username:     strings.ToLower(username),
		passwordHash: passwordHash,
	}
}

func (s *AuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	password := strings.TrimSpace(req.Password)

	if username != s.username {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(username)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}
