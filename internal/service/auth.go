package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/hash"
	"github.com/lmelectronica/ecommerce/internal/logging"
	"github.com/lmelectronica/ecommerce/internal/models"
	"github.com/lmelectronica/ecommerce/internal/mykafka"
	"github.com/lmelectronica/ecommerce/internal/repo"
	"github.com/lmelectronica/ecommerce/internal/transport"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

type AuthService struct {
	Users         *repo.UserRepo
	Tokens        *repo.RefreshTokenRepo
	JWTSecret     []byte
	RefreshSecret []byte
	Events        Events
}

func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*transport.AuthResponse, error) {
	l := logging.FromContext(ctx).With("service", "auth.register")

	if req.Username == "" || req.Password == "" || req.Email == "" {
		return nil, apperr.Validation("username, email and password are required")
	}

	if exists, err := s.Users.ExistsByUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if exists {
		return nil, apperr.Duplicate("User", "username", req.Username)
	}
	if exists, err := s.Users.ExistsByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, apperr.Duplicate("User", "email", req.Email)
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.RoleCustomer,
	}
	if err := s.Users.Create(ctx, &user); err != nil {
		return nil, err
	}

	resp, err := s.issueTokens(ctx, &user)
	if err != nil {
		return nil, err
	}

	l.Info("user_registered", "user_id", user.ID)
	publish(ctx, s.Events, TopicUserEvents, user.ID, mykafka.NewEvent("user_registered", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	}))

	return resp, nil
}

func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (*transport.AuthResponse, error) {
	l := logging.FromContext(ctx).With("service", "auth.login")

	user, err := s.Users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.InvalidCredentials()
		}
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperr.InvalidCredentials()
	}

	resp, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	l.Info("user_logged_in", "user_id", user.ID)
	publish(ctx, s.Events, TopicUserEvents, user.ID, mykafka.NewEvent("user_logged_in", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	}))

	return resp, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. Revoked, expired and unknown tokens are all rejected.
func (s *AuthService) Refresh(ctx context.Context, raw string) (*transport.AuthResponse, error) {
	claims, err := s.validateRefresh(ctx, raw)
	if err != nil {
		return nil, err
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, apperr.Unauthorized("invalid refresh token")
	}
	user, err := s.Users.FindByUsername(ctx, sub)
	if err != nil {
		return nil, orNotFound(err, "User", sub)
	}

	if err := s.Tokens.Revoke(ctx, raw); err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*transport.AuthResponse, error) {
	access, err := s.signAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshExp := time.Now().Add(RefreshTokenTTL)
	refresh, err := s.signRefreshToken(user, refreshExp)
	if err != nil {
		return nil, err
	}
	stored := models.RefreshToken{
		Token:     refresh,
		UserID:    user.ID,
		ExpiresAt: refreshExp,
	}
	if err := s.Tokens.Create(ctx, &stored); err != nil {
		return nil, err
	}

	return &transport.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Username:     user.Username,
		Email:        user.Email,
		Role:         user.Role,
	}, nil
}

func (s *AuthService) signAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":     user.Username,
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.JWTSecret)
}

func (s *AuthService) signRefreshToken(user *models.User, exp time.Time) (string, error) {
	// jti keeps two tokens issued in the same second distinct; the stored
	// token column is unique.
	claims := jwt.MapClaims{
		"sub": user.Username,
		"typ": "refresh",
		"jti": uuid.NewString(),
		"exp": exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.RefreshSecret)
}

func (s *AuthService) validateRefresh(ctx context.Context, raw string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.RefreshSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Unauthorized("invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperr.Unauthorized("invalid refresh token")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return nil, apperr.Unauthorized("not a refresh token")
	}

	stored, err := s.Tokens.FindByToken(ctx, raw)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("unknown refresh token")
		}
		return nil, err
	}
	if stored.Revoked {
		return nil, apperr.Unauthorized("refresh token revoked")
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, apperr.Unauthorized("refresh token expired")
	}

	return claims, nil
}
