package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/models"
	"github.com/lmelectronica/ecommerce/internal/repo"
	"github.com/lmelectronica/ecommerce/internal/transport"
)

func newAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		Users:         &repo.UserRepo{DB: db},
		Tokens:        &repo.RefreshTokenRepo{DB: db},
		JWTSecret:     []byte("test-jwt-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
	}
}

func TestRegister(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	svc := newAuthService(db)
	events := &recordingEvents{}
	svc.Events = events

	resp, err := svc.Register(ctx, transport.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password",
	})
	require.NoError(t, err)
	require.Equal(t, "alice", resp.Username)
	require.Equal(t, models.RoleCustomer, resp.Role)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	require.Equal(t, []string{"user_registered"}, events.types())

	var user models.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
	require.NotEqual(t, "password", user.PasswordHash)

	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (any, error) {
		return svc.JWTSecret, nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, "alice", claims["sub"])
	require.Equal(t, models.RoleCustomer, claims["role"])
}

func TestRegisterDuplicates(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	svc := newAuthService(db)

	_, err := svc.Register(ctx, transport.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "password"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, transport.RegisterRequest{Username: "alice", Email: "other@example.com", Password: "password"})
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.CodeBusinessRule, appErr.Code)

	_, err = svc.Register(ctx, transport.RegisterRequest{Username: "other", Email: "alice@example.com", Password: "password"})
	appErr, ok = apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.CodeBusinessRule, appErr.Code)

	_, err = svc.Register(ctx, transport.RegisterRequest{Username: "", Email: "", Password: ""})
	appErr, ok = apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.CodeValidation, appErr.Code)
}

func TestLogin(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	svc := newAuthService(db)

	seedUser(t, db, "alice", models.RoleCustomer)

	resp, err := svc.Login(ctx, transport.LoginRequest{Username: "alice", Password: "password"})
	require.NoError(t, err)
	require.Equal(t, "alice", resp.Username)
	require.NotEmpty(t, resp.AccessToken)

	_, err = svc.Login(ctx, transport.LoginRequest{Username: "alice", Password: "wrong"})
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.CodeAuthorization, appErr.Code)

	// unknown user reads the same as a bad password
	_, err = svc.Login(ctx, transport.LoginRequest{Username: "nobody", Password: "password"})
	appErr, ok = apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.CodeAuthorization, appErr.Code)
	require.Equal(t, "invalid credentials", appErr.Message)
}

func TestRefreshRotatesToken(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	svc := newAuthService(db)

	seedUser(t, db, "alice", models.RoleCustomer)
	first, err := svc.Login(ctx, transport.LoginRequest{Username: "alice", Password: "password"})
	require.NoError(t, err)

	second, err := svc.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// the rotated-out token is revoked and cannot be replayed
	_, err = svc.Refresh(ctx, first.RefreshToken)
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.CodeAuthorization, appErr.Code)

	_, err = svc.Refresh(ctx, "not-a-token")
	appErr, ok = apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.CodeAuthorization, appErr.Code)

	// an access token signed with the other secret is not a refresh token
	_, err = svc.Refresh(ctx, first.AccessToken)
	appErr, ok = apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.CodeAuthorization, appErr.Code)
}
