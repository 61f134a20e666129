package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/hash"
	"github.com/lmelectronica/ecommerce/internal/logging"
	"github.com/lmelectronica/ecommerce/internal/models"
	"github.com/lmelectronica/ecommerce/internal/mykafka"
	"github.com/lmelectronica/ecommerce/internal/repo"
	"github.com/lmelectronica/ecommerce/internal/transport"
)

type UserService struct {
	DB     *gorm.DB
	Users  *repo.UserRepo
	Events Events
}

func (s *UserService) UpdatePassword(ctx context.Context, username string, req transport.ChangePasswordRequest) error {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return orNotFound(err, "User", username)
	}
	if !hash.CheckPassword(user.PasswordHash, req.OldPassword) {
		return apperr.InvalidCredentials()
	}
	if req.NewPassword == "" {
		return apperr.Validation("new password is required")
	}

	newHash, err := hash.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = newHash

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := repo.UserRepo{DB: tx}
		tokens := repo.RefreshTokenRepo{DB: tx}
		if err := users.Save(ctx, user); err != nil {
			return err
		}
		// a password change invalidates every outstanding session
		return tokens.RevokeAllForUser(ctx, user.ID)
	})
}

func (s *UserService) UpdateProfile(ctx context.Context, username string, req transport.UpdateProfileRequest) (*transport.UserDTO, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, orNotFound(err, "User", username)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if err := s.Users.Save(ctx, user); err != nil {
		return nil, err
	}

	return mapUserDTO(user), nil
}

// DeleteAccount removes the user after re-checking the password. The address
// row is detached first; orders, reviews and favorites keep their user_id as
// a dangling reference.
func (s *UserService) DeleteAccount(ctx context.Context, username string, req transport.DeleteAccountRequest) error {
	l := logging.FromContext(ctx).With("service", "user.delete_account")

	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return orNotFound(err, "User", username)
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return apperr.InvalidCredentials()
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := repo.UserRepo{DB: tx}
		addresses := repo.AddressRepo{DB: tx}
		tokens := repo.RefreshTokenRepo{DB: tx}

		if err := addresses.DeleteByUserID(ctx, user.ID); err != nil {
			return err
		}
		if err := tokens.RevokeAllForUser(ctx, user.ID); err != nil {
			return err
		}
		return users.Delete(ctx, user)
	})
	if err != nil {
		return err
	}

	l.Info("account_deleted", "user_id", user.ID)
	publish(ctx, s.Events, TopicUserEvents, user.ID, mykafka.NewEvent("user_deleted", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	}))
	return nil
}

func mapUserDTO(user *models.User) *transport.UserDTO {
	return &transport.UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	}
}
