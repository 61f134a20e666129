package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/lmelectronica/ecommerce/internal/models"
)

type UserRepo struct {
	DB *gorm.DB
}

func (r *UserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&n).Error
	return n > 0, err
}

func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *UserRepo) Save(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Save(user).Error
}

func (r *UserRepo) Delete(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Delete(user).Error
}

type RefreshTokenRepo struct {
	DB *gorm.DB
}

func (r *RefreshTokenRepo) Create(ctx context.Context, token *models.RefreshToken) error {
	return r.DB.WithContext(ctx).Create(token).Error
}

func (r *RefreshTokenRepo) FindByToken(ctx context.Context, raw string) (*models.RefreshToken, error) {
	var stored models.RefreshToken
	if err := r.DB.WithContext(ctx).Where("token = ?", raw).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *RefreshTokenRepo) Revoke(ctx context.Context, raw string) error {
	return r.DB.WithContext(ctx).
		Model(&models.RefreshToken{}).
		Where("token = ?", raw).
		Update("revoked", true).Error
}

func (r *RefreshTokenRepo) RevokeAllForUser(ctx context.Context, userID uint) error {
	return r.DB.WithContext(ctx).
		Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked = ?", userID, false).
		Update("revoked", true).Error
}

func (r *RefreshTokenRepo) DeleteExpired(ctx context.Context, now time.Time) error {
	return r.DB.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&models.RefreshToken{}).Error
}
