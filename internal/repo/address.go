package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/lmelectronica/ecommerce/internal/models"
)

type AddressRepo struct {
	DB *gorm.DB
}

func (r *AddressRepo) FindByUserID(ctx context.Context, userID uint) (*models.Address, error) {
	var address models.Address
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *AddressRepo) ExistsForUser(ctx context.Context, userID uint) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Address{}).Where("user_id = ?", userID).Count(&n).Error
	return n > 0, err
}

func (r *AddressRepo) Create(ctx context.Context, address *models.Address) error {
	return r.DB.WithContext(ctx).Create(address).Error
}

func (r *AddressRepo) Save(ctx context.Context, address *models.Address) error {
	return r.DB.WithContext(ctx).Save(address).Error
}

func (r *AddressRepo) Delete(ctx context.Context, address *models.Address) error {
	return r.DB.WithContext(ctx).Delete(address).Error
}

func (r *AddressRepo) DeleteByUserID(ctx context.Context, userID uint) error {
	return r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Address{}).Error
}
