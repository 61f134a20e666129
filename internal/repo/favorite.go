package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/lmelectronica/ecommerce/internal/models"
	"github.com/lmelectronica/ecommerce/internal/util"
)

type FavoriteRepo struct {
	DB *gorm.DB
}

func (r *FavoriteRepo) FindByUserAndProduct(ctx context.Context, userID, productID uint) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *FavoriteRepo) ListByUser(ctx context.Context, userID uint, q util.PageQuery) ([]models.Favorite, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var favorites []models.Favorite
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(q.Order()).
		Offset(q.Offset()).
		Limit(q.Size).
		Find(&favorites).Error
	return favorites, total, err
}

func (r *FavoriteRepo) CountByProduct(ctx context.Context, productID uint) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Favorite{}).Where("product_id = ?", productID).Count(&n).Error
	return n, err
}

func (r *FavoriteRepo) Create(ctx context.Context, favorite *models.Favorite) error {
	return r.DB.WithContext(ctx).Create(favorite).Error
}

func (r *FavoriteRepo) Delete(ctx context.Context, favorite *models.Favorite) error {
	return r.DB.WithContext(ctx).Delete(favorite).Error
}
