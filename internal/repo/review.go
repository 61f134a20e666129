package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/lmelectronica/ecommerce/internal/models"
	"github.com/lmelectronica/ecommerce/internal/util"
)

type ReviewRepo struct {
	DB *gorm.DB
}

func (r *ReviewRepo) FindByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := r.DB.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepo) ListByUser(ctx context.Context, userID uint, q util.PageQuery) ([]models.Review, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Review{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(q.Order()).
		Offset(q.Offset()).
		Limit(q.Size).
		Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepo) ListByProduct(ctx context.Context, productID uint, q util.PageQuery) ([]models.Review, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Review{}).Where("product_id = ?", productID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := r.DB.WithContext(ctx).
		Where("product_id = ?", productID).
		Order(q.Order()).
		Offset(q.Offset()).
		Limit(q.Size).
		Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepo) Create(ctx context.Context, review *models.Review) error {
	return r.DB.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepo) Save(ctx context.Context, review *models.Review) error {
	return r.DB.WithContext(ctx).Save(review).Error
}

func (r *ReviewRepo) Delete(ctx context.Context, review *models.Review) error {
	return r.DB.WithContext(ctx).Delete(review).Error
}
