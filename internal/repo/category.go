package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/lmelectronica/ecommerce/internal/models"
	"github.com/lmelectronica/ecommerce/internal/util"
)

type CategoryRepo struct {
	DB *gorm.DB
}

func (r *CategoryRepo) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.DB.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepo) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	if err := r.DB.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Category{}).Where("name = ?", name).Count(&n).Error
	return n > 0, err
}

func (r *CategoryRepo) List(ctx context.Context, q util.PageQuery) ([]models.Category, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []models.Category
	err := r.DB.WithContext(ctx).
		Order(q.Order()).
		Offset(q.Offset()).
		Limit(q.Size).
		Find(&categories).Error
	return categories, total, err
}

// ListByParent walks one level of the category tree.
func (r *CategoryRepo) ListByParent(ctx context.Context, parentID uint) ([]models.Category, error) {
	var categories []models.Category
	err := r.DB.WithContext(ctx).Where("parent_id = ?", parentID).Find(&categories).Error
	return categories, err
}

func (r *CategoryRepo) Create(ctx context.Context, category *models.Category) error {
	return r.DB.WithContext(ctx).Create(category).Error
}

func (r *CategoryRepo) Save(ctx context.Context, category *models.Category) error {
	return r.DB.WithContext(ctx).Save(category).Error
}

func (r *CategoryRepo) Delete(ctx context.Context, category *models.Category) error {
	if err := r.DB.WithContext(ctx).Where("category_id = ?", category.ID).Delete(&models.ProductCategory{}).Error; err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Delete(category).Error
}
