package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lmelectronica/ecommerce/internal/models"
	"github.com/lmelectronica/ecommerce/internal/util"
)

type ProductRepo struct {
	DB *gorm.DB
}

func (r *ProductRepo) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDForUpdate locks the product row for the rest of the surrounding
// transaction. Stock mutations go through this so two simultaneous item
// creations on one product serialize instead of over-selling. sqlite has no
// FOR UPDATE; its single-writer transactions serialize on their own.
func (r *ProductRepo) FindByIDForUpdate(ctx context.Context, id uint) (*models.Product, error) {
	q := r.DB.WithContext(ctx)
	if r.DB.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var product models.Product
	if err := q.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepo) FindByName(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Where("name = ?", name).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Product{}).Where("name = ?", name).Count(&n).Error
	return n > 0, err
}

func (r *ProductRepo) List(ctx context.Context, q util.PageQuery) ([]models.Product, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := r.DB.WithContext(ctx).
		Order(q.Order()).
		Offset(q.Offset()).
		Limit(q.Size).
		Find(&products).Error
	return products, total, err
}

func (r *ProductRepo) Create(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Create(product).Error
}

func (r *ProductRepo) Save(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Save(product).Error
}

func (r *ProductRepo) Delete(ctx context.Context, product *models.Product) error {
	if err := r.DB.WithContext(ctx).Where("product_id = ?", product.ID).Delete(&models.ProductCategory{}).Error; err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Delete(product).Error
}

// ReplaceCategories rewrites the product's join rows to exactly ids.
func (r *ProductRepo) ReplaceCategories(ctx context.Context, productID uint, ids []uint) error {
	if err := r.DB.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ProductCategory{}).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	rows := make([]models.ProductCategory, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.ProductCategory{ProductID: productID, CategoryID: id})
	}
	return r.DB.WithContext(ctx).Create(&rows).Error
}

func (r *ProductRepo) CategoryIDs(ctx context.Context, productID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.WithContext(ctx).
		Model(&models.ProductCategory{}).
		Where("product_id = ?", productID).
		Pluck("category_id", &ids).Error
	return ids, err
}

type ProductDetailRepo struct {
	DB *gorm.DB
}

func (r *ProductDetailRepo) FindByID(ctx context.Context, id uint) (*models.ProductDetail, error) {
	var detail models.ProductDetail
	if err := r.DB.WithContext(ctx).First(&detail, id).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *ProductDetailRepo) ListByProduct(ctx context.Context, productID uint) ([]models.ProductDetail, error) {
	var details []models.ProductDetail
	err := r.DB.WithContext(ctx).Where("product_id = ?", productID).Find(&details).Error
	return details, err
}

func (r *ProductDetailRepo) Create(ctx context.Context, detail *models.ProductDetail) error {
	return r.DB.WithContext(ctx).Create(detail).Error
}

func (r *ProductDetailRepo) Save(ctx context.Context, detail *models.ProductDetail) error {
	return r.DB.WithContext(ctx).Save(detail).Error
}

func (r *ProductDetailRepo) Delete(ctx context.Context, detail *models.ProductDetail) error {
	return r.DB.WithContext(ctx).Delete(detail).Error
}
