package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lmelectronica/ecommerce/internal/models"
	"github.com/lmelectronica/ecommerce/internal/util"
)

type OrderRepo struct {
	DB *gorm.DB
}

func (r *OrderRepo) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) List(ctx context.Context, q util.PageQuery) ([]models.Order, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Order(q.Order()).
		Offset(q.Offset()).
		Limit(q.Size).
		Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID uint, q util.PageQuery) ([]models.Order, int64, error) {
	base := r.DB.WithContext(ctx).Model(&models.Order{}).Where("user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(q.Order()).
		Offset(q.Offset()).
		Limit(q.Size).
		Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepo) Create(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Create(order).Error
}

func (r *OrderRepo) Save(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Save(order).Error
}

func (r *OrderRepo) Delete(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Delete(order).Error
}

type OrderItemRepo struct {
	DB *gorm.DB
}

func (r *OrderItemRepo) FindByID(ctx context.Context, id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDForUpdate locks the item row for the rest of the surrounding
// transaction, so two concurrent mutations of one item cannot both act on
// the same snapshot. sqlite has no FOR UPDATE; its single-writer
// transactions serialize instead.
func (r *OrderItemRepo) FindByIDForUpdate(ctx context.Context, id uint) (*models.OrderItem, error) {
	q := r.DB.WithContext(ctx)
	if r.DB.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var item models.OrderItem
	if err := q.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *OrderItemRepo) ListByOrder(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.DB.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *OrderItemRepo) Create(ctx context.Context, item *models.OrderItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *OrderItemRepo) Save(ctx context.Context, item *models.OrderItem) error {
	return r.DB.WithContext(ctx).Save(item).Error
}

// Delete reports gorm.ErrRecordNotFound when the row is already gone, so a
// caller acting on a stale snapshot rolls back instead of committing.
func (r *OrderItemRepo) Delete(ctx context.Context, item *models.OrderItem) error {
	res := r.DB.WithContext(ctx).Delete(item)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *OrderItemRepo) DeleteByOrder(ctx context.Context, orderID uint) error {
	return r.DB.WithContext(ctx).Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error
}
