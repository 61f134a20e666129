package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/logging"
	"github.com/lmelectronica/ecommerce/internal/models"
	"github.com/lmelectronica/ecommerce/internal/mykafka"
	"github.com/lmelectronica/ecommerce/internal/repo"
)

// OrderItemService owns the stock reservation rules: every unit of quantity
// on an item is a unit deducted from its product's stock, restored exactly
// once when the item shrinks or goes away. All three mutations run in a
// single transaction with the product row locked (Update and Delete lock the
// item row too) and finish by recomputing the cached order total.
type OrderItemService struct {
	DB     *gorm.DB
	Items  *repo.OrderItemRepo
	Events Events
}

func (s *OrderItemService) Create(ctx context.Context, orderID, productID uint, quantity int) (*models.OrderItem, error) {
	l := logging.FromContext(ctx).With("service", "orderitem.create")

	if quantity <= 0 {
		return nil, apperr.Validation("quantity must be > 0")
	}

	var item models.OrderItem
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := repo.ProductRepo{DB: tx}
		orders := repo.OrderRepo{DB: tx}
		items := repo.OrderItemRepo{DB: tx}

		product, err := products.FindByIDForUpdate(ctx, productID)
		if err != nil {
			return orNotFound(err, "Product", productID)
		}
		if _, err := orders.FindByID(ctx, orderID); err != nil {
			return orNotFound(err, "Order", orderID)
		}

		if quantity > product.Stock {
			return apperr.InsufficientStock(product.Name, quantity, product.Stock)
		}
		product.Stock -= quantity
		if err := products.Save(ctx, product); err != nil {
			return err
		}

		item = models.OrderItem{
			OrderID:   orderID,
			ProductID: productID,
			Quantity:  quantity,
			Price:     float64(quantity) * product.Price,
		}
		if err := items.Create(ctx, &item); err != nil {
			return err
		}

		_, err = recalcOrderTotal(ctx, tx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	l.Info("order_item_created", "item_id", item.ID, "order_id", orderID, "product_id", productID)
	publish(ctx, s.Events, TopicOrderEvents, orderID, mykafka.NewEvent("order_item_created", map[string]any{
		"item_id":    item.ID,
		"order_id":   orderID,
		"product_id": productID,
		"quantity":   quantity,
	}))
	return &item, nil
}

func (s *OrderItemService) GetByID(ctx context.Context, id uint) (*models.OrderItem, error) {
	item, err := s.Items.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "OrderItem", id)
	}
	return item, nil
}

func (s *OrderItemService) ListByOrder(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	return s.Items.ListByOrder(ctx, orderID)
}

// Update moves the item to the new quantity. A growing item reserves the
// difference against stock; a shrinking one gives the difference back. The
// line price is re-snapshotted from the current product price.
func (s *OrderItemService) Update(ctx context.Context, id uint, quantity int) (*models.OrderItem, error) {
	if quantity <= 0 {
		return nil, apperr.Validation("quantity must be > 0")
	}

	var item *models.OrderItem
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := repo.ProductRepo{DB: tx}
		items := repo.OrderItemRepo{DB: tx}

		var err error
		item, err = items.FindByIDForUpdate(ctx, id)
		if err != nil {
			return orNotFound(err, "OrderItem", id)
		}

		product, err := products.FindByIDForUpdate(ctx, item.ProductID)
		if err != nil {
			return orNotFound(err, "Product", item.ProductID)
		}

		delta := quantity - item.Quantity
		if delta > 0 && delta > product.Stock {
			// The item's current quantity is already held, so it counts
			// as available for this item.
			return apperr.InsufficientStock(product.Name, quantity, product.Stock+item.Quantity)
		}
		if delta != 0 {
			product.Stock -= delta
			if err := products.Save(ctx, product); err != nil {
				return err
			}
		}

		item.Quantity = quantity
		item.Price = float64(quantity) * product.Price
		if err := items.Save(ctx, item); err != nil {
			return err
		}

		_, err = recalcOrderTotal(ctx, tx, item.OrderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, s.Events, TopicOrderEvents, item.OrderID, mykafka.NewEvent("order_item_updated", map[string]any{
		"item_id":  item.ID,
		"order_id": item.OrderID,
		"quantity": quantity,
	}))
	return item, nil
}

// Delete removes the item and restores its full quantity to the product.
// A second delete finds no row and fails with not-found, so the restore
// happens exactly once.
func (s *OrderItemService) Delete(ctx context.Context, id uint) error {
	var orderID uint
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := repo.ProductRepo{DB: tx}
		items := repo.OrderItemRepo{DB: tx}

		item, err := items.FindByIDForUpdate(ctx, id)
		if err != nil {
			return orNotFound(err, "OrderItem", id)
		}
		orderID = item.OrderID

		if err := restoreStock(ctx, &products, item.ProductID, item.Quantity); err != nil {
			return err
		}
		if err := items.Delete(ctx, item); err != nil {
			return orNotFound(err, "OrderItem", id)
		}

		_, err = recalcOrderTotal(ctx, tx, orderID)
		return err
	})
	if err != nil {
		return err
	}

	publish(ctx, s.Events, TopicOrderEvents, orderID, mykafka.NewEvent("order_item_deleted", map[string]any{
		"item_id":  id,
		"order_id": orderID,
	}))
	return nil
}
