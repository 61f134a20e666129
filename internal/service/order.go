package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/logging"
	"github.com/lmelectronica/ecommerce/internal/models"
	"github.com/lmelectronica/ecommerce/internal/mykafka"
	"github.com/lmelectronica/ecommerce/internal/repo"
	"github.com/lmelectronica/ecommerce/internal/transport"
	"github.com/lmelectronica/ecommerce/internal/util"
)

type OrderService struct {
	DB     *gorm.DB
	Users  *repo.UserRepo
	Orders *repo.OrderRepo
	Items  *repo.OrderItemRepo
	Events Events
}

func (s *OrderService) Create(ctx context.Context, username string, req transport.CreateOrderRequest) (*models.Order, error) {
	l := logging.FromContext(ctx).With("service", "order.create")

	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, orNotFound(err, "User", username)
	}

	order := models.Order{
		UserID:         user.ID,
		BillingAddress: req.BillingAddress,
		Status:         models.OrderStatusPending,
		TotalAmount:    0,
		CreatedAt:      time.Now().Unix(),
	}
	if err := s.Orders.Create(ctx, &order); err != nil {
		return nil, err
	}

	l.Info("order_created", "order_id", order.ID, "user_id", user.ID)
	publish(ctx, s.Events, TopicOrderEvents, user.ID, mykafka.NewEvent("order_created", map[string]any{
		"order_id": order.ID,
		"user_id":  user.ID,
	}))
	return &order, nil
}

func (s *OrderService) List(ctx context.Context, q util.PageQuery) ([]models.Order, int64, error) {
	return s.Orders.List(ctx, q)
}

func (s *OrderService) ListByUser(ctx context.Context, username string, q util.PageQuery) ([]models.Order, int64, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, 0, orNotFound(err, "User", username)
	}
	return s.Orders.ListByUser(ctx, user.ID, q)
}

func (s *OrderService) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.Orders.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "Order", id)
	}
	return order, nil
}

// Update lets only the owner change the mutable fields: billing address and
// status.
func (s *OrderService) Update(ctx context.Context, username string, orderID uint, req transport.UpdateOrderRequest) (*models.Order, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, orNotFound(err, "User", username)
	}
	order, err := s.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != user.ID {
		return nil, apperr.AccessDenied("you can only update your own orders")
	}

	if req.BillingAddress != nil {
		order.BillingAddress = *req.BillingAddress
	}
	if req.Status != nil {
		if !models.ValidOrderStatus(*req.Status) {
			return nil, apperr.Validation("unknown order status")
		}
		order.Status = *req.Status
	}

	if err := s.Orders.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete removes the order and its items in one transaction, restoring the
// stock every item still holds before the rows go away.
func (s *OrderService) Delete(ctx context.Context, username string, orderID uint) error {
	l := logging.FromContext(ctx).With("service", "order.delete")

	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return orNotFound(err, "User", username)
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orders := repo.OrderRepo{DB: tx}
		items := repo.OrderItemRepo{DB: tx}
		products := repo.ProductRepo{DB: tx}

		order, err := orders.FindByID(ctx, orderID)
		if err != nil {
			return orNotFound(err, "Order", orderID)
		}
		if order.UserID != user.ID {
			return apperr.AccessDenied("you can only delete your own orders")
		}

		list, err := items.ListByOrder(ctx, orderID)
		if err != nil {
			return err
		}
		for i := range list {
			if err := restoreStock(ctx, &products, list[i].ProductID, list[i].Quantity); err != nil {
				return err
			}
		}
		if err := items.DeleteByOrder(ctx, orderID); err != nil {
			return err
		}
		return orders.Delete(ctx, order)
	})
	if err != nil {
		return err
	}

	l.Info("order_deleted", "order_id", orderID, "user_id", user.ID)
	publish(ctx, s.Events, TopicOrderEvents, user.ID, mykafka.NewEvent("order_deleted", map[string]any{
		"order_id": orderID,
		"user_id":  user.ID,
	}))
	return nil
}

// CalculateOrderTotal recomputes and persists the cached total.
func (s *OrderService) CalculateOrderTotal(ctx context.Context, orderID uint) (float64, error) {
	var total float64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		total, err = recalcOrderTotal(ctx, tx, orderID)
		return err
	})
	return total, err
}

// recalcOrderTotal runs inside the caller's transaction. The cached
// total_amount is only ever written here, after an item mutation.
func recalcOrderTotal(ctx context.Context, tx *gorm.DB, orderID uint) (float64, error) {
	orders := repo.OrderRepo{DB: tx}
	items := repo.OrderItemRepo{DB: tx}

	order, err := orders.FindByID(ctx, orderID)
	if err != nil {
		return 0, orNotFound(err, "Order", orderID)
	}

	list, err := items.ListByOrder(ctx, orderID)
	if err != nil {
		return 0, err
	}

	var total float64
	for i := range list {
		total += list[i].Price
	}

	order.TotalAmount = total
	if err := orders.Save(ctx, order); err != nil {
		return 0, err
	}
	return total, nil
}

// restoreStock gives quantity units back to the product under its row lock.
// A missing product is tolerated: items may outlive a deleted product.
func restoreStock(ctx context.Context, products *repo.ProductRepo, productID uint, quantity int) error {
	product, err := products.FindByIDForUpdate(ctx, productID)
	if err != nil {
		if apperr.IsNotFound(orNotFound(err, "Product", productID)) {
			return nil
		}
		return err
	}
	product.Stock += quantity
	return products.Save(ctx, product)
}
