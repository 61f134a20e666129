package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/models"
	"github.com/lmelectronica/ecommerce/internal/repo"
	"github.com/lmelectronica/ecommerce/internal/transport"
	"github.com/lmelectronica/ecommerce/internal/util"
)

func newOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		DB:     db,
		Users:  &repo.UserRepo{DB: db},
		Orders: &repo.OrderRepo{DB: db},
		Items:  &repo.OrderItemRepo{DB: db},
	}
}

func TestOrderCreateStartsPendingAndEmpty(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	svc := newOrderService(db)

	seedUser(t, db, "alice", models.RoleCustomer)
	events := &recordingEvents{}
	svc.Events = events

	order, err := svc.Create(ctx, "alice", transport.CreateOrderRequest{BillingAddress: "1 Main St"})
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.Zero(t, order.TotalAmount)
	require.Equal(t, "1 Main St", order.BillingAddress)
	require.NotZero(t, order.CreatedAt)
	require.Equal(t, []string{"order_created"}, events.types())

	_, err = svc.Create(ctx, "nobody", transport.CreateOrderRequest{})
	require.True(t, apperr.IsNotFound(err))
}

func TestOrderUpdateOwnerOnly(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	svc := newOrderService(db)

	alice := seedUser(t, db, "alice", models.RoleCustomer)
	seedUser(t, db, "bob", models.RoleCustomer)
	order := seedOrder(t, db, alice.ID)

	status := models.OrderStatusPaid
	_, err := svc.Update(ctx, "bob", order.ID, transport.UpdateOrderRequest{Status: &status})
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.CodeAccessDenied, appErr.Code)

	var got models.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	require.Equal(t, models.OrderStatusPending, got.Status)

	updated, err := svc.Update(ctx, "alice", order.ID, transport.UpdateOrderRequest{Status: &status})
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusPaid, updated.Status)

	bogus := "teleported"
	_, err = svc.Update(ctx, "alice", order.ID, transport.UpdateOrderRequest{Status: &bogus})
	appErr, ok = apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.CodeValidation, appErr.Code)
}

func TestOrderUpdatePartialBillingAddress(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	svc := newOrderService(db)

	alice := seedUser(t, db, "alice", models.RoleCustomer)
	order := seedOrder(t, db, alice.ID)

	addr := "2 Side St"
	updated, err := svc.Update(ctx, "alice", order.ID, transport.UpdateOrderRequest{BillingAddress: &addr})
	require.NoError(t, err)
	require.Equal(t, "2 Side St", updated.BillingAddress)
	require.Equal(t, models.OrderStatusPending, updated.Status)
}

func TestOrderDeleteRestoresAllItemStock(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	svc := newOrderService(db)
	items := newOrderItemService(db)

	alice := seedUser(t, db, "alice", models.RoleCustomer)
	seedUser(t, db, "bob", models.RoleCustomer)
	keyboard := seedProduct(t, db, "keyboard", 100, 10)
	mouse := seedProduct(t, db, "mouse", 50, 6)
	order := seedOrder(t, db, alice.ID)

	_, err := items.Create(ctx, order.ID, keyboard.ID, 2)
	require.NoError(t, err)
	_, err = items.Create(ctx, order.ID, mouse.ID, 3)
	require.NoError(t, err)

	err = svc.Delete(ctx, "bob", order.ID)
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.CodeAccessDenied, appErr.Code)

	require.NoError(t, svc.Delete(ctx, "alice", order.ID))

	var got models.Product
	require.NoError(t, db.First(&got, keyboard.ID).Error)
	require.Equal(t, 10, got.Stock)
	got = models.Product{}
	require.NoError(t, db.First(&got, mouse.ID).Error)
	require.Equal(t, 6, got.Stock)

	var n int64
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&n).Error)
	require.Zero(t, n)
	require.NoError(t, db.Model(&models.Order{}).Count(&n).Error)
	require.Zero(t, n)

	err = svc.Delete(ctx, "alice", order.ID)
	require.True(t, apperr.IsNotFound(err))
}

func TestOrderListByUser(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	svc := newOrderService(db)

	alice := seedUser(t, db, "alice", models.RoleCustomer)
	bob := seedUser(t, db, "bob", models.RoleCustomer)
	seedOrder(t, db, alice.ID)
	seedOrder(t, db, alice.ID)
	seedOrder(t, db, bob.ID)

	q := util.ParsePage("1", "10", "id", "asc", "id", "id")
	orders, total, err := svc.ListByUser(ctx, "alice", q)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, orders, 2)
	for _, o := range orders {
		require.Equal(t, alice.ID, o.UserID)
	}

	all, total, err := svc.List(ctx, q)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, all, 3)
}
