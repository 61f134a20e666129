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

func newReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{
		Reviews:  &repo.ReviewRepo{DB: db},
		Users:    &repo.UserRepo{DB: db},
		Products: &repo.ProductRepo{DB: db},
	}
}

func TestReviewCreate(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	svc := newReviewService(db)

	seedUser(t, db, "alice", models.RoleCustomer)
	product := seedProduct(t, db, "keyboard", 100, 10)

	review, err := svc.Create(ctx, "alice", product.ID, transport.ReviewCreateRequest{Rating: 4.5, Comment: "solid"})
	require.NoError(t, err)
	require.Equal(t, 4.5, review.Rating)
	require.NotZero(t, review.CreatedAt)

	_, err = svc.Create(ctx, "alice", product.ID, transport.ReviewCreateRequest{Rating: 6})
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.CodeValidation, appErr.Code)

	_, err = svc.Create(ctx, "alice", 9999, transport.ReviewCreateRequest{Rating: 3})
	require.True(t, apperr.IsNotFound(err))
}

func TestReviewOwnerGuards(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	svc := newReviewService(db)

	seedUser(t, db, "alice", models.RoleCustomer)
	seedUser(t, db, "bob", models.RoleCustomer)
	product := seedProduct(t, db, "keyboard", 100, 10)

	review, err := svc.Create(ctx, "alice", product.ID, transport.ReviewCreateRequest{Rating: 4, Comment: "fine"})
	require.NoError(t, err)

	rating := 1.0
	_, err = svc.Update(ctx, "bob", review.ID, transport.UpdateReviewRequest{Rating: &rating})
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.CodeAccessDenied, appErr.Code)

	err = svc.Delete(ctx, "bob", review.ID)
	appErr, ok = apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.CodeAccessDenied, appErr.Code)

	comment := "changed my mind"
	updated, err := svc.Update(ctx, "alice", review.ID, transport.UpdateReviewRequest{Comment: &comment})
	require.NoError(t, err)
	require.Equal(t, 4.0, updated.Rating)
	require.Equal(t, "changed my mind", updated.Comment)

	require.NoError(t, svc.Delete(ctx, "alice", review.ID))
	_, err = svc.GetByID(ctx, review.ID)
	require.True(t, apperr.IsNotFound(err))
}

func TestReviewLists(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	svc := newReviewService(db)

	seedUser(t, db, "alice", models.RoleCustomer)
	seedUser(t, db, "bob", models.RoleCustomer)
	keyboard := seedProduct(t, db, "keyboard", 100, 10)
	mouse := seedProduct(t, db, "mouse", 50, 10)

	_, err := svc.Create(ctx, "alice", keyboard.ID, transport.ReviewCreateRequest{Rating: 5})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "alice", mouse.ID, transport.ReviewCreateRequest{Rating: 3})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "bob", keyboard.ID, transport.ReviewCreateRequest{Rating: 2})
	require.NoError(t, err)

	q := util.ParsePage("1", "10", "id", "asc", "id", "id", "rating")
	mine, total, err := svc.ListByUser(ctx, "alice", q)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, mine, 2)

	byProduct, total, err := svc.ListByProduct(ctx, keyboard.ID, q)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, byProduct, 2)
}
