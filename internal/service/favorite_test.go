package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/models"
	"github.com/lmelectronica/ecommerce/internal/repo"
	"github.com/lmelectronica/ecommerce/internal/util"
)

func newFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{
		Favorites: &repo.FavoriteRepo{DB: db},
		Users:     &repo.UserRepo{DB: db},
		Products:  &repo.ProductRepo{DB: db},
	}
}

func TestFavoriteDuplicatePair(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	svc := newFavoriteService(db)

	alice := seedUser(t, db, "alice", models.RoleCustomer)
	product := seedProduct(t, db, "keyboard", 100, 10)

	_, err := svc.Create(ctx, "alice", product.ID)
	require.NoError(t, err)

	// The insert itself hits the unique index, the same way the loser of
	// two concurrent creates does, and comes back as a business-rule 409.
	err = svc.Favorites.Create(ctx, &models.Favorite{UserID: alice.ID, ProductID: product.ID})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	_, err = svc.Create(ctx, "alice", product.ID)
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.CodeBusinessRule, appErr.Code)

	var n int64
	require.NoError(t, db.Model(&models.Favorite{}).Count(&n).Error)
	require.EqualValues(t, 1, n)
}

func TestFavoriteListAndCount(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	svc := newFavoriteService(db)

	seedUser(t, db, "alice", models.RoleCustomer)
	seedUser(t, db, "bob", models.RoleCustomer)
	keyboard := seedProduct(t, db, "keyboard", 100, 10)
	mouse := seedProduct(t, db, "mouse", 50, 10)

	_, err := svc.Create(ctx, "alice", keyboard.ID)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "alice", mouse.ID)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "bob", keyboard.ID)
	require.NoError(t, err)

	q := util.ParsePage("1", "10", "id", "asc", "id", "id")
	mine, total, err := svc.ListByUser(ctx, "alice", q)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, mine, 2)

	count, err := svc.CountByProduct(ctx, keyboard.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestFavoriteDelete(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	svc := newFavoriteService(db)

	seedUser(t, db, "alice", models.RoleCustomer)
	product := seedProduct(t, db, "keyboard", 100, 10)

	err := svc.Delete(ctx, "alice", product.ID)
	require.True(t, apperr.IsNotFound(err))

	_, err = svc.Create(ctx, "alice", product.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, "alice", product.ID))

	var n int64
	require.NoError(t, db.Model(&models.Favorite{}).Count(&n).Error)
	require.Zero(t, n)
}
