package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/models"
	"github.com/lmelectronica/ecommerce/internal/repo"
	"github.com/lmelectronica/ecommerce/internal/util"
)

type FavoriteService struct {
	Favorites *repo.FavoriteRepo
	Users     *repo.UserRepo
	Products  *repo.ProductRepo
}

func (s *FavoriteService) Create(ctx context.Context, username string, productID uint) (*models.Favorite, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, orNotFound(err, "User", username)
	}
	if _, err := s.Products.FindByID(ctx, productID); err != nil {
		return nil, orNotFound(err, "Product", productID)
	}

	favorite := models.Favorite{
		UserID:    user.ID,
		ProductID: productID,
		CreatedAt: time.Now().Unix(),
	}
	// The unique index on (user_id, product_id) is the authority here, so
	// two concurrent creates cannot both win.
	if err := s.Favorites.Create(ctx, &favorite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Duplicate("Favorite", "user and product", productID)
		}
		return nil, err
	}
	return &favorite, nil
}

func (s *FavoriteService) ListByUser(ctx context.Context, username string, q util.PageQuery) ([]models.Favorite, int64, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, 0, orNotFound(err, "User", username)
	}
	return s.Favorites.ListByUser(ctx, user.ID, q)
}

func (s *FavoriteService) CountByProduct(ctx context.Context, productID uint) (int64, error) {
	return s.Favorites.CountByProduct(ctx, productID)
}

func (s *FavoriteService) Delete(ctx context.Context, username string, productID uint) error {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return orNotFound(err, "User", username)
	}
	favorite, err := s.Favorites.FindByUserAndProduct(ctx, user.ID, productID)
	if err != nil {
		return orNotFound(err, "Favorite", productID)
	}
	return s.Favorites.Delete(ctx, favorite)
}
