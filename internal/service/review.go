package service

import (
	"context"
	"time"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/models"
	"github.com/lmelectronica/ecommerce/internal/repo"
	"github.com/lmelectronica/ecommerce/internal/transport"
	"github.com/lmelectronica/ecommerce/internal/util"
)

type ReviewService struct {
	Reviews  *repo.ReviewRepo
	Users    *repo.UserRepo
	Products *repo.ProductRepo
}

func (s *ReviewService) Create(ctx context.Context, username string, productID uint, req transport.ReviewCreateRequest) (*models.Review, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, orNotFound(err, "User", username)
	}
	if _, err := s.Products.FindByID(ctx, productID); err != nil {
		return nil, orNotFound(err, "Product", productID)
	}
	if req.Rating < 0 || req.Rating > 5 {
		return nil, apperr.Validation("rating must be between 0 and 5")
	}

	review := models.Review{
		UserID:    user.ID,
		ProductID: productID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().Unix(),
	}
	if err := s.Reviews.Create(ctx, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewService) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	review, err := s.Reviews.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "Review", id)
	}
	return review, nil
}

func (s *ReviewService) ListByUser(ctx context.Context, username string, q util.PageQuery) ([]models.Review, int64, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, 0, orNotFound(err, "User", username)
	}
	return s.Reviews.ListByUser(ctx, user.ID, q)
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID uint, q util.PageQuery) ([]models.Review, int64, error) {
	return s.Reviews.ListByProduct(ctx, productID, q)
}

func (s *ReviewService) Update(ctx context.Context, username string, reviewID uint, req transport.UpdateReviewRequest) (*models.Review, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, orNotFound(err, "User", username)
	}
	review, err := s.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != user.ID {
		return nil, apperr.AccessDenied("you can only update your own reviews")
	}

	if req.Comment != nil {
		review.Comment = *req.Comment
	}
	if req.Rating != nil {
		if *req.Rating < 0 || *req.Rating > 5 {
			return nil, apperr.Validation("rating must be between 0 and 5")
		}
		review.Rating = *req.Rating
	}

	if err := s.Reviews.Save(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, username string, reviewID uint) error {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return orNotFound(err, "User", username)
	}
	review, err := s.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != user.ID {
		return apperr.AccessDenied("you can only delete your own reviews")
	}
	return s.Reviews.Delete(ctx, review)
}
