package service

import (
	"context"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/models"
	"github.com/lmelectronica/ecommerce/internal/repo"
	"github.com/lmelectronica/ecommerce/internal/transport"
)

type ProductDetailService struct {
	Details  *repo.ProductDetailRepo
	Products *repo.ProductRepo
}

func (s *ProductDetailService) Create(ctx context.Context, productID uint, req transport.DetailRequest) (*models.ProductDetail, error) {
	if req.KeyName == "" {
		return nil, apperr.Validation("key_name is required")
	}
	if _, err := s.Products.FindByID(ctx, productID); err != nil {
		return nil, orNotFound(err, "Product", productID)
	}

	detail := models.ProductDetail{
		ProductID: productID,
		KeyName:   req.KeyName,
		Details:   req.Details,
	}
	if err := s.Details.Create(ctx, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *ProductDetailService) ListByProduct(ctx context.Context, productID uint) ([]models.ProductDetail, error) {
	if _, err := s.Products.FindByID(ctx, productID); err != nil {
		return nil, orNotFound(err, "Product", productID)
	}
	return s.Details.ListByProduct(ctx, productID)
}

func (s *ProductDetailService) Update(ctx context.Context, id uint, req transport.UpdateDetailRequest) (*models.ProductDetail, error) {
	detail, err := s.Details.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "ProductDetail", id)
	}

	if req.KeyName != nil {
		detail.KeyName = *req.KeyName
	}
	if req.Details != nil {
		detail.Details = *req.Details
	}
	if err := s.Details.Save(ctx, detail); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *ProductDetailService) Delete(ctx context.Context, id uint) error {
	detail, err := s.Details.FindByID(ctx, id)
	if err != nil {
		return orNotFound(err, "ProductDetail", id)
	}
	return s.Details.Delete(ctx, detail)
}
