package service

import (
	"context"
	"time"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/logging"
	"github.com/lmelectronica/ecommerce/internal/models"
	"github.com/lmelectronica/ecommerce/internal/mykafka"
	"github.com/lmelectronica/ecommerce/internal/repo"
	"github.com/lmelectronica/ecommerce/internal/transport"
	"github.com/lmelectronica/ecommerce/internal/util"
)

// Indexer is the slice of the search index product mutations feed. Nil
// disables indexing (unit tests).
type Indexer interface {
	IndexProduct(ctx context.Context, prod *models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
	Search(ctx context.Context, query string, from, size int) (int64, []models.Product, error)
}

type ProductService struct {
	Products   *repo.ProductRepo
	Categories *repo.CategoryRepo
	Index      Indexer
	Events     Events
}

func (s *ProductService) Create(ctx context.Context, req transport.ProductRequest) (*transport.ProductDTO, error) {
	l := logging.FromContext(ctx).With("service", "product.create")

	if req.Name == "" {
		return nil, apperr.Validation("product name is required")
	}
	if req.Price < 0 {
		return nil, apperr.Validation("price must be >= 0")
	}
	if req.Stock < 0 {
		return nil, apperr.Validation("stock must be >= 0")
	}

	if exists, err := s.Products.ExistsByName(ctx, req.Name); err != nil {
		return nil, err
	} else if exists {
		return nil, apperr.Duplicate("Product", "name", req.Name)
	}

	for _, id := range req.CategoryIDs {
		if _, err := s.Categories.FindByID(ctx, id); err != nil {
			return nil, orNotFound(err, "Category", id)
		}
	}

	now := time.Now().Unix()
	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Products.Create(ctx, &product); err != nil {
		return nil, err
	}
	if len(req.CategoryIDs) > 0 {
		if err := s.Products.ReplaceCategories(ctx, product.ID, req.CategoryIDs); err != nil {
			return nil, err
		}
	}

	s.index(ctx, &product)
	publish(ctx, s.Events, TopicProductEvents, product.ID, mykafka.NewEvent("product_created", map[string]any{
		"product_id": product.ID,
		"name":       product.Name,
	}))
	l.Info("product_created", "product_id", product.ID)

	return s.toDTO(ctx, &product)
}

func (s *ProductService) GetByID(ctx context.Context, id uint) (*transport.ProductDTO, error) {
	product, err := s.Products.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "Product", id)
	}
	return s.toDTO(ctx, product)
}

func (s *ProductService) GetByName(ctx context.Context, name string) (*transport.ProductDTO, error) {
	product, err := s.Products.FindByName(ctx, name)
	if err != nil {
		return nil, orNotFound(err, "Product", name)
	}
	return s.toDTO(ctx, product)
}

func (s *ProductService) List(ctx context.Context, q util.PageQuery) ([]models.Product, int64, error) {
	return s.Products.List(ctx, q)
}

func (s *ProductService) Search(ctx context.Context, query string, q util.PageQuery) (int64, []models.Product, error) {
	if s.Index == nil {
		return 0, nil, apperr.Validation("search is not available")
	}
	return s.Index.Search(ctx, query, q.Offset(), q.Size)
}

// Update applies present fields only; negative price or stock values in the
// patch are dropped rather than rejected.
func (s *ProductService) Update(ctx context.Context, id uint, req transport.UpdateProductRequest) (*transport.ProductDTO, error) {
	product, err := s.Products.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "Product", id)
	}

	if req.Name != nil && *req.Name != product.Name {
		if exists, err := s.Products.ExistsByName(ctx, *req.Name); err != nil {
			return nil, err
		} else if exists {
			return nil, apperr.Duplicate("Product", "name", *req.Name)
		}
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil && *req.Price >= 0 {
		product.Price = *req.Price
	}
	if req.Stock != nil && *req.Stock >= 0 {
		product.Stock = *req.Stock
	}
	product.UpdatedAt = time.Now().Unix()

	if err := s.Products.Save(ctx, product); err != nil {
		return nil, err
	}
	if req.CategoryIDs != nil {
		for _, cid := range req.CategoryIDs {
			if _, err := s.Categories.FindByID(ctx, cid); err != nil {
				return nil, orNotFound(err, "Category", cid)
			}
		}
		if err := s.Products.ReplaceCategories(ctx, product.ID, req.CategoryIDs); err != nil {
			return nil, err
		}
	}

	s.index(ctx, product)
	publish(ctx, s.Events, TopicProductEvents, product.ID, mykafka.NewEvent("product_updated", map[string]any{
		"product_id": product.ID,
		"name":       product.Name,
	}))

	return s.toDTO(ctx, product)
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	product, err := s.Products.FindByID(ctx, id)
	if err != nil {
		return orNotFound(err, "Product", id)
	}
	if err := s.Products.Delete(ctx, product); err != nil {
		return err
	}

	if s.Index != nil {
		if err := s.Index.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Error("product deindex failed", "product_id", id, "error", err)
		}
	}
	publish(ctx, s.Events, TopicProductEvents, id, mykafka.NewEvent("product_deleted", map[string]any{
		"product_id": id,
	}))
	return nil
}

func (s *ProductService) index(ctx context.Context, product *models.Product) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexProduct(ctx, product); err != nil {
		logging.FromContext(ctx).Error("product index failed", "product_id", product.ID, "error", err)
	}
}

func (s *ProductService) toDTO(ctx context.Context, product *models.Product) (*transport.ProductDTO, error) {
	ids, err := s.Products.CategoryIDs(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	return &transport.ProductDTO{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		CategoryIDs: ids,
	}, nil
}
