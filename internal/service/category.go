package service

import (
	"context"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/models"
	"github.com/lmelectronica/ecommerce/internal/repo"
	"github.com/lmelectronica/ecommerce/internal/transport"
	"github.com/lmelectronica/ecommerce/internal/util"
)

type CategoryService struct {
	Categories *repo.CategoryRepo
}

func (s *CategoryService) Create(ctx context.Context, req transport.CategoryRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, apperr.Validation("category name is required")
	}

	if exists, err := s.Categories.ExistsByName(ctx, req.Name); err != nil {
		return nil, err
	} else if exists {
		return nil, apperr.Duplicate("Category", "name", req.Name)
	}

	if req.ParentID != nil {
		if _, err := s.Categories.FindByID(ctx, *req.ParentID); err != nil {
			return nil, orNotFound(err, "Category", *req.ParentID)
		}
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	}
	if err := s.Categories.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "Category", id)
	}
	return category, nil
}

func (s *CategoryService) GetByName(ctx context.Context, name string) (*models.Category, error) {
	category, err := s.Categories.FindByName(ctx, name)
	if err != nil {
		return nil, orNotFound(err, "Category", name)
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, q util.PageQuery) ([]models.Category, int64, error) {
	return s.Categories.List(ctx, q)
}

func (s *CategoryService) Children(ctx context.Context, parentID uint) ([]models.Category, error) {
	if _, err := s.GetByID(ctx, parentID); err != nil {
		return nil, err
	}
	return s.Categories.ListByParent(ctx, parentID)
}

func (s *CategoryService) Update(ctx context.Context, id uint, req transport.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != category.Name {
		if exists, err := s.Categories.ExistsByName(ctx, *req.Name); err != nil {
			return nil, err
		} else if exists {
			return nil, apperr.Duplicate("Category", "name", *req.Name)
		}
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.ParentID != nil {
		if _, err := s.Categories.FindByID(ctx, *req.ParentID); err != nil {
			return nil, orNotFound(err, "Category", *req.ParentID)
		}
		category.ParentID = req.ParentID
	}

	if err := s.Categories.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	category, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.Categories.Delete(ctx, category)
}
