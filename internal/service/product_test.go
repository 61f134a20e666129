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

func newProductService(db *gorm.DB) *ProductService {
	return &ProductService{
		Products:   &repo.ProductRepo{DB: db},
		Categories: &repo.CategoryRepo{DB: db},
	}
}

func TestProductCreateWithCategories(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	svc := newProductService(db)
	index := newRecordingIndex()
	events := &recordingEvents{}
	svc.Index = index
	svc.Events = events

	cat, err := newCategoryService(db).Create(ctx, transport.CategoryRequest{Name: "peripherals"})
	require.NoError(t, err)

	dto, err := svc.Create(ctx, transport.ProductRequest{
		Name:        "keyboard",
		Description: "mechanical",
		Price:       100,
		Stock:       10,
		CategoryIDs: []uint{cat.ID},
	})
	require.NoError(t, err)
	require.Equal(t, []uint{cat.ID}, dto.CategoryIDs)
	require.Contains(t, index.indexed, dto.ID)
	require.Equal(t, []string{"product_created"}, events.types())

	_, err = svc.Create(ctx, transport.ProductRequest{Name: "keyboard", Price: 1, Stock: 1})
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.CodeBusinessRule, appErr.Code)

	_, err = svc.Create(ctx, transport.ProductRequest{Name: "mouse", Price: -1})
	appErr, ok = apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.CodeValidation, appErr.Code)

	_, err = svc.Create(ctx, transport.ProductRequest{Name: "mouse", Price: 1, CategoryIDs: []uint{9999}})
	require.True(t, apperr.IsNotFound(err))
}

func TestProductUpdatePartial(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	svc := newProductService(db)

	product := seedProduct(t, db, "keyboard", 100, 10)

	price := 120.0
	dto, err := svc.Update(ctx, product.ID, transport.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	require.Equal(t, 120.0, dto.Price)
	require.Equal(t, "keyboard", dto.Name)
	require.Equal(t, 10, dto.Stock)

	// negative patch values are dropped, not applied
	bad := -5.0
	badStock := -1
	dto, err = svc.Update(ctx, product.ID, transport.UpdateProductRequest{Price: &bad, Stock: &badStock})
	require.NoError(t, err)
	require.Equal(t, 120.0, dto.Price)
	require.Equal(t, 10, dto.Stock)

	_, err = svc.Update(ctx, 9999, transport.UpdateProductRequest{})
	require.True(t, apperr.IsNotFound(err))
}

func TestProductDeleteClearsJoinRowsAndIndex(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	svc := newProductService(db)
	index := newRecordingIndex()
	svc.Index = index

	cat, err := newCategoryService(db).Create(ctx, transport.CategoryRequest{Name: "peripherals"})
	require.NoError(t, err)
	dto, err := svc.Create(ctx, transport.ProductRequest{Name: "keyboard", Price: 100, Stock: 10, CategoryIDs: []uint{cat.ID}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, dto.ID))
	require.Equal(t, []uint{dto.ID}, index.deleted)

	var n int64
	require.NoError(t, db.Model(&models.ProductCategory{}).Count(&n).Error)
	require.Zero(t, n)

	_, err = svc.GetByID(ctx, dto.ID)
	require.True(t, apperr.IsNotFound(err))
}

func TestProductSearchRequiresIndex(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	svc := newProductService(db)

	q := util.ParsePage("1", "10", "id", "asc", "id", "id")
	_, _, err := svc.Search(ctx, "keyboard", q)
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.CodeValidation, appErr.Code)

	index := newRecordingIndex()
	svc.Index = index
	_, err = svc.Create(ctx, transport.ProductRequest{Name: "keyboard", Price: 100, Stock: 10})
	require.NoError(t, err)

	total, hits, err := svc.Search(ctx, "keyboard", q)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, hits, 1)
}

func TestProductDetailCRUD(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	svc := &ProductDetailService{Details: &repo.ProductDetailRepo{DB: db}, Products: &repo.ProductRepo{DB: db}}

	product := seedProduct(t, db, "keyboard", 100, 10)

	detail, err := svc.Create(ctx, product.ID, transport.DetailRequest{KeyName: "layout", Details: "ISO"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, product.ID, transport.DetailRequest{KeyName: ""})
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.CodeValidation, appErr.Code)

	_, err = svc.Create(ctx, 9999, transport.DetailRequest{KeyName: "layout"})
	require.True(t, apperr.IsNotFound(err))

	val := "ANSI"
	updated, err := svc.Update(ctx, detail.ID, transport.UpdateDetailRequest{Details: &val})
	require.NoError(t, err)
	require.Equal(t, "layout", updated.KeyName)
	require.Equal(t, "ANSI", updated.Details)

	list, err := svc.ListByProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, detail.ID))
	err = svc.Delete(ctx, detail.ID)
	require.True(t, apperr.IsNotFound(err))
}
