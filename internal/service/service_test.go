package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lmelectronica/ecommerce/internal/hash"
	"github.com/lmelectronica/ecommerce/internal/models"
	"github.com/lmelectronica/ecommerce/internal/mykafka"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()
	passwordHash, err := hash.HashPassword("password")
	require.NoError(t, err)
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: passwordHash,
		Role:         role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) *models.Product {
	t.Helper()
	now := time.Now().Unix()
	product := models.Product{
		Name:      name,
		Price:     price,
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func seedOrder(t *testing.T, db *gorm.DB, userID uint) *models.Order {
	t.Helper()
	order := models.Order{
		UserID:    userID,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now().Unix(),
	}
	require.NoError(t, db.Create(&order).Error)
	return &order
}

// recordingEvents collects published events instead of talking to kafka.
type recordingEvents struct {
	events []mykafka.Event
}

func (r *recordingEvents) PublishEvent(_ context.Context, _ string, _ string, event mykafka.Event) error {
	r.events = append(r.events, event)
	return nil
}

func (r *recordingEvents) types() []string {
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

// recordingIndex collects indexed products instead of talking to elasticsearch.
type recordingIndex struct {
	indexed map[uint]models.Product
	deleted []uint
}

func newRecordingIndex() *recordingIndex {
	return &recordingIndex{indexed: make(map[uint]models.Product)}
}

func (r *recordingIndex) IndexProduct(_ context.Context, prod *models.Product) error {
	r.indexed[prod.ID] = *prod
	return nil
}

func (r *recordingIndex) DeleteProduct(_ context.Context, id uint) error {
	delete(r.indexed, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *recordingIndex) Search(_ context.Context, query string, from, size int) (int64, []models.Product, error) {
	var hits []models.Product
	for _, p := range r.indexed {
		hits = append(hits, p)
	}
	return int64(len(hits)), hits, nil
}
