package models

import (
	"time"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	Email        string `gorm:"unique;not null"          json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Role         string `gorm:"not null"                 json:"role"`
}

type RefreshToken struct {
	ID        uint      `gorm:"primaryKey"      json:"id"`
	Token     string    `gorm:"unique;not null" json:"token"`
	UserID    uint      `gorm:"index;not null"  json:"user_id"`
	ExpiresAt time.Time `gorm:"not null"        json:"expires_at"`
	Revoked   bool      `gorm:"default:false"   json:"revoked"`
}

// Address is one-to-one with User, enforced by the unique index.
type Address struct {
	ID         uint   `gorm:"primaryKey"           json:"id"`
	UserID     uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Street     string `gorm:"not null"             json:"street"`
	Number     string `json:"number"`
	City       string `gorm:"not null"             json:"city"`
	PostalCode string `json:"postal_code"`
	Province   string `json:"province"`
	OtherInfo  string `json:"other_info"`
}

// Category forms a tree through ParentID. Children are found with an
// indexed query on parent_id, never embedded.
type Category struct {
	ID          uint   `gorm:"primaryKey"      json:"id"`
	Name        string `gorm:"unique;not null" json:"name"`
	Description string `json:"description"`
	ParentID    *uint  `gorm:"index"           json:"parent_id,omitempty"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"unique;not null"          json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null"                 json:"price"`
	Stock       int     `gorm:"not null;check:stock>=0"  json:"stock"`
	CreatedAt   int64   `gorm:"not null"                 json:"created_at"`
	UpdatedAt   int64   `json:"updated_at"`
}

// ProductCategory is the explicit product/category join table.
type ProductCategory struct {
	ProductID  uint `gorm:"primaryKey" json:"product_id"`
	CategoryID uint `gorm:"primaryKey" json:"category_id"`
}

type ProductDetail struct {
	ID        uint   `gorm:"primaryKey"     json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	KeyName   string `gorm:"not null"       json:"key_name"`
	Details   string `json:"details"`
}

type Order struct {
	ID             uint    `gorm:"primaryKey"     json:"id"`
	UserID         uint    `gorm:"index;not null" json:"user_id"`
	BillingAddress string  `json:"billing_address"`
	Status         string  `gorm:"not null"       json:"status"`
	TotalAmount    float64 `gorm:"not null"       json:"total_amount"`
	CreatedAt      int64   `gorm:"not null"       json:"created_at"`
}

// OrderItem.Price holds the line amount: quantity times the product price
// snapshotted at the last create/update of the item.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey"                json:"id"`
	OrderID   uint    `gorm:"index;not null"            json:"order_id"`
	ProductID uint    `gorm:"not null"                  json:"product_id"`
	Quantity  int     `gorm:"not null;check:quantity>0" json:"quantity"`
	Price     float64 `gorm:"not null"                  json:"price"`
}

type Review struct {
	ID        uint    `gorm:"primaryKey"     json:"id"`
	UserID    uint    `gorm:"index;not null" json:"user_id"`
	ProductID uint    `gorm:"index;not null" json:"product_id"`
	Rating    float64 `gorm:"not null"       json:"rating"`
	Comment   string  `json:"comment"`
	CreatedAt int64   `gorm:"not null"       json:"created_at"`
}

type Favorite struct {
	ID        uint  `gorm:"primaryKey"                            json:"id"`
	UserID    uint  `gorm:"uniqueIndex:idx_user_product;not null" json:"user_id"`
	ProductID uint  `gorm:"uniqueIndex:idx_user_product;not null" json:"product_id"`
	CreatedAt int64 `gorm:"not null"                              json:"created_at"`
}

// All lists every table for AutoMigrate.
func All() []any {
	return []any{
		&User{}, &RefreshToken{}, &Address{}, &Category{}, &Product{},
		&ProductCategory{}, &ProductDetail{}, &Order{}, &OrderItem{},
		&Review{}, &Favorite{},
	}
}
