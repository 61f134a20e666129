package transport

import (
	"github.com/lmelectronica/ecommerce/internal/util"
)

// Page is the envelope of every list endpoint.
type Page struct {
	Data any           `json:"data"`
	Meta util.PageMeta `json:"meta"`
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Role         string `json:"role"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Pointer fields mean "leave unchanged" on every update request below.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type UserDTO struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

type AddressRequest struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Province   string `json:"province"`
	OtherInfo  string `json:"other_info"`
}

type UpdateAddressRequest struct {
	Street     *string `json:"street"`
	Number     *string `json:"number"`
	City       *string `json:"city"`
	PostalCode *string `json:"postal_code"`
	Province   *string `json:"province"`
	OtherInfo  *string `json:"other_info"`
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parent_id"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ParentID    *uint   `json:"parent_id"`
}

type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryIDs []uint  `json:"category_ids"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	CategoryIDs []uint   `json:"category_ids"`
}

type ProductDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryIDs []uint  `json:"category_ids"`
}

type DetailRequest struct {
	KeyName string `json:"key_name"`
	Details string `json:"details"`
}

type UpdateDetailRequest struct {
	KeyName *string `json:"key_name"`
	Details *string `json:"details"`
}

type CreateOrderRequest struct {
	BillingAddress string `json:"billing_address"`
}

type UpdateOrderRequest struct {
	BillingAddress *string `json:"billing_address"`
	Status         *string `json:"status"`
}

type CreateItemRequest struct {
	Quantity int `json:"quantity"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

type ReviewCreateRequest struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  *float64 `json:"rating"`
	Comment *string  `json:"comment"`
}

type FavoriteRequest struct {
	ProductID uint `json:"product_id"`
}
