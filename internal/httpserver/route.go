package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	Auth      *AuthHTTP
	Address   *AddressHTTP
	Category  *CategoryHTTP
	Product   *ProductHTTP
	Detail    *ProductDetailHTTP
	Order     *OrderHTTP
	OrderItem *OrderItemHTTP
	Review    *ReviewHTTP
	Favorite  *FavoriteHTTP
	JWTSecret []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	authMW := JWTMiddleware(d.JWTSecret)

	auth := e.Group("/api/auth")
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)
	auth.POST("/refresh", d.Auth.Refresh)

	account := auth.Group("", authMW)
	account.GET("/me", d.Auth.Me)
	account.PUT("/change-password", d.Auth.ChangePassword)
	account.PUT("/update-profile", d.Auth.UpdateProfile)
	account.DELETE("/delete-profile", d.Auth.DeleteProfile)

	address := e.Group("/address", authMW)
	address.POST("/create-address", d.Address.Create)
	address.GET("/by-user", d.Address.GetByUser)
	address.PUT("/update-address", d.Address.Update)
	address.DELETE("/delete-address", d.Address.Delete)

	categories := e.Group("/categories")
	categories.GET("", d.Category.List)
	categories.GET("/by-id", d.Category.GetByID)
	categories.GET("/by-name", d.Category.GetByName)
	categories.GET("/children", d.Category.Children)

	categoryAdmin := categories.Group("", authMW, AdminOnly)
	categoryAdmin.POST("/create-category", d.Category.Create)
	categoryAdmin.PUT("/update-category", d.Category.Update)
	categoryAdmin.DELETE("/delete-category", d.Category.Delete)

	products := e.Group("/products")
	products.GET("", d.Product.List)
	products.GET("/search", d.Product.Search)
	products.GET("/by-id", d.Product.GetByID)
	products.GET("/by-name", d.Product.GetByName)

	productAdmin := products.Group("", authMW, AdminOnly)
	productAdmin.POST("/create-product", d.Product.Create)
	productAdmin.PUT("/update-product", d.Product.Update)
	productAdmin.DELETE("/delete-product", d.Product.Delete)

	details := e.Group("/product-detail")
	details.GET("/by-product", d.Detail.GetByProduct)

	detailAdmin := details.Group("", authMW, AdminOnly)
	detailAdmin.POST("/create-detail", d.Detail.Create)
	detailAdmin.PUT("/update-detail", d.Detail.Update)
	detailAdmin.DELETE("/delete-detail", d.Detail.Delete)

	orders := e.Group("/orders", authMW)
	orders.POST("/create-order", d.Order.Create)
	orders.GET("/by-user", d.Order.ListByUser)
	orders.PUT("/update-order/:id", d.Order.Update)
	orders.DELETE("/delete-order/:id", d.Order.Delete)
	orders.GET("", d.Order.List, AdminOnly)
	orders.GET("/admin/order/:id", d.Order.GetByID, AdminOnly)

	items := e.Group("/order-item", authMW)
	items.POST("/create-item", d.OrderItem.Create)
	items.GET("/by-id", d.OrderItem.GetByID)
	items.GET("/by-order", d.OrderItem.ListByOrder)
	items.PUT("/update-item", d.OrderItem.Update)
	items.DELETE("/delete-item", d.OrderItem.Delete)

	reviews := e.Group("/reviews")
	reviews.GET("/by-id", d.Review.GetByID)
	reviews.GET("/by-product", d.Review.ListByProduct)

	reviewOwn := reviews.Group("", authMW)
	reviewOwn.POST("/create-review", d.Review.Create)
	reviewOwn.GET("/by-user", d.Review.ListMine)
	reviewOwn.PUT("/update-review", d.Review.Update)
	reviewOwn.DELETE("/delete-review", d.Review.Delete)

	favorites := e.Group("/favorites", authMW)
	favorites.POST("/create-favorite", d.Favorite.Create)
	favorites.GET("/by-user", d.Favorite.ListMine)
	favorites.GET("/count", d.Favorite.CountByProduct)
	favorites.DELETE("/delete-favorite", d.Favorite.Delete)
}
