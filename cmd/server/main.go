package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/config"
	"github.com/lmelectronica/ecommerce/internal/es"
	"github.com/lmelectronica/ecommerce/internal/httpserver"
	"github.com/lmelectronica/ecommerce/internal/logging"
	"github.com/lmelectronica/ecommerce/internal/mykafka"
	"github.com/lmelectronica/ecommerce/internal/repo"
	"github.com/lmelectronica/ecommerce/internal/search"
	"github.com/lmelectronica/ecommerce/internal/service"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("db init: %v", err)
	}

	jwtSecret := []byte(configuration.JWT_SECRET)
	refreshSecret := []byte(configuration.REFRESH_SECRET)

	brokers := []string{configuration.KAFKA_ADDRESS}
	topics := []string{service.TopicUserEvents, service.TopicProductEvents, service.TopicOrderEvents}
	prod, err := mykafka.NewProducer(brokers, topics)
	if err != nil {
		log.Fatal(err)
	}

	esClient, err := es.NewClient(configuration)
	if err != nil {
		log.Fatal(err)
	}
	index := &search.ProductIndex{ES: esClient, Index: "products"}

	users := &repo.UserRepo{DB: db}
	tokens := &repo.RefreshTokenRepo{DB: db}
	if err := tokens.DeleteExpired(context.Background(), time.Now()); err != nil {
		logger.Warn("expired refresh token cleanup failed", "error", err)
	}
	addresses := &repo.AddressRepo{DB: db}
	categories := &repo.CategoryRepo{DB: db}
	products := &repo.ProductRepo{DB: db}
	details := &repo.ProductDetailRepo{DB: db}
	orders := &repo.OrderRepo{DB: db}
	items := &repo.OrderItemRepo{DB: db}
	reviews := &repo.ReviewRepo{DB: db}
	favorites := &repo.FavoriteRepo{DB: db}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), httpserver.RequestLogger(logger))
	e.HTTPErrorHandler = apperr.EchoHandler(logger)

	deps := httpserver.Deps{
		Auth: &httpserver.AuthHTTP{
			Auth:  &service.AuthService{Users: users, Tokens: tokens, JWTSecret: jwtSecret, RefreshSecret: refreshSecret, Events: prod},
			Users: &service.UserService{DB: db, Users: users, Events: prod},
		},
		Address:   &httpserver.AddressHTTP{Svc: &service.AddressService{Users: users, Addresses: addresses}},
		Category:  &httpserver.CategoryHTTP{Svc: &service.CategoryService{Categories: categories}},
		Product:   &httpserver.ProductHTTP{Svc: &service.ProductService{Products: products, Categories: categories, Index: index, Events: prod}},
		Detail:    &httpserver.ProductDetailHTTP{Svc: &service.ProductDetailService{Details: details, Products: products}},
		Order:     &httpserver.OrderHTTP{Svc: &service.OrderService{DB: db, Users: users, Orders: orders, Items: items, Events: prod}},
		OrderItem: &httpserver.OrderItemHTTP{Svc: &service.OrderItemService{DB: db, Items: items, Events: prod}},
		Review:    &httpserver.ReviewHTTP{Svc: &service.ReviewService{Reviews: reviews, Users: users, Products: products}},
		Favorite:  &httpserver.FavoriteHTTP{Svc: &service.FavoriteService{Favorites: favorites, Users: users, Products: products}},
		JWTSecret: jwtSecret,
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("http server listening", "addr", configuration.HTTP_ADDR)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if err := prod.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
