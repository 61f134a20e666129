package httpserver

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/logging"
	"github.com/lmelectronica/ecommerce/internal/models"
)

// JWTMiddleware validates the Authorization bearer token and copies the
// identity claims into the echo context.
func JWTMiddleware(secret []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningMethod: "HS256",
		SigningKey:    secret,
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return
			}
			if sub, ok := claims["sub"].(string); ok {
				c.Set("username", sub)
			}
			if role, ok := claims["role"].(string); ok {
				c.Set("role", role)
			}
			if id, ok := claims["user_id"].(float64); ok {
				c.Set("user_id", uint(id))
			}
		},
	})
}

func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if role, _ := c.Get("role").(string); role != models.RoleAdmin {
			return apperr.AccessDenied("you do not have permission to perform this action")
		}
		return next(c)
	}
}

// RequestLogger puts a request-scoped logger into the context and logs one
// line per request.
func RequestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			l := log.With(
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"method", req.Method,
				"path", req.URL.Path,
			)
			c.SetRequest(req.WithContext(logging.IntoContext(req.Context(), l)))

			start := time.Now()
			err := next(c)
			l.Info("request", "status", c.Response().Status, "duration_ms", time.Since(start).Milliseconds())
			return err
		}
	}
}

func username(c echo.Context) (string, error) {
	s, ok := c.Get("username").(string)
	if !ok || s == "" {
		return "", apperr.Unauthorized("authentication required")
	}
	return s, nil
}
