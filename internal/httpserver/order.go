package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/service"
	"github.com/lmelectronica/ecommerce/internal/transport"
	"github.com/lmelectronica/ecommerce/internal/util"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) Create(c echo.Context) error {
	name, err := username(c)
	if err != nil {
		return err
	}

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	order, err := h.Svc.Create(c.Request().Context(), name, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) List(c echo.Context) error {
	q := pageQuery(c, "id", "created_at", "status", "total_amount")

	orders, total, err := h.Svc.List(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transport.Page{Data: orders, Meta: util.NewPageMeta(q, total)})
}

func (h *OrderHTTP) ListByUser(c echo.Context) error {
	name, err := username(c)
	if err != nil {
		return err
	}
	q := pageQuery(c, "id", "created_at", "status", "total_amount")

	orders, total, err := h.Svc.ListByUser(c.Request().Context(), name, q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transport.Page{Data: orders, Meta: util.NewPageMeta(q, total)})
}

func (h *OrderHTTP) GetByID(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.Svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) Update(c echo.Context) error {
	name, err := username(c)
	if err != nil {
		return err
	}
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	var req transport.UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	order, err := h.Svc.Update(c.Request().Context(), name, id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) Delete(c echo.Context) error {
	name, err := username(c)
	if err != nil {
		return err
	}
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(c.Request().Context(), name, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
