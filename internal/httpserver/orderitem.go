package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/service"
	"github.com/lmelectronica/ecommerce/internal/transport"
)

type OrderItemHTTP struct {
	Svc *service.OrderItemService
}

func (h *OrderItemHTTP) Create(c echo.Context) error {
	orderID, err := uintQuery(c, "orderId")
	if err != nil {
		return err
	}
	productID, err := uintQuery(c, "productId")
	if err != nil {
		return err
	}

	var req transport.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	item, err := h.Svc.Create(c.Request().Context(), orderID, productID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *OrderItemHTTP) GetByID(c echo.Context) error {
	id, err := uintQuery(c, "id")
	if err != nil {
		return err
	}

	item, err := h.Svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *OrderItemHTTP) ListByOrder(c echo.Context) error {
	orderID, err := uintQuery(c, "orderId")
	if err != nil {
		return err
	}

	items, err := h.Svc.ListByOrder(c.Request().Context(), orderID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *OrderItemHTTP) Update(c echo.Context) error {
	id, err := uintQuery(c, "id")
	if err != nil {
		return err
	}

	var req transport.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	item, err := h.Svc.Update(c.Request().Context(), id, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *OrderItemHTTP) Delete(c echo.Context) error {
	id, err := uintQuery(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
