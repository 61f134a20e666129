package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/service"
	"github.com/lmelectronica/ecommerce/internal/transport"
)

type ProductDetailHTTP struct {
	Svc *service.ProductDetailService
}

func (h *ProductDetailHTTP) Create(c echo.Context) error {
	productID, err := uintQuery(c, "productId")
	if err != nil {
		return err
	}

	var req transport.DetailRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	detail, err := h.Svc.Create(c.Request().Context(), productID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, detail)
}

func (h *ProductDetailHTTP) GetByProduct(c echo.Context) error {
	productID, err := uintQuery(c, "productId")
	if err != nil {
		return err
	}

	details, err := h.Svc.ListByProduct(c.Request().Context(), productID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, details)
}

func (h *ProductDetailHTTP) Update(c echo.Context) error {
	id, err := uintQuery(c, "id")
	if err != nil {
		return err
	}

	var req transport.UpdateDetailRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	detail, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *ProductDetailHTTP) Delete(c echo.Context) error {
	id, err := uintQuery(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
