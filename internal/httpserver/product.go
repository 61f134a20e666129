package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/service"
	"github.com/lmelectronica/ecommerce/internal/transport"
	"github.com/lmelectronica/ecommerce/internal/util"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) Create(c echo.Context) error {
	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	product, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHTTP) GetByID(c echo.Context) error {
	id, err := uintQuery(c, "id")
	if err != nil {
		return err
	}

	product, err := h.Svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) GetByName(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return apperr.Validation("name is required")
	}

	product, err := h.Svc.GetByName(c.Request().Context(), name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) List(c echo.Context) error {
	q := pageQuery(c, "id", "name", "price", "created_at")

	products, total, err := h.Svc.List(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transport.Page{Data: products, Meta: util.NewPageMeta(q, total)})
}

func (h *ProductHTTP) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return apperr.Validation("q is required")
	}
	q := pageQuery(c, "id")

	total, products, err := h.Svc.Search(c.Request().Context(), query, q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}

func (h *ProductHTTP) Update(c echo.Context) error {
	id, err := uintQuery(c, "id")
	if err != nil {
		return err
	}

	var req transport.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	product, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) Delete(c echo.Context) error {
	id, err := uintQuery(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
