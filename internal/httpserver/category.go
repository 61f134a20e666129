package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/service"
	"github.com/lmelectronica/ecommerce/internal/transport"
	"github.com/lmelectronica/ecommerce/internal/util"
)

type CategoryHTTP struct {
	Svc *service.CategoryService
}

func (h *CategoryHTTP) Create(c echo.Context) error {
	var req transport.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	category, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHTTP) GetByID(c echo.Context) error {
	id, err := uintQuery(c, "id")
	if err != nil {
		return err
	}

	category, err := h.Svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHTTP) GetByName(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return apperr.Validation("name is required")
	}

	category, err := h.Svc.GetByName(c.Request().Context(), name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHTTP) List(c echo.Context) error {
	q := pageQuery(c, "id", "name")

	categories, total, err := h.Svc.List(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transport.Page{Data: categories, Meta: util.NewPageMeta(q, total)})
}

func (h *CategoryHTTP) Children(c echo.Context) error {
	parentID, err := uintQuery(c, "parentId")
	if err != nil {
		return err
	}

	children, err := h.Svc.Children(c.Request().Context(), parentID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, children)
}

func (h *CategoryHTTP) Update(c echo.Context) error {
	id, err := uintQuery(c, "id")
	if err != nil {
		return err
	}

	var req transport.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	category, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHTTP) Delete(c echo.Context) error {
	id, err := uintQuery(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
