package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/service"
	"github.com/lmelectronica/ecommerce/internal/transport"
	"github.com/lmelectronica/ecommerce/internal/util"
)

type ReviewHTTP struct {
	Svc *service.ReviewService
}

func (h *ReviewHTTP) Create(c echo.Context) error {
	name, err := username(c)
	if err != nil {
		return err
	}
	productID, err := uintQuery(c, "productId")
	if err != nil {
		return err
	}

	var req transport.ReviewCreateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	review, err := h.Svc.Create(c.Request().Context(), name, productID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

func (h *ReviewHTTP) GetByID(c echo.Context) error {
	id, err := uintQuery(c, "id")
	if err != nil {
		return err
	}

	review, err := h.Svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, review)
}

func (h *ReviewHTTP) ListMine(c echo.Context) error {
	name, err := username(c)
	if err != nil {
		return err
	}
	q := pageQuery(c, "id", "rating", "created_at")

	reviews, total, err := h.Svc.ListByUser(c.Request().Context(), name, q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transport.Page{Data: reviews, Meta: util.NewPageMeta(q, total)})
}

func (h *ReviewHTTP) ListByProduct(c echo.Context) error {
	productID, err := uintQuery(c, "productId")
	if err != nil {
		return err
	}
	q := pageQuery(c, "id", "rating", "created_at")

	reviews, total, err := h.Svc.ListByProduct(c.Request().Context(), productID, q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transport.Page{Data: reviews, Meta: util.NewPageMeta(q, total)})
}

func (h *ReviewHTTP) Update(c echo.Context) error {
	name, err := username(c)
	if err != nil {
		return err
	}
	id, err := uintQuery(c, "id")
	if err != nil {
		return err
	}

	var req transport.UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	review, err := h.Svc.Update(c.Request().Context(), name, id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, review)
}

func (h *ReviewHTTP) Delete(c echo.Context) error {
	name, err := username(c)
	if err != nil {
		return err
	}
	id, err := uintQuery(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(c.Request().Context(), name, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
