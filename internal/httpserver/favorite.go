package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/service"
	"github.com/lmelectronica/ecommerce/internal/transport"
	"github.com/lmelectronica/ecommerce/internal/util"
)

type FavoriteHTTP struct {
	Svc *service.FavoriteService
}

func (h *FavoriteHTTP) Create(c echo.Context) error {
	name, err := username(c)
	if err != nil {
		return err
	}

	var req transport.FavoriteRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	favorite, err := h.Svc.Create(c.Request().Context(), name, req.ProductID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, favorite)
}

func (h *FavoriteHTTP) ListMine(c echo.Context) error {
	name, err := username(c)
	if err != nil {
		return err
	}
	q := pageQuery(c, "id", "created_at")

	favorites, total, err := h.Svc.ListByUser(c.Request().Context(), name, q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transport.Page{Data: favorites, Meta: util.NewPageMeta(q, total)})
}

func (h *FavoriteHTTP) CountByProduct(c echo.Context) error {
	productID, err := uintQuery(c, "productId")
	if err != nil {
		return err
	}

	count, err := h.Svc.CountByProduct(c.Request().Context(), productID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"product_id": productID, "count": count})
}

func (h *FavoriteHTTP) Delete(c echo.Context) error {
	name, err := username(c)
	if err != nil {
		return err
	}
	productID, err := uintQuery(c, "productId")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(c.Request().Context(), name, productID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
