package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/service"
	"github.com/lmelectronica/ecommerce/internal/transport"
)

type AddressHTTP struct {
	Svc *service.AddressService
}

func (h *AddressHTTP) Create(c echo.Context) error {
	name, err := username(c)
	if err != nil {
		return err
	}

	var req transport.AddressRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	address, err := h.Svc.Create(c.Request().Context(), name, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, address)
}

func (h *AddressHTTP) GetByUser(c echo.Context) error {
	name, err := username(c)
	if err != nil {
		return err
	}

	address, err := h.Svc.GetByUser(c.Request().Context(), name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, address)
}

func (h *AddressHTTP) Update(c echo.Context) error {
	name, err := username(c)
	if err != nil {
		return err
	}

	var req transport.UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	address, err := h.Svc.Update(c.Request().Context(), name, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, address)
}

func (h *AddressHTTP) Delete(c echo.Context) error {
	name, err := username(c)
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(c.Request().Context(), name); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
