package httpserver

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/util"
)

func uintParam(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, apperr.Validation("invalid " + name)
	}
	return uint(v), nil
}

func uintQuery(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.QueryParam(name), 10, 32)
	if err != nil {
		return 0, apperr.Validation("invalid or missing " + name)
	}
	return uint(v), nil
}

// pageQuery reads page/size/sortBy/direction; sortable is the per-resource
// column whitelist, its first entry the default sort.
func pageQuery(c echo.Context, sortable ...string) util.PageQuery {
	return util.ParsePage(
		c.QueryParam("page"),
		c.QueryParam("size"),
		c.QueryParam("sortBy"),
		c.QueryParam("direction"),
		sortable[0],
		sortable...,
	)
}
