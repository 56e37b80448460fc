package handler // aggregate counts feeding the dashboard tiles, plus the sold listing

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/propline/property-sales-backend/internal/model"
)

// CountShops handles GET /admin/shops/count.
func (h *AdminHandler) CountShops(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	n, err := h.Shops.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"shops": n})
}

// CountFloors handles GET /admin/floors/count.
func (h *AdminHandler) CountFloors(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	n, err := h.Floors.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"floors": n})
}

// CountUsers handles GET /admin/users/count.
func (h *AdminHandler) CountUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	n, err := h.Users.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"users": n})
}

// CountAvailableShops handles GET /admin/shops/available/count.
func (h *AdminHandler) CountAvailableShops(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	n, err := h.Shops.CountByStatus(ctx, model.StatusAvailable)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"availableShops": n})
}

// CountSoldShops handles GET /admin/shops/sold/count.
func (h *AdminHandler) CountSoldShops(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	n, err := h.Shops.CountByStatus(ctx, model.StatusSold)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"soldShops": n})
}

// ListSoldShops handles GET /admin/shops/sold and returns every sold shop
// with its floor nested.
func (h *AdminHandler) ListSoldShops(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	shops, err := h.Shops.ListWithFloor(ctx, model.StatusSold)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list sold shops"})
	}
	return c.JSON(http.StatusOK, shops)
}
