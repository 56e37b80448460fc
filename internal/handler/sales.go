package handler // read-only sales views

// These routes return shop and floor data for the sales-facing dashboard;
// shop listings always carry the owning floor nested in each record.

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/propline/property-sales-backend/internal/model"
	"github.com/propline/property-sales-backend/internal/repository"
)

// SalesHandler aggregates the repositories needed for the read-only
// sales views.
type SalesHandler struct {
	Floors *repository.FloorRepo // provides access to floor data
	Shops  *repository.ShopRepo  // provides access to shop data
}

// NewSalesHandler constructs a SalesHandler and panics if any dependency is nil.
func NewSalesHandler(floors *repository.FloorRepo, shops *repository.ShopRepo) *SalesHandler {
	if floors == nil || shops == nil {
		panic("nil repository passed to NewSalesHandler")
	}
	return &SalesHandler{Floors: floors, Shops: shops}
}

// groupByFloorNumber partitions shops into a mapping keyed by their
// floor's level number.  The key is the floorNumber, not the floor id:
// two distinct floors sharing a number merge into one group.  Shops are
// appended in input order, so each group keeps store-return order.
func groupByFloorNumber(shops []*model.Shop) map[string][]*model.Shop {
	groups := make(map[string][]*model.Shop)
	for _, s := range shops {
		if s.Floor == nil {
			continue
		}
		key := strconv.Itoa(s.Floor.FloorNumber)
		groups[key] = append(groups[key], s)
	}
	return groups
}

// listShops is the shared body of the three listing endpoints; status ""
// means no filter.
func (h *SalesHandler) listShops(c echo.Context, status string) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	shops, err := h.Shops.ListWithFloor(ctx, status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list shops"})
	}
	return c.JSON(http.StatusOK, shops)
}

// groupedShops is the shared body of the three grouped endpoints.
func (h *SalesHandler) groupedShops(c echo.Context, status string) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	shops, err := h.Shops.ListWithFloor(ctx, status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not group shops"})
	}
	return c.JSON(http.StatusOK, groupByFloorNumber(shops))
}

// ListShops handles GET /sales/shops.
func (h *SalesHandler) ListShops(c echo.Context) error {
	return h.listShops(c, "")
}

// ListAvailableShops handles GET /sales/shops/available.
func (h *SalesHandler) ListAvailableShops(c echo.Context) error {
	return h.listShops(c, model.StatusAvailable)
}

// ListFloors handles GET /sales/floors.  Floors come back flat, no shop
// data joined.
func (h *SalesHandler) ListFloors(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	floors, err := h.Floors.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list floors"})
	}
	return c.JSON(http.StatusOK, floors)
}

// GroupShopsByFloor handles GET /sales/shops/grouped-by-floor.
func (h *SalesHandler) GroupShopsByFloor(c echo.Context) error {
	return h.groupedShops(c, "")
}

// GroupAvailableShopsByFloor handles GET /sales/shops/available/grouped-by-floor.
func (h *SalesHandler) GroupAvailableShopsByFloor(c echo.Context) error {
	return h.groupedShops(c, model.StatusAvailable)
}

// GroupSoldShopsByFloor handles GET /sales/shops/sold/grouped-by-floor.
func (h *SalesHandler) GroupSoldShopsByFloor(c echo.Context) error {
	return h.groupedShops(c, model.StatusSold)
}
