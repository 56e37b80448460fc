package handler // handler package contains admin shop endpoints

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/propline/property-sales-backend/internal/model"
	"github.com/propline/property-sales-backend/internal/queue"
	"github.com/propline/property-sales-backend/internal/repository"
	queue_publisher "github.com/propline/property-sales-backend/internal/service"
)

// CreateShop handles POST /admin/shops.  New shops start AVAILABLE.  A
// floorId that does not reference an existing floor is rejected before
// anything is persisted; the foreign key is the enforcement point.
func (h *AdminHandler) CreateShop(c echo.Context) error {
	var body struct {
		ShopNumber string  `json:"shopNumber"` // required display number
		Size       string  `json:"size"`       // required free-form size
		FloorID    *uint64 `json:"floorId"`    // required owning floor
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.ShopNumber) == "" || strings.TrimSpace(body.Size) == "" || body.FloorID == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "shopNumber, size and floorId are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	shop := &model.Shop{
		ShopNumber: strings.TrimSpace(body.ShopNumber),
		Size:       strings.TrimSpace(body.Size),
		FloorID:    *body.FloorID,
	}
	if err := h.Shops.Create(ctx, shop); err != nil {
		if errors.Is(err, repository.ErrFloorReference) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "floorId does not reference an existing floor"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create shop"})
	}
	return c.JSON(http.StatusCreated, shop)
}

// DeleteShop handles DELETE /admin/shops/:id.  Shops are deleted
// independently of their floor.
func (h *AdminHandler) DeleteShop(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	shop, err := h.Shops.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "shop not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":     "Shop deleted successfully",
		"deletedShop": shop,
	})
}

// shopUpdateResponse maps a repository update result onto the HTTP reply
// shared by all PUT /admin/shops handlers.
func shopUpdateResponse(c echo.Context, message string, shop *model.Shop, err error) error {
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrShopNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "shop not found"})
		case errors.Is(err, repository.ErrFloorReference):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "floorId does not reference an existing floor"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":     message,
		"updatedShop": shop,
	})
}

// UpdateShopFloor handles PUT /admin/shops/:id/floor and reassigns a shop
// to another floor.
func (h *AdminHandler) UpdateShopFloor(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		FloorID *uint64 `json:"floorId"`
	}
	if err := c.Bind(&body); err != nil || body.FloorID == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "floorId is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	shop, err := h.Shops.UpdateFloor(ctx, id, *body.FloorID)
	return shopUpdateResponse(c, "Shop floor updated successfully", shop, err)
}

// UpdateShopStatus handles PUT /admin/shops/:id/status.  Only the two
// recognised statuses pass; anything else is rejected before the store is
// touched.  A transition to SOLD publishes a shop.sold event for the
// sales log consumer, best effort.
func (h *AdminHandler) UpdateShopStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	status := strings.ToUpper(strings.TrimSpace(body.Status))
	if !model.ValidStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be AVAILABLE or SOLD"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	shop, err := h.Shops.UpdateStatus(ctx, id, status)
	if err == nil && status == model.StatusSold {
		h.publishShopSold(ctx, shop)
	}
	return shopUpdateResponse(c, "Shop status updated successfully", shop, err)
}

// publishShopSold emits a shop.sold event enriched with floor data.  The
// request never fails because the broker is down; errors are logged by
// the publisher and dropped here.
func (h *AdminHandler) publishShopSold(ctx context.Context, shop *model.Shop) {
	ev := queue.ShopSoldEvent{
		ShopID:     shop.ID,
		ShopNumber: shop.ShopNumber,
		Size:       shop.Size,
		FloorID:    shop.FloorID,
		SoldAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if floor, err := h.Floors.GetByID(ctx, shop.FloorID); err == nil {
		ev.FloorName = floor.Name
		ev.FloorNumber = floor.FloorNumber
	}
	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := queue_publisher.PublishShopSold(pubCtx, ev); err != nil {
			log.Printf("shop.sold publish skipped: %v", err)
		}
	}()
}

// UpdateShopSize handles PUT /admin/shops/:id/size.
func (h *AdminHandler) UpdateShopSize(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Size string `json:"size"`
	}
	if err := c.Bind(&body); err != nil || strings.TrimSpace(body.Size) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "size is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	shop, err := h.Shops.UpdateSize(ctx, id, strings.TrimSpace(body.Size))
	return shopUpdateResponse(c, "Shop size updated successfully", shop, err)
}

// UpdateShopNumber handles PUT /admin/shops/:id/number.
func (h *AdminHandler) UpdateShopNumber(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		ShopNumber string `json:"shopNumber"`
	}
	if err := c.Bind(&body); err != nil || strings.TrimSpace(body.ShopNumber) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "shopNumber is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	shop, err := h.Shops.UpdateNumber(ctx, id, strings.TrimSpace(body.ShopNumber))
	return shopUpdateResponse(c, "Shop number updated successfully", shop, err)
}

// UpdateShop handles PUT /admin/shops/:id and changes number, size and
// floor linkage in a single call.
func (h *AdminHandler) UpdateShop(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		ShopNumber string  `json:"shopNumber"`
		Size       string  `json:"size"`
		FloorID    *uint64 `json:"floorId"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.ShopNumber) == "" || strings.TrimSpace(body.Size) == "" || body.FloorID == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "shopNumber, size and floorId are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	shop, err := h.Shops.Update(ctx, id, strings.TrimSpace(body.ShopNumber), strings.TrimSpace(body.Size), *body.FloorID)
	return shopUpdateResponse(c, "Shop updated successfully", shop, err)
}
