package handler // handler package contains admin floor endpoints

import (
	"context"  // context with cancellation for DB calls
	"errors"   // errors package for comparing sentinels
	"net/http" // http defines status code constants
	"strings"  // strings manipulates and trims text
	"time"     // timeouts for DB calls

	"github.com/labstack/echo/v4" // echo framework supplies request context

	"github.com/propline/property-sales-backend/internal/model"
	"github.com/propline/property-sales-backend/internal/repository"
)

// CreateFloor handles POST /admin/floors and records a new building level.
// Floor numbers are deliberately not checked for uniqueness; two wings of
// the same level may share a number.
func (h *AdminHandler) CreateFloor(c echo.Context) error {
	var body struct {
		Name        string `json:"name"`        // required floor name
		FloorNumber *int   `json:"floorNumber"` // required level number
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" || body.FloorNumber == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and floorNumber are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	floor := &model.Floor{
		Name:        strings.TrimSpace(body.Name),
		FloorNumber: *body.FloorNumber,
	}
	if err := h.Floors.Create(ctx, floor); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create floor"})
	}
	return c.JSON(http.StatusCreated, floor)
}

// DeleteFloor handles DELETE /admin/floors/:id.  Every shop on the floor
// is removed together with the floor itself in one transaction, so the
// referential invariant holds even when the delete fails part way.
func (h *AdminHandler) DeleteFloor(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	floor, err := h.Floors.DeleteCascade(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFloorNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "floor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":      "Floor deleted successfully",
		"deletedFloor": floor,
	})
}
