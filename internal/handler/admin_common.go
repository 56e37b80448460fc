package handler // handler defines http handlers

import (
	"strconv" // strconv converts URL parameters to numeric types

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/propline/property-sales-backend/internal/repository" // repository holds data access layer
)

// AdminHandler bundles the repositories the admin endpoints mutate and
// query.  All routes served by it (except login, which lives on
// AuthHandler) are registered behind JWT + ADMIN role middleware.
type AdminHandler struct {
	Floors     *repository.FloorRepo // floor persistence
	Shops      *repository.ShopRepo  // shop persistence
	Users      *repository.UserRepo  // user persistence
	BcryptCost int                   // cost factor for hashing new user passwords
}

// NewAdminHandler constructs an AdminHandler and panics if any dependency is nil.
func NewAdminHandler(floors *repository.FloorRepo, shops *repository.ShopRepo, users *repository.UserRepo, bcryptCost int) *AdminHandler {
	if floors == nil || shops == nil || users == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Floors: floors, Shops: shops, Users: users, BcryptCost: bcryptCost}
}

// parseID parses the :id path parameter as an unsigned integer.
func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
