package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/propline/property-sales-backend/internal/handler" // sales view handlers
)

// RegisterSales registers the unauthenticated read-only sales endpoints.
// These serve the dashboard's shop/floor projections; the Redis response
// cache fronts all of them since they are pure reads.
func RegisterSales(e *echo.Echo, s *handler.SalesHandler, cacheMW echo.MiddlewareFunc) {
	g := e.Group("/sales", cacheMW)

	g.GET("/shops", s.ListShops)
	g.GET("/shops/available", s.ListAvailableShops)
	g.GET("/floors", s.ListFloors)

	// Grouped views keyed by floor number (not floor id; floors sharing a
	// number merge into one group).
	g.GET("/shops/grouped-by-floor", s.GroupShopsByFloor)
	g.GET("/shops/available/grouped-by-floor", s.GroupAvailableShopsByFloor)
	g.GET("/shops/sold/grouped-by-floor", s.GroupSoldShopsByFloor)
}
