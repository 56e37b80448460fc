package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/propline/property-sales-backend/internal/handler"    // admin handlers
	"github.com/propline/property-sales-backend/internal/middleware" // JWT + role middlewares
)

// RegisterAdmin registers the /admin endpoints.  Login is the only open
// route; everything else requires a valid JWT carrying the ADMIN role.
// cacheMW is applied per-route on the count endpoints so it runs after
// authentication, never before it.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, auth *handler.AuthHandler, jwtSecret string, cacheMW echo.MiddlewareFunc) {
	// Unauthenticated: token issuance.
	e.POST("/admin/login", auth.Login)

	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)

	// ---- Floors ----
	g.POST("/floors", a.CreateFloor)
	g.DELETE("/floors/:id", a.DeleteFloor)

	// ---- Shops ----
	g.POST("/shops", a.CreateShop)
	g.DELETE("/shops/:id", a.DeleteShop)
	g.PUT("/shops/:id/floor", a.UpdateShopFloor)
	g.PUT("/shops/:id/status", a.UpdateShopStatus)
	g.PUT("/shops/:id/size", a.UpdateShopSize)
	g.PUT("/shops/:id/number", a.UpdateShopNumber)
	g.PUT("/shops/:id", a.UpdateShop) // full update: number, size and floor in one call

	// ---- Users ----
	g.POST("/users", a.CreateUser)
	g.GET("/users", a.ListUsers)
	g.PUT("/users/:id/role", a.UpdateUserRole)
	g.DELETE("/users/:id", a.DeleteUser)

	// ---- Dashboard aggregates ----
	g.GET("/shops/count", a.CountShops, cacheMW)
	g.GET("/floors/count", a.CountFloors, cacheMW)
	g.GET("/users/count", a.CountUsers, cacheMW)
	g.GET("/shops/available/count", a.CountAvailableShops, cacheMW)
	g.GET("/shops/sold/count", a.CountSoldShops, cacheMW)
	g.GET("/shops/sold", a.ListSoldShops)
}
