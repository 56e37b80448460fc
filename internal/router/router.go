package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/propline/property-sales-backend/internal/handler" // handlers implementing the endpoints
)

// RegisterRoutes registers routes that do not belong to the admin or
// sales groups.  Currently it exposes only a health check, used by load
// balancers and monitoring systems to verify that the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}
