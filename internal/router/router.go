// Package router defines how HTTP routes are registered for the API.
// Paths and verbs mirror the frontend's expectations exactly, including
// the capitalized resource names.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Anushka-Mandal/Rental-Management-System/internal/handler"
)

// Handlers bundles every resource handler the router needs.
type Handlers struct {
	Health   *handler.HealthHandler
	Owner    *handler.OwnerHandler
	Property *handler.PropertyHandler
	Room     *handler.RoomHandler
	Tenant   *handler.TenantHandler
	Staff    *handler.StaffHandler
	Payment  *handler.PaymentHandler
	Request  *handler.ServiceRequestHandler
	Feedback *handler.FeedbackHandler
}

// RegisterRoutes wires every route of the API onto the Echo instance.
// No route requires authentication; the login endpoints are plain
// lookups, not session issuers.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	// Liveness and diagnostics
	e.GET("/", h.Health.Root)
	e.GET("/health", h.Health.Health)
	e.GET("/test-db", h.Health.TestDB)

	// Owners
	e.GET("/Owner", h.Owner.List)
	e.POST("/Owner", h.Owner.Create)
	e.POST("/Owner/login", h.Owner.Login)

	// Properties; delete cascades to the property's rooms
	e.GET("/Property", h.Property.List)
	e.POST("/Property", h.Property.Create)
	e.PUT("/Property/:id", h.Property.Update)
	e.DELETE("/Property/:id", h.Property.Delete)

	// Rooms
	e.GET("/Room", h.Room.List)
	e.GET("/Room/property/:propertyId", h.Room.ListByProperty)
	e.POST("/Room", h.Room.Create)
	e.PUT("/Room/:id", h.Room.Update)
	e.DELETE("/Room/:id", h.Room.Delete)

	// Tenant aggregate
	e.GET("/Tenant", h.Tenant.List)
	e.POST("/Tenant", h.Tenant.Create)
	e.POST("/Tenant/login", h.Tenant.Login)
	e.GET("/Tenant/:id", h.Tenant.Get)
	e.PUT("/Tenant/:id", h.Tenant.Update)
	e.PATCH("/Tenant/:id/status", h.Tenant.PatchStatus)
	e.DELETE("/Tenant/:id", h.Tenant.Delete)
	e.GET("/Tenant/:id/all", h.Tenant.All)
	e.GET("/Tenant/:id/TotalDue", h.Tenant.TotalDue)

	// Staff
	e.GET("/Staff", h.Staff.List)
	e.POST("/Staff", h.Staff.Create)

	// Payments
	e.GET("/Payment", h.Payment.List)
	e.POST("/Payment", h.Payment.Record)

	// Service requests
	e.GET("/ServiceRequest", h.Request.List)
	e.POST("/ServiceRequest", h.Request.Create)
	e.PUT("/ServiceRequest/:requestId", h.Request.Update)
	e.PATCH("/ServiceRequest/:requestId/resolve", h.Request.Resolve)

	// Feedback
	e.GET("/Feedback", h.Feedback.List)
	e.POST("/Feedback", h.Feedback.Create)
}
