package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Anushka-Mandal/Rental-Management-System/internal/model"
	"github.com/Anushka-Mandal/Rental-Management-System/internal/repository"
)

// PropertyHandler serves the /Property routes.
type PropertyHandler struct {
	Properties *repository.PropertyRepo
	Log        *zap.Logger
}

// NewPropertyHandler constructs a PropertyHandler.
func NewPropertyHandler(properties *repository.PropertyRepo, log *zap.Logger) *PropertyHandler {
	return &PropertyHandler{Properties: properties, Log: log}
}

// List handles GET /Property.
func (h *PropertyHandler) List(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	properties, err := h.Properties.List(ctx)
	if err != nil {
		h.Log.Error("list properties failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch properties"})
	}
	return c.JSON(http.StatusOK, properties)
}

type propertyReq struct {
	Name       string `json:"name"`
	Location   string `json:"location"`
	TotalRooms int    `json:"TotalRooms"`
	OwnerID    int64  `json:"OwnerID"`
}

// Create handles POST /Property.
func (h *PropertyHandler) Create(c echo.Context) error {
	var req propertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Name == "" || req.Location == "" || req.TotalRooms == 0 || req.OwnerID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	id, err := h.Properties.Create(ctx, model.Property{
		Name: req.Name, Location: req.Location, TotalRooms: req.TotalRooms, OwnerID: req.OwnerID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid OwnerID provided"})
		}
		h.Log.Error("create property failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add property"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Property added successfully", "PropertyID": id})
}

// Update handles PUT /Property/:id.
func (h *PropertyHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req propertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Name == "" || req.Location == "" || req.TotalRooms == 0 || req.OwnerID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "All fields are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	err = h.Properties.Update(ctx, id, model.Property{
		Name: req.Name, Location: req.Location, TotalRooms: req.TotalRooms, OwnerID: req.OwnerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPropertyNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Property not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid OwnerID provided"})
		}
		h.Log.Error("update property failed", zap.Int64("property_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update property"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Property updated successfully"})
}

// Delete handles DELETE /Property/:id. The repository removes the
// property's rooms in the same transaction, so a failed cascade leaves
// the property intact.
func (h *PropertyHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	roomsDeleted, err := h.Properties.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Property not found"})
		}
		h.Log.Error("delete property failed", zap.Int64("property_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete property"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":      "Property and all associated rooms deleted successfully",
		"deletedId":    id,
		"roomsDeleted": roomsDeleted,
	})
}
