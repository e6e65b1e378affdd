package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Anushka-Mandal/Rental-Management-System/internal/model"
	"github.com/Anushka-Mandal/Rental-Management-System/internal/repository"
)

// RoomHandler serves the /Room routes.
type RoomHandler struct {
	Rooms *repository.RoomRepo
	Log   *zap.Logger
}

// NewRoomHandler constructs a RoomHandler.
func NewRoomHandler(rooms *repository.RoomRepo, log *zap.Logger) *RoomHandler {
	return &RoomHandler{Rooms: rooms, Log: log}
}

// List handles GET /Room.
func (h *RoomHandler) List(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	rooms, err := h.Rooms.List(ctx)
	if err != nil {
		h.Log.Error("list rooms failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch rooms"})
	}
	return c.JSON(http.StatusOK, rooms)
}

// ListByProperty handles GET /Room/property/:propertyId.
func (h *RoomHandler) ListByProperty(c echo.Context) error {
	propertyID, err := pathID(c, "propertyId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	rooms, err := h.Rooms.ListByProperty(ctx, propertyID)
	if err != nil {
		h.Log.Error("list rooms by property failed", zap.Int64("property_id", propertyID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch rooms"})
	}
	return c.JSON(http.StatusOK, rooms)
}

type roomReq struct {
	BedCount     int     `json:"BedCount"`
	OccupiedBeds int     `json:"OccupiedBeds"` // defaults to 0 on create
	RentAmount   float64 `json:"RentAmount"`
	RoomType     string  `json:"RoomType"`
	PropertyID   int64   `json:"PropertyID"`
}

// Create handles POST /Room.
func (h *RoomHandler) Create(c echo.Context) error {
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.BedCount == 0 || req.RentAmount == 0 || req.RoomType == "" || req.PropertyID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	id, err := h.Rooms.Create(ctx, model.Room{
		BedCount: req.BedCount, OccupiedBeds: req.OccupiedBeds,
		RentAmount: req.RentAmount, RoomType: req.RoomType, PropertyID: req.PropertyID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid PropertyID provided"})
		}
		h.Log.Error("create room failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add room"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Room added", "RoomID": id})
}

// Update handles PUT /Room/:id.
func (h *RoomHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	err = h.Rooms.Update(ctx, id, model.Room{
		BedCount: req.BedCount, OccupiedBeds: req.OccupiedBeds,
		RentAmount: req.RentAmount, RoomType: req.RoomType, PropertyID: req.PropertyID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Room not found"})
		}
		h.Log.Error("update room failed", zap.Int64("room_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update room"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Room updated successfully"})
}

// Delete handles DELETE /Room/:id.
func (h *RoomHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Rooms.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Room not found"})
		}
		h.Log.Error("delete room failed", zap.Int64("room_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete room"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Room deleted successfully"})
}
