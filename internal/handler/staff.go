package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Anushka-Mandal/Rental-Management-System/internal/model"
	"github.com/Anushka-Mandal/Rental-Management-System/internal/repository"
)

// StaffHandler serves the /Staff routes.
type StaffHandler struct {
	Staff *repository.StaffRepo
	Log   *zap.Logger
}

// NewStaffHandler constructs a StaffHandler.
func NewStaffHandler(staff *repository.StaffRepo, log *zap.Logger) *StaffHandler {
	return &StaffHandler{Staff: staff, Log: log}
}

// List handles GET /Staff. Only staff marked Available are listed; the
// endpoint exists to populate assignment pickers.
func (h *StaffHandler) List(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	staff, err := h.Staff.ListAvailable(ctx)
	if err != nil {
		h.Log.Error("list staff failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch staff"})
	}
	return c.JSON(http.StatusOK, staff)
}

type createStaffReq struct {
	StaffID            int64  `json:"StaffID"`
	Name               string `json:"name"`
	Role               string `json:"role"`
	Contact            string `json:"contact"`
	AvailabilityStatus string `json:"AvailabilityStatus"`
}

// Create handles POST /Staff.
func (h *StaffHandler) Create(c echo.Context) error {
	var req createStaffReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.StaffID == 0 || req.Name == "" || req.Role == "" || req.Contact == "" || req.AvailabilityStatus == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "All fields are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	s := model.Staff{
		StaffID: req.StaffID, Name: req.Name, Role: req.Role,
		Contact: req.Contact, AvailabilityStatus: req.AvailabilityStatus,
	}
	if err := h.Staff.Create(ctx, s); err != nil {
		h.Log.Error("create staff failed", zap.Int64("staff_id", req.StaffID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add staff"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Staff added", "id": req.StaffID})
}
