package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Anushka-Mandal/Rental-Management-System/internal/model"
	"github.com/Anushka-Mandal/Rental-Management-System/internal/repository"
)

// OwnerHandler serves the /Owner routes.
type OwnerHandler struct {
	Owners *repository.OwnerRepo
	Log    *zap.Logger
}

// NewOwnerHandler constructs an OwnerHandler.
func NewOwnerHandler(owners *repository.OwnerRepo, log *zap.Logger) *OwnerHandler {
	return &OwnerHandler{Owners: owners, Log: log}
}

// List handles GET /Owner.
func (h *OwnerHandler) List(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	owners, err := h.Owners.List(ctx)
	if err != nil {
		h.Log.Error("list owners failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch owners"})
	}
	return c.JSON(http.StatusOK, owners)
}

type createOwnerReq struct {
	OwnerID int64  `json:"OwnerID"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Create handles POST /Owner. Every field is required; the OwnerID is
// assigned by the admin making the request.
func (h *OwnerHandler) Create(c echo.Context) error {
	var req createOwnerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.OwnerID == 0 || req.Name == "" || req.Phone == "" || req.Email == "" || req.Address == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "All fields are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	o := model.Owner{OwnerID: req.OwnerID, Name: req.Name, Phone: req.Phone, Email: req.Email, Address: req.Address}
	if err := h.Owners.Create(ctx, o); err != nil {
		h.Log.Error("create owner failed", zap.Int64("owner_id", req.OwnerID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add owner"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Owner added successfully", "id": req.OwnerID})
}

type ownerLoginReq struct {
	Name    string `json:"name"`
	OwnerID int64  `json:"ownerID"`
}

// Login handles POST /Owner/login: a plain id + name equality lookup.
// No credentials beyond that exist in this system.
func (h *OwnerHandler) Login(c echo.Context) error {
	var req ownerLoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Name == "" || req.OwnerID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name and OwnerID are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	owner, err := h.Owners.Login(ctx, req.OwnerID, req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid owner credentials"})
		}
		h.Log.Error("owner login failed", zap.Int64("owner_id", req.OwnerID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Database error during owner login"})
	}
	return c.JSON(http.StatusOK, echo.Map{"owner": owner})
}
