package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Anushka-Mandal/Rental-Management-System/internal/repository"
)

// ServiceRequestHandler serves the /ServiceRequest routes.
type ServiceRequestHandler struct {
	Requests *repository.ServiceRequestRepo
	Log      *zap.Logger
}

// NewServiceRequestHandler constructs a ServiceRequestHandler.
func NewServiceRequestHandler(requests *repository.ServiceRequestRepo, log *zap.Logger) *ServiceRequestHandler {
	return &ServiceRequestHandler{Requests: requests, Log: log}
}

// List handles GET /ServiceRequest with optional ?ownerId= and
// ?tenantId= filters.
func (h *ServiceRequestHandler) List(c echo.Context) error {
	ownerID, _ := strconv.ParseInt(c.QueryParam("ownerId"), 10, 64)
	tenantID, _ := strconv.ParseInt(c.QueryParam("tenantId"), 10, 64)

	ctx, cancel := reqContext(c)
	defer cancel()

	requests, err := h.Requests.List(ctx, ownerID, tenantID)
	if err != nil {
		h.Log.Error("list service requests failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch service requests"})
	}
	return c.JSON(http.StatusOK, requests)
}

type createRequestReq struct {
	Category    string `json:"Category"`
	Description string `json:"Description"`
	TenantID    int64  `json:"TenantID"`
	DateRaised  string `json:"DateRaised"`
}

// Create handles POST /ServiceRequest. New requests always start
// Pending.
func (h *ServiceRequestHandler) Create(c echo.Context) error {
	var req createRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Category == "" || req.Description == "" || req.TenantID == 0 || req.DateRaised == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	id, err := h.Requests.Create(ctx, req.Category, req.Description, req.DateRaised, req.TenantID)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid TenantID provided"})
		}
		h.Log.Error("create service request failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add service request"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Service request added successfully", "RequestID": id})
}

// Update handles PUT /ServiceRequest/:requestId. Status and StaffID are
// each optional; StaffID may be explicitly null to remove an assignment,
// so key presence is checked on the raw body rather than on a bound
// struct.
func (h *ServiceRequestHandler) Update(c echo.Context) error {
	id, err := pathID(c, "requestId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body map[string]json.RawMessage
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	var status *string
	if raw, ok := body["Status"]; ok {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil || s == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid Status"})
		}
		status = &s
	}
	var staffID *int64
	_, setStaff := body["StaffID"]
	if setStaff {
		if err := json.Unmarshal(body["StaffID"], &staffID); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid StaffID"})
		}
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Requests.Update(ctx, id, status, setStaff, staffID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNoFields):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "No fields to update"})
		case errors.Is(err, repository.ErrRequestNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Service request not found"})
		}
		h.Log.Error("update service request failed", zap.Int64("request_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update service request"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Service request updated successfully"})
}

type resolveRequestReq struct {
	DateResolved string `json:"DateResolved"`
	StaffID      *int64 `json:"StaffID"`
}

// Resolve handles PATCH /ServiceRequest/:requestId/resolve, the legacy
// completion endpoint.
func (h *ServiceRequestHandler) Resolve(c echo.Context) error {
	id, err := pathID(c, "requestId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req resolveRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.DateResolved == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Resolution date is required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Requests.Resolve(ctx, id, req.DateResolved, req.StaffID); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Service request not found"})
		}
		h.Log.Error("resolve service request failed", zap.Int64("request_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update service request"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Service request resolved"})
}
