package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Anushka-Mandal/Rental-Management-System/internal/model"
	"github.com/Anushka-Mandal/Rental-Management-System/internal/repository"
)

// TenantHandler serves the /Tenant routes. Besides the aggregate CRUD it
// owns the composite "all tenant data" view, which is why it also holds
// the payment, service request and feedback repositories.
type TenantHandler struct {
	Tenants  *repository.TenantRepo
	Payments *repository.PaymentRepo
	Requests *repository.ServiceRequestRepo
	Feedback *repository.FeedbackRepo
	Log      *zap.Logger
}

// NewTenantHandler constructs a TenantHandler.
func NewTenantHandler(tenants *repository.TenantRepo, payments *repository.PaymentRepo,
	requests *repository.ServiceRequestRepo, feedback *repository.FeedbackRepo, log *zap.Logger) *TenantHandler {
	return &TenantHandler{Tenants: tenants, Payments: payments, Requests: requests, Feedback: feedback, Log: log}
}

// List handles GET /Tenant: the assembled view of every tenant.
func (h *TenantHandler) List(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	tenants, err := h.Tenants.List(ctx)
	if err != nil {
		h.Log.Error("list tenants failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch tenants"})
	}
	return c.JSON(http.StatusOK, tenants)
}

// Get handles GET /Tenant/:id: the assembled view of one tenant.
func (h *TenantHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	tenant, err := h.Tenants.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Tenant not found"})
		}
		h.Log.Error("get tenant failed", zap.Int64("tenant_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch tenant"})
	}
	return c.JSON(http.StatusOK, tenant)
}

type tenantReq struct {
	FirstName     string   `json:"firstName"`
	MiddleName    string   `json:"middleName"`
	LastName      string   `json:"lastName"`
	Phones        []string `json:"phones"`
	Emails        []string `json:"emails"`
	CheckInDate   string   `json:"CheckInDate"`
	CheckOutDate  string   `json:"CheckOutDate"`
	PaymentStatus string   `json:"PaymentStatus"`
	RoomID        int64    `json:"RoomID"`
	OwnerID       int64    `json:"OwnerID"`
}

func (req *tenantReq) toInput() repository.TenantInput {
	in := repository.TenantInput{
		FirstName:     req.FirstName,
		MiddleName:    req.MiddleName,
		LastName:      req.LastName,
		Phones:        req.Phones,
		Emails:        req.Emails,
		CheckInDate:   req.CheckInDate,
		PaymentStatus: req.PaymentStatus,
		RoomID:        req.RoomID,
		OwnerID:       req.OwnerID,
	}
	if in.PaymentStatus == "" {
		in.PaymentStatus = "Pending"
	}
	if req.CheckOutDate != "" {
		out := req.CheckOutDate
		in.CheckOutDate = &out
	}
	return in
}

// Create handles POST /Tenant. A new tenant must arrive with a first and
// last name, at least one phone and one email, a check-in date, a room
// and an owner; the repository writes all four aggregate pieces in one
// transaction and returns the assembled view.
func (h *TenantHandler) Create(c echo.Context) error {
	var req tenantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.FirstName == "" || req.LastName == "" || len(req.Phones) == 0 || len(req.Emails) == 0 ||
		req.CheckInDate == "" || req.RoomID == 0 || req.OwnerID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Missing required fields: firstName, lastName, phones, emails, CheckInDate, RoomID, OwnerID",
		})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	tenant, err := h.Tenants.Create(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid RoomID or OwnerID"})
		}
		h.Log.Error("create tenant failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add tenant"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Tenant added successfully", "tenant": tenant})
}

// Update handles PUT /Tenant/:id. Contact lists use replace semantics:
// the supplied lists overwrite whatever the tenant had, and an empty
// list is a valid way to clear the contacts.
func (h *TenantHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req tenantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.FirstName == "" || req.LastName == "" || req.CheckInDate == "" || req.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields for update"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	tenant, err := h.Tenants.Update(ctx, id, req.toInput())
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid RoomID or OwnerID"})
		}
		h.Log.Error("update tenant failed", zap.Int64("tenant_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update tenant"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Tenant updated successfully", "tenant": tenant})
}

type patchStatusReq struct {
	PaymentStatus string `json:"PaymentStatus"`
}

// PatchStatus handles PATCH /Tenant/:id/status.
func (h *TenantHandler) PatchStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req patchStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.PaymentStatus == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "PaymentStatus required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Tenants.UpdateStatus(ctx, id, req.PaymentStatus); err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Tenant not found"})
		}
		h.Log.Error("patch tenant status failed", zap.Int64("tenant_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update payment status"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "PaymentStatus updated"})
}

// Delete handles DELETE /Tenant/:id.
func (h *TenantHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Tenants.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Tenant not found"})
		}
		h.Log.Error("delete tenant failed", zap.Int64("tenant_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete tenant"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Tenant deleted successfully"})
}

// TotalDue handles GET /Tenant/:id/TotalDue.
func (h *TenantHandler) TotalDue(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	due, err := h.Tenants.TotalDue(ctx, id)
	if err != nil {
		h.Log.Error("total due lookup failed", zap.Int64("tenant_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error fetching total rent due"})
	}
	return c.JSON(http.StatusOK, echo.Map{"TotalDue": due})
}

// All handles GET /Tenant/:id/all: the assembled tenant plus every
// payment, service request and feedback row referencing it. The four
// fetches are independent and run concurrently; a missing tenant returns
// 404 with none of the other result sets leaked.
func (h *TenantHandler) All(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	var (
		tenant    model.Tenant
		payments  []model.Payment
		requests  []model.ServiceRequest
		feedbacks []model.Feedback
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tenant, err = h.Tenants.Get(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = h.Payments.ListByTenant(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		requests, err = h.Requests.ListByTenant(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		feedbacks, err = h.Feedback.ListByTenant(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Tenant not found"})
		}
		h.Log.Error("fetch tenant data failed", zap.Int64("tenant_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch tenant data"})
	}

	tenant.FullName = strings.Join([]string{tenant.FirstName, tenant.MiddleName, tenant.LastName}, " ")
	return c.JSON(http.StatusOK, echo.Map{
		"tenant":    tenant,
		"payments":  payments,
		"requests":  requests,
		"feedbacks": feedbacks,
	})
}

type tenantLoginReq struct {
	Name     string `json:"name"`
	TenantID int64  `json:"tenantID"`
}

// Login handles POST /Tenant/login: the assembled view matched by id and
// the exact space-joined full name.
func (h *TenantHandler) Login(c echo.Context) error {
	var req tenantLoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Name == "" || req.TenantID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name and TenantID are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	tenant, err := h.Tenants.Login(ctx, req.TenantID, req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid tenant credentials"})
		}
		h.Log.Error("tenant login failed", zap.Int64("tenant_id", req.TenantID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Database error during tenant login"})
	}
	return c.JSON(http.StatusOK, echo.Map{"tenant": tenant})
}
