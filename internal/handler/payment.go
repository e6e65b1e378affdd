package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Anushka-Mandal/Rental-Management-System/internal/queue"
	"github.com/Anushka-Mandal/Rental-Management-System/internal/repository"
	queue_publisher "github.com/Anushka-Mandal/Rental-Management-System/internal/service"
)

// PaymentHandler serves the /Payment routes.
type PaymentHandler struct {
	Payments *repository.PaymentRepo
	Log      *zap.Logger
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(payments *repository.PaymentRepo, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Payments: payments, Log: log}
}

// List handles GET /Payment.
func (h *PaymentHandler) List(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	payments, err := h.Payments.List(ctx)
	if err != nil {
		h.Log.Error("list payments failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(http.StatusOK, payments)
}

type recordPaymentReq struct {
	TenantID    int64  `json:"TenantID"`
	PaymentMode string `json:"PaymentMode"`
}

// Record handles POST /Payment: the full-payment workflow. The due
// amount, the payment insert and the tenant status flip all happen in a
// single transaction inside the repository. After the commit a
// payment.recorded event is published best-effort; broker trouble never
// fails the request.
func (h *PaymentHandler) Record(c echo.Context) error {
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.TenantID == 0 || req.PaymentMode == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "TenantID and PaymentMode are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	amount, paymentID, err := h.Payments.RecordFullPayment(ctx, req.TenantID, req.PaymentMode)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid TenantID provided"})
		}
		h.Log.Error("record payment failed", zap.Int64("tenant_id", req.TenantID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to record payment"})
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishPaymentRecorded(ctx, queue.PaymentRecordedEvent{
			PaymentID:   paymentID,
			TenantID:    req.TenantID,
			Amount:      amount,
			PaymentMode: req.PaymentMode,
			Status:      "Paid",
			RecordedAt:  time.Now().UTC().Format(time.RFC3339),
		})
	}()

	return c.JSON(http.StatusOK, echo.Map{"message": "Payment successful", "amount": amount})
}
