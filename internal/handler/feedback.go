package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Anushka-Mandal/Rental-Management-System/internal/repository"
)

// FeedbackHandler serves the /Feedback routes.
type FeedbackHandler struct {
	Feedback *repository.FeedbackRepo
	Log      *zap.Logger
}

// NewFeedbackHandler constructs a FeedbackHandler.
func NewFeedbackHandler(feedback *repository.FeedbackRepo, log *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{Feedback: feedback, Log: log}
}

// List handles GET /Feedback.
func (h *FeedbackHandler) List(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	feedback, err := h.Feedback.List(ctx)
	if err != nil {
		h.Log.Error("list feedback failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch feedback"})
	}
	return c.JSON(http.StatusOK, feedback)
}

type createFeedbackReq struct {
	Category string `json:"Category"`
	Message  string `json:"Message"`
	Rating   int    `json:"Rating"`
	TenantID int64  `json:"TenantID"`
}

// Create handles POST /Feedback. The submission date is stamped by the
// database.
func (h *FeedbackHandler) Create(c echo.Context) error {
	var req createFeedbackReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Category == "" || req.Message == "" || req.Rating == 0 || req.TenantID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "All fields are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	id, err := h.Feedback.Create(ctx, req.Category, req.Message, req.Rating, req.TenantID)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid TenantID provided"})
		}
		h.Log.Error("create feedback failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Database error adding feedback"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Feedback added successfully", "FeedbackID": id})
}
