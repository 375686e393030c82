package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	portssvc "github.com/shopbooks/shopbooks_backend/internal/core/ports/services"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
	"github.com/shopbooks/shopbooks_backend/internal/middleware"
)

// paymentHandler handles HTTP requests related to sale payments.
type paymentHandler struct {
	settlementService portssvc.SettlementSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ss portssvc.SettlementSvcFacade) *paymentHandler {
	return &paymentHandler{settlementService: ss}
}

// registerPaymentRoutes registers routes related to sale payments.
func registerPaymentRoutes(rg *gin.RouterGroup, settlementService portssvc.SettlementSvcFacade) {
	h := newPaymentHandler(settlementService)

	rg.POST("/sales/:id/payments", h.addPayment)
	rg.GET("/sales/:id/payments", h.listPayments)
	rg.DELETE("/payments/:id", h.deletePayment)
}

func (h *paymentHandler) addPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.settlementService.AddPayment(c.Request.Context(), saleID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrRateUnavailable) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record payment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	payments, err := h.settlementService.ListPayments(c.Request.Context(), saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		} else {
			logger.Error("Failed to list payments from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

func (h *paymentHandler) deletePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.settlementService.DeletePayment(c.Request.Context(), paymentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		} else {
			logger.Error("Failed to delete payment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
