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

// saleHandler handles HTTP requests related to sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

// newSaleHandler creates a new saleHandler.
func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{saleService: ss}
}

// registerSaleRoutes registers routes related to sales.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/:id", h.getSaleByID)
		sales.PUT("/:id", h.updateSale)
		sales.DELETE("/:id", h.deleteSale)
		sales.GET("/:id/additional-costs", h.listAdditionalCosts)
	}
}

func (h *saleHandler) bindSaleRequest(c *gin.Context) (dto.CreateSaleRequest, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for sale request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return req, false
	}
	return req, true
}

func (h *saleHandler) writeSaleError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrRateUnavailable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Sale operation failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

func (h *saleHandler) createSale(c *gin.Context) {
	req, ok := h.bindSaleRequest(c)
	if !ok {
		return
	}

	created, err := h.saleService.CreateSale(c.Request.Context(), req)
	if err != nil {
		h.writeSaleError(c, err, "create sale")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleResponse(created))
}

func (h *saleHandler) getSaleByID(c *gin.Context) {
	saleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sale, err := h.saleService.GetSaleByID(c.Request.Context(), saleID)
	if err != nil {
		h.writeSaleError(c, err, "retrieve sale")
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list sales from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sales"})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *saleHandler) updateSale(c *gin.Context) {
	saleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	req, ok := h.bindSaleRequest(c)
	if !ok {
		return
	}

	updated, err := h.saleService.UpdateSale(c.Request.Context(), saleID, req)
	if err != nil {
		h.writeSaleError(c, err, "update sale")
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(updated))
}

func (h *saleHandler) deleteSale(c *gin.Context) {
	saleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), saleID); err != nil {
		h.writeSaleError(c, err, "delete sale")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *saleHandler) listAdditionalCosts(c *gin.Context) {
	saleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	costs, err := h.saleService.GetAdditionalCosts(c.Request.Context(), saleID)
	if err != nil {
		h.writeSaleError(c, err, "list additional costs")
		return
	}

	c.JSON(http.StatusOK, dto.ToAdditionalCostResponses(costs))
}
