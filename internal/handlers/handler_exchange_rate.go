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
	"github.com/shopbooks/shopbooks_backend/internal/utils/pagination"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	rateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(rs portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{rateService: rs}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, rateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(rateService)

	rates := rg.Group("/exchange-rates")
	{
		rates.POST("", h.createExchangeRate)
		rates.GET("", h.listExchangeRates)
		rates.GET("/lookup", h.getExchangeRate)
	}
}

func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.rateService.CreateExchangeRate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create exchange rate in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exchange rate"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ExchangeRateResponse{
		FromCurrencyID: created.FromCurrencyID,
		ToCurrencyID:   created.ToCurrencyID,
		Rate:           created.Rate,
		RateDate:       created.RateDate,
	})
}

func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.GetExchangeRateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rate, err := h.rateService.GetExchangeRate(c.Request.Context(), params.From, params.To, params.Date)
	if err != nil {
		if errors.Is(err, apperrors.ErrRateUnavailable) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get exchange rate from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ExchangeRateResponse{
		FromCurrencyID: rate.FromCurrencyID,
		ToCurrencyID:   rate.ToCurrencyID,
		Rate:           rate.Rate,
		RateDate:       rate.RateDate,
	})
}

func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params struct {
		pagination.Params
		From *int64 `form:"from"`
		To   *int64 `form:"to"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rates, total, err := h.rateService.ListExchangeRates(c.Request.Context(), params.From, params.To, params.Limit(), params.Offset())
	if err != nil {
		logger.Error("Failed to list exchange rates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exchange rates"})
		return
	}

	items := make([]dto.ExchangeRateResponse, len(rates))
	for i, r := range rates {
		items[i] = dto.ExchangeRateResponse{
			FromCurrencyID: r.FromCurrencyID,
			ToCurrencyID:   r.ToCurrencyID,
			Rate:           r.Rate,
			RateDate:       r.RateDate,
		}
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}
