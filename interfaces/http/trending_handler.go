package http

import (
	"errors"
	"net/http"
	"strconv"

	"trending-board/domain/apperrors"
	"trending-board/domain/dto"
	"trending-board/usecase"

	"github.com/gin-gonic/gin"
)

// ITrendingHandler defines the trending dashboard HTTP handlers.
type ITrendingHandler interface {
	GetTrendingVideos(ctx *gin.Context)
	GetCategories(ctx *gin.Context)
	GetRegions(ctx *gin.Context)
	Refresh(ctx *gin.Context)
}

type TrendingHandler struct {
	trendingUseCase usecase.ITrendingUseCase
}

func NewTrendingHandler(trendingUseCase usecase.ITrendingUseCase) ITrendingHandler {
	return &TrendingHandler{trendingUseCase: trendingUseCase}
}

// GetTrendingVideos handles GET /api/trending/videos
func (h *TrendingHandler) GetTrendingVideos(ctx *gin.Context) {
	req := &dto.TrendingListRequest{
		RegionCode: ctx.Query("region"),
		CategoryID: ctx.Query("category"),
	}
	// Support both snake_case and camelCase query params from frontend
	maxResultsRaw := ctx.Query("max_results")
	if maxResultsRaw == "" {
		maxResultsRaw = ctx.Query("maxResults")
	}
	if maxResultsRaw != "" {
		if val, err := strconv.ParseInt(maxResultsRaw, 10, 64); err == nil {
			req.MaxResults = val
		}
	}

	response, err := h.trendingUseCase.ListTrending(ctx.Request.Context(), req)
	if err != nil {
		writeTrendingError(ctx, err)
		return
	}

	if response.Cached {
		ctx.Header("X-Cache", "HIT")
	} else {
		ctx.Header("X-Cache", "MISS")
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": response})
}

// GetCategories handles GET /api/trending/categories
func (h *TrendingHandler) GetCategories(ctx *gin.Context) {
	response, err := h.trendingUseCase.ListCategories(ctx.Request.Context(), ctx.Query("region"))
	if err != nil {
		// Lookup failures degrade inside the use case; anything surfacing
		// here is unexpected.
		writeTrendingError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": response})
}

// GetRegions handles GET /api/trending/regions
func (h *TrendingHandler) GetRegions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": h.trendingUseCase.ListRegions()})
}

// Refresh handles POST /api/trending/refresh
func (h *TrendingHandler) Refresh(ctx *gin.Context) {
	if err := h.trendingUseCase.Refresh(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   true,
			"message": "Failed to clear cache: " + err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Cache cleared; next fetch returns fresh data"})
}

// writeTrendingError converts the typed taxonomy into user-facing guidance.
// None of these stop the process; they end the current render cycle only.
func writeTrendingError(ctx *gin.Context, err error) {
	var confErr *apperrors.ConfigurationError
	var quotaErr *apperrors.QuotaError
	var paramErr *apperrors.ParameterError
	var transportErr *apperrors.TransportError

	switch {
	case errors.As(err, &confErr):
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   true,
			"kind":    "configuration",
			"message": confErr.Reason,
		})
	case errors.As(err, &quotaErr):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   true,
			"kind":    "quota",
			"message": "API quota or permission limit reached. Try again later.",
		})
	case errors.As(err, &paramErr):
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   true,
			"kind":    "parameter",
			"param":   paramErr.Param,
			"message": "Invalid value for " + paramErr.Param + ". Check the input and retry.",
		})
	case errors.As(err, &transportErr):
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error":   true,
			"kind":    "network",
			"message": "Network problem reaching the video platform. Check connectivity and retry.",
		})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   true,
			"kind":    "unknown",
			"message": err.Error(),
		})
	}
}
