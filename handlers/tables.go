package handlers

import (
	"net/http"

	"seatwise/models"
	"seatwise/services/optimizer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TableHandler exposes the table registry and the recommendation search.
type TableHandler struct {
	Service optimizer.OptimizerService
	Logger  *zap.Logger
}

func NewTableHandler(svc optimizer.OptimizerService, logger *zap.Logger) *TableHandler {
	return &TableHandler{Service: svc, Logger: logger}
}

// RegisterTableHandler handles POST /api/sites/:siteId/tables. The site's
// optimizer is initialized on first use; re-registering an ID replaces the
// table's attributes.
func (h *TableHandler) RegisterTableHandler(c *gin.Context) {
	siteID := c.Param("siteId")
	var table models.Table
	if err := c.ShouldBindJSON(&table); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.Initialize(ctx, siteID); err != nil {
		h.Logger.Error("Failed to initialize optimizer", zap.String("siteId", siteID), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	if err := h.Service.RegisterTable(ctx, siteID, table); err != nil {
		h.Logger.Warn("Table registration rejected",
			zap.String("siteId", siteID), zap.String("tableId", table.TableID), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tableId": table.TableID})
}

// GetTableIDsHandler handles GET /api/sites/:siteId/tables.
func (h *TableHandler) GetTableIDsHandler(c *gin.Context) {
	siteID := c.Param("siteId")
	ids, err := h.Service.GetRegisteredTableIDs(c.Request.Context(), siteID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tableIds": ids})
}

// GetRecommendationsHandler handles
// POST /api/sites/:siteId/tables/recommendations. Success=false with an
// empty list is the normal "nothing fits" answer.
func (h *TableHandler) GetRecommendationsHandler(c *gin.Context) {
	siteID := c.Param("siteId")
	var req models.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	result, err := h.Service.GetRecommendations(c.Request.Context(), siteID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
