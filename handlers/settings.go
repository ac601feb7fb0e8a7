package handlers

import (
	"net/http"

	"seatwise/models"
	"seatwise/services/settings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsHandler exposes the per-site reservation rules.
type SettingsHandler struct {
	Service settings.SettingsService
	Logger  *zap.Logger
}

func NewSettingsHandler(svc settings.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{Service: svc, Logger: logger}
}

// InitializeSettingsHandler handles POST /api/sites/:siteId/settings.
func (h *SettingsHandler) InitializeSettingsHandler(c *gin.Context) {
	siteID := c.Param("siteId")
	record, err := h.Service.Initialize(c.Request.Context(), siteID)
	if err != nil {
		h.Logger.Error("Failed to initialize settings", zap.String("siteId", siteID), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// UpdateSettingsHandler handles PATCH /api/sites/:siteId/settings. Only the
// fields present in the body change.
func (h *SettingsHandler) UpdateSettingsHandler(c *gin.Context) {
	siteID := c.Param("siteId")
	var patch models.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	record, err := h.Service.Update(c.Request.Context(), siteID, patch)
	if err != nil {
		h.Logger.Warn("Settings update rejected", zap.String("siteId", siteID), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetSettingsHandler handles GET /api/sites/:siteId/settings.
func (h *SettingsHandler) GetSettingsHandler(c *gin.Context) {
	siteID := c.Param("siteId")
	record, err := h.Service.Get(c.Request.Context(), siteID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
