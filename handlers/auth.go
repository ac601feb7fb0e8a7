package handlers

import (
	"net/http"
	"time"

	"seatwise/utils"

	"github.com/gin-gonic/gin"
)

// MintChannelTokenHandler handles POST /api/auth/channel-token. It issues
// a signed token for a booking channel so integrations can reach the
// mutating endpoints. Registered in development only; production
// deployments mint tokens out of band.
func MintChannelTokenHandler(c *gin.Context) {
	var input struct {
		Channel string `json:"channel"`
		TTLMins int    `json:"ttlMinutes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Channel == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "channel is required"})
		return
	}
	ttl := time.Duration(input.TTLMins) * time.Minute
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	token, err := utils.GenerateChannelToken(input.Channel, ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "channel": input.Channel})
}
