package handlers

import (
	"net/http"
	"strconv"
	"time"

	"seatwise/models"
	"seatwise/services/calendar"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler exposes day ledgers and the availability query.
type CalendarHandler struct {
	Service calendar.CalendarService
	Logger  *zap.Logger
}

func NewCalendarHandler(svc calendar.CalendarService, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{Service: svc, Logger: logger}
}

// InitializeDayHandler handles POST /api/sites/:siteId/days/:date.
func (h *CalendarHandler) InitializeDayHandler(c *gin.Context) {
	siteID := c.Param("siteId")
	date := c.Param("date")
	if err := h.Service.Initialize(c.Request.Context(), siteID, date); err != nil {
		h.Logger.Error("Failed to initialize calendar day",
			zap.String("siteId", siteID), zap.String("date", date), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"siteId": siteID, "date": date})
}

// AddBookingHandler handles POST /api/sites/:siteId/days/:date/bookings.
// When the caller authenticated with a channel token and supplied no
// source, the token's channel is used.
func (h *CalendarHandler) AddBookingHandler(c *gin.Context) {
	siteID := c.Param("siteId")
	date := c.Param("date")
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if booking.Source == "" {
		if channel, ok := c.Get("channel"); ok {
			if ch, ok := channel.(string); ok {
				booking.Source = ch
			}
		}
	}

	recorded, err := h.Service.AddBooking(c.Request.Context(), siteID, date, booking)
	if err != nil {
		h.Logger.Warn("Booking rejected",
			zap.String("siteId", siteID), zap.String("date", date), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recorded)
}

// UpdateBookingStatusHandler handles
// PATCH /api/sites/:siteId/days/:date/bookings/:bookingId/status.
func (h *CalendarHandler) UpdateBookingStatusHandler(c *gin.Context) {
	siteID := c.Param("siteId")
	date := c.Param("date")
	bookingID := c.Param("bookingId")
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.UpdateBookingStatus(c.Request.Context(), siteID, date, bookingID, input.Status); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookingId": bookingID, "status": input.Status})
}

// GetBookingsHandler handles GET /api/sites/:siteId/days/:date/bookings.
func (h *CalendarHandler) GetBookingsHandler(c *gin.Context) {
	siteID := c.Param("siteId")
	date := c.Param("date")
	bookings, err := h.Service.GetBookings(c.Request.Context(), siteID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetAvailabilityHandler handles
// GET /api/sites/:siteId/days/:date/availability?partySize=&source=&at=.
// The at parameter (RFC 3339) pins the observation time for the lead-time
// rule; it defaults to now.
func (h *CalendarHandler) GetAvailabilityHandler(c *gin.Context) {
	siteID := c.Param("siteId")
	date := c.Param("date")

	partySize, err := strconv.Atoi(c.DefaultQuery("partySize", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "partySize must be an integer"})
		return
	}
	req := models.AvailabilityRequest{
		PartySize: partySize,
		Source:    c.Query("source"),
	}
	if at := c.Query("at"); at != "" {
		parsed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "at must be an RFC 3339 timestamp"})
			return
		}
		req.CurrentTime = parsed
	}

	slots, err := h.Service.GetAvailability(c.Request.Context(), siteID, date, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}
