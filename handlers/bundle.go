// File: seatwise/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Settings endpoints
	InitializeSettingsHandler gin.HandlerFunc
	UpdateSettingsHandler     gin.HandlerFunc
	GetSettingsHandler        gin.HandlerFunc

	// Calendar endpoints
	InitializeDayHandler       gin.HandlerFunc
	AddBookingHandler          gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	GetBookingsHandler         gin.HandlerFunc
	GetAvailabilityHandler     gin.HandlerFunc

	// Table optimizer endpoints
	RegisterTableHandler      gin.HandlerFunc
	GetTableIDsHandler        gin.HandlerFunc
	GetRecommendationsHandler gin.HandlerFunc
}
