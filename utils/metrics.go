package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Engine operation counters, served on /metrics.
var (
	AvailabilityQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "seatwise_availability_queries_total",
		Help: "Number of availability computations served.",
	})
	BookingsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "seatwise_bookings_recorded_total",
		Help: "Number of bookings accepted onto calendar days.",
	})
	RecommendationRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "seatwise_table_recommendation_requests_total",
		Help: "Number of table recommendation searches run.",
	})
)
