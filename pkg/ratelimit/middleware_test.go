package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRateLimitType(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected RateLimitType
	}{
		{"ping", "/ping", RateLimitTypeHealth},
		{"health", "/health", RateLimitTypeHealth},
		{"admin listings", "/api/v1/admin/listings", RateLimitTypeAdmin},
		{"admin approve wins over reservation", "/api/v1/admin/reservations/:id/approve", RateLimitTypeAdmin},
		{"analytics", "/api/v1/admin/analytics/dashboard", RateLimitTypeAdmin},
		{"auth login", "/api/v1/auth/login", RateLimitTypeAuth},
		{"create reservation", "/api/v1/reservations", RateLimitTypeReservationCritical},
		{"cancel reservation", "/api/v1/reservations/:id/cancel", RateLimitTypeReservationCritical},
		{"cart checkout", "/api/v1/cart/checkout", RateLimitTypeReservationCritical},
		{"reservation quote", "/api/v1/reservations/quote", RateLimitTypeReservation},
		{"cart items", "/api/v1/cart/items", RateLimitTypeReservation},
		{"user reservations listing", "/api/v1/users/reservations", RateLimitTypeReservation},
		{"browse campsites", "/api/v1/campsites", RateLimitTypePublic},
		{"browse activities", "/api/v1/activities/:id", RateLimitTypePublic},
		{"availability", "/api/v1/listings/:id/availability", RateLimitTypePublic},
		{"reviews", "/api/v1/listings/:id/reviews", RateLimitTypePublic},
		{"amenities", "/api/v1/amenities", RateLimitTypePublic},
		{"unknown", "/api/v1/something-else", RateLimitTypeDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getRateLimitType(tt.path))
		})
	}
}
