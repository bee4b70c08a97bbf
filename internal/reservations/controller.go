package reservations

import (
	"errors"
	"net/http"

	"campora/internal/listings"
	"campora/internal/shared/utils/response"
	"campora/internal/users"

	"github.com/gin-gonic/gin"
)

// Controller handles reservation HTTP requests
type Controller struct {
	service Service
}

// NewController creates a new reservation controller
func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// Quote handles POST /reservations/quote
func (ctrl *Controller) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, response.BindingErrors(err))
		return
	}

	result, err := ctrl.service.Quote(c.Request.Context(), &req)
	if err != nil {
		ctrl.respondBookingError(c, err, "Failed to compute quote")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Quote computed successfully", result, nil)
}

// Create handles POST /reservations
func (ctrl *Controller) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, response.BindingErrors(err))
		return
	}

	result, err := ctrl.service.Create(c.Request.Context(), c.GetString("user_id"), &req)
	if err != nil {
		ctrl.respondBookingError(c, err, "Failed to create reservation")
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Reservation created successfully", result, nil)
}

// GetByID handles GET /reservations/:id
func (ctrl *Controller) GetByID(c *gin.Context) {
	isAdmin := c.GetString("user_role") == string(users.RoleAdmin)

	result, err := ctrl.service.GetByID(c.Request.Context(), c.GetString("user_id"), isAdmin, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Reservation not found", nil, nil)
		case errors.Is(err, ErrNotOwner):
			response.RespondJSON(c, "error", http.StatusForbidden, "Reservation belongs to another user", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch reservation", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reservation fetched successfully", result, nil)
}

// ListMine handles GET /users/reservations
func (ctrl *Controller) ListMine(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, response.BindingErrors(err))
		return
	}

	result, err := ctrl.service.ListByUser(c.Request.Context(), c.GetString("user_id"), &query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch reservations", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reservations fetched successfully", result, nil)
}

// Cancel handles POST /reservations/:id/cancel
func (ctrl *Controller) Cancel(c *gin.Context) {
	result, err := ctrl.service.Cancel(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Reservation not found", nil, nil)
		case errors.Is(err, ErrNotOwner):
			response.RespondJSON(c, "error", http.StatusForbidden, "Reservation belongs to another user", nil, nil)
		case errors.Is(err, ErrInvalidTransition):
			response.RespondJSON(c, "error", http.StatusConflict, "Reservation can no longer be cancelled", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to cancel reservation", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reservation cancelled successfully", result, nil)
}

// AdminList handles GET /admin/reservations
func (ctrl *Controller) AdminList(c *gin.Context) {
	var query AdminListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, response.BindingErrors(err))
		return
	}

	result, err := ctrl.service.AdminList(c.Request.Context(), &query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch reservations", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reservations fetched successfully", result, nil)
}

// Approve handles POST /admin/reservations/:id/approve
func (ctrl *Controller) Approve(c *gin.Context) {
	result, err := ctrl.service.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Reservation not found", nil, nil)
		case errors.Is(err, ErrInvalidTransition):
			response.RespondJSON(c, "error", http.StatusConflict, "Only pending reservations can be approved", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to approve reservation", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reservation approved successfully", result, nil)
}

// Reject handles POST /admin/reservations/:id/reject
func (ctrl *Controller) Reject(c *gin.Context) {
	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Rejection reason is required", nil, err.Error())
		return
	}

	result, err := ctrl.service.Reject(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Reservation not found", nil, nil)
		case errors.Is(err, ErrInvalidTransition):
			response.RespondJSON(c, "error", http.StatusConflict, "Only pending reservations can be rejected", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to reject reservation", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reservation rejected successfully", result, nil)
}

// respondBookingError maps quote/create failures to HTTP responses
func (ctrl *Controller) respondBookingError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, listings.ErrListingNotFound):
		response.RespondJSON(c, "error", http.StatusNotFound, "Listing not found", nil, nil)
	case errors.Is(err, ErrListingNotBookable):
		response.RespondJSON(c, "error", http.StatusConflict, "Listing is not open for reservations", nil, nil)
	case errors.Is(err, ErrCapacityExceeded):
		response.RespondJSON(c, "error", http.StatusConflict, "Not enough capacity for the requested dates", nil, nil)
	case errors.Is(err, ErrInvalidDateRange):
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid date range", nil, nil)
	case errors.Is(err, ErrStayTooLong):
		response.RespondJSON(c, "error", http.StatusBadRequest, "Stay exceeds the maximum allowed length", nil, nil)
	case errors.Is(err, ErrQuantityTooLarge):
		response.RespondJSON(c, "error", http.StatusBadRequest, "Quantity exceeds the maximum allowed", nil, nil)
	default:
		response.RespondJSON(c, "error", http.StatusInternalServerError, fallback, nil, err.Error())
	}
}
