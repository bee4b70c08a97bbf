package reviews

import (
	"errors"
	"net/http"

	"campora/internal/reservations"
	"campora/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Controller handles review HTTP requests
type Controller struct {
	service Service
}

// NewController creates a new review controller
func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// Create handles POST /listings/:id/reviews
func (ctrl *Controller) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, response.BindingErrors(err))
		return
	}

	result, err := ctrl.service.Create(c.Request.Context(), c.GetString("user_id"), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Reservation not found", nil, nil)
		case errors.Is(err, reservations.ErrNotOwner):
			response.RespondJSON(c, "error", http.StatusForbidden, "Reservation belongs to another user", nil, nil)
		case errors.Is(err, ErrReservationNotCompleted):
			response.RespondJSON(c, "error", http.StatusConflict, "Only completed reservations can be reviewed", nil, nil)
		case errors.Is(err, ErrWrongListing):
			response.RespondJSON(c, "error", http.StatusBadRequest, "Reservation is for a different listing", nil, nil)
		case errors.Is(err, ErrAlreadyReviewed):
			response.RespondJSON(c, "error", http.StatusConflict, "Reservation has already been reviewed", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create review", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Review created successfully", result, nil)
}

// ListByListing handles GET /listings/:id/reviews
func (ctrl *Controller) ListByListing(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, response.BindingErrors(err))
		return
	}

	result, err := ctrl.service.ListByListing(c.Request.Context(), c.Param("id"), &query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch reviews", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reviews fetched successfully", result, nil)
}

// AdminDelete handles DELETE /admin/reviews/:id
func (ctrl *Controller) AdminDelete(c *gin.Context) {
	if err := ctrl.service.AdminDelete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrReviewNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Review not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to delete review", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Review deleted successfully", nil, nil)
}
