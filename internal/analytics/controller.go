package analytics

import (
	"net/http"
	"strconv"

	"campora/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Controller handles analytics HTTP requests
type Controller struct {
	service Service
}

// NewController creates a new analytics controller
func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// Dashboard handles GET /admin/analytics/dashboard
func (ctrl *Controller) Dashboard(c *gin.Context) {
	result, err := ctrl.service.Dashboard(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to load dashboard", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Dashboard loaded successfully", result, nil)
}

// Revenue handles GET /admin/analytics/revenue?months=
func (ctrl *Controller) Revenue(c *gin.Context) {
	months := boundedIntQuery(c, "months", 6, 1, 36)

	result, err := ctrl.service.Revenue(c.Request.Context(), months)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to load revenue", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Revenue loaded successfully", result, nil)
}

// Occupancy handles GET /admin/analytics/occupancy
func (ctrl *Controller) Occupancy(c *gin.Context) {
	result, err := ctrl.service.Occupancy(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to load occupancy", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Occupancy loaded successfully", result, nil)
}

// DailyReservations handles GET /admin/analytics/reservations/daily?days=
func (ctrl *Controller) DailyReservations(c *gin.Context) {
	days := boundedIntQuery(c, "days", 14, 1, 90)

	result, err := ctrl.service.DailyReservations(c.Request.Context(), days)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to load daily stats", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Daily stats loaded successfully", result, nil)
}

func boundedIntQuery(c *gin.Context, name string, fallback, min, max int) int {
	value, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil || value < min {
		return fallback
	}
	if value > max {
		return max
	}
	return value
}
