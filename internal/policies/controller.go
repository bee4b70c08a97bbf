package policies

import (
	"net/http"

	"campora/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Controller handles cancellation policy HTTP requests
type Controller struct {
	service Service
}

// NewController creates a new policy controller
func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetPolicy handles GET /listings/:id/cancellation-policy
func (ctrl *Controller) GetPolicy(c *gin.Context) {
	result, err := ctrl.service.GetPolicy(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch policy", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Cancellation policy fetched successfully", result, nil)
}

// ListRefunds handles GET /admin/reservations/:id/refunds
func (ctrl *Controller) ListRefunds(c *gin.Context) {
	result, err := ctrl.service.GetRefunds(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch refunds", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Refunds fetched successfully", result, nil)
}

// UpsertPolicy handles PUT /admin/listings/:id/cancellation-policy
func (ctrl *Controller) UpsertPolicy(c *gin.Context) {
	var req UpsertPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, response.BindingErrors(err))
		return
	}

	result, err := ctrl.service.UpsertPolicy(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to save policy", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Cancellation policy saved successfully", result, nil)
}
