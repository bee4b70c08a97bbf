package cart

import (
	"errors"
	"net/http"

	"campora/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Controller handles cart HTTP requests
type Controller struct {
	service Service
}

// NewController creates a new cart controller
func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetCart handles GET /cart
func (ctrl *Controller) GetCart(c *gin.Context) {
	result, err := ctrl.service.GetCart(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch cart", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Cart fetched successfully", result, nil)
}

// AddItem handles POST /cart/items
func (ctrl *Controller) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, response.BindingErrors(err))
		return
	}

	result, err := ctrl.service.AddItem(c.Request.Context(), c.GetString("user_id"), &req)
	if err != nil {
		if errors.Is(err, ErrCartFull) {
			response.RespondJSON(c, "error", http.StatusConflict, "Cart item limit reached", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusBadRequest, "Failed to add item to cart", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Item added to cart", result, nil)
}

// RemoveItem handles DELETE /cart/items/:id
func (ctrl *Controller) RemoveItem(c *gin.Context) {
	result, err := ctrl.service.RemoveItem(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Cart item not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to remove item", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Item removed from cart", result, nil)
}

// ClearCart handles DELETE /cart
func (ctrl *Controller) ClearCart(c *gin.Context) {
	if err := ctrl.service.ClearCart(c.Request.Context(), c.GetString("user_id")); err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to clear cart", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Cart cleared successfully", nil, nil)
}

// Checkout handles POST /cart/checkout
func (ctrl *Controller) Checkout(c *gin.Context) {
	result, err := ctrl.service.Checkout(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, ErrCartEmpty) {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Cart is empty", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Checkout failed", nil, err.Error())
		return
	}

	status := http.StatusCreated
	message := "Checkout completed successfully"
	if result.Failed > 0 && result.Created == 0 {
		status = http.StatusConflict
		message = "No reservations could be created"
	} else if result.Failed > 0 {
		status = http.StatusMultiStatus
		message = "Checkout completed with some failures"
	}

	response.RespondJSON(c, "success", status, message, result, nil)
}
