package amenities

import (
	"errors"
	"net/http"

	"campora/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Controller handles amenity HTTP requests
type Controller struct {
	service Service
}

// NewController creates a new amenity controller
func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// List handles GET /amenities
func (ctrl *Controller) List(c *gin.Context) {
	result, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch amenities", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Amenities fetched successfully", result, nil)
}

// GetBySlug handles GET /amenities/:slug
func (ctrl *Controller) GetBySlug(c *gin.Context) {
	result, err := ctrl.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrAmenityNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Amenity not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch amenity", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Amenity fetched successfully", result, nil)
}

// Create handles POST /admin/amenities
func (ctrl *Controller) Create(c *gin.Context) {
	var req CreateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, response.BindingErrors(err))
		return
	}

	result, err := ctrl.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrSlugAlreadyExists) {
			response.RespondJSON(c, "error", http.StatusConflict, "Amenity with this name already exists", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create amenity", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Amenity created successfully", result, nil)
}

// Update handles PUT /admin/amenities/:id
func (ctrl *Controller) Update(c *gin.Context) {
	var req UpdateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, response.BindingErrors(err))
		return
	}

	result, err := ctrl.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrAmenityNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Amenity not found", nil, nil)
		case errors.Is(err, ErrSlugAlreadyExists):
			response.RespondJSON(c, "error", http.StatusConflict, "Amenity with this name already exists", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to update amenity", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Amenity updated successfully", result, nil)
}

// Delete handles DELETE /admin/amenities/:id
func (ctrl *Controller) Delete(c *gin.Context) {
	if err := ctrl.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrAmenityNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Amenity not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to delete amenity", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Amenity deleted successfully", nil, nil)
}
