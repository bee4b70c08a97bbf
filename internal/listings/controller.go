package listings

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"campora/internal/shared/config"
	"campora/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Controller handles listing HTTP requests
type Controller struct {
	service Service
	config  *config.Config
}

// NewController creates a new listing controller
func NewController(service Service, cfg *config.Config) *Controller {
	return &Controller{service: service, config: cfg}
}

// Browse handles GET /campsites, /activities, /equipment
func (ctrl *Controller) Browse(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query BrowseQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, response.BindingErrors(err))
			return
		}

		result, err := ctrl.service.Browse(c.Request.Context(), kind, &query)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch listings", nil, err.Error())
			return
		}

		response.RespondJSON(c, "success", http.StatusOK, "Listings fetched successfully", result, nil)
	}
}

// GetDetail handles GET /campsites/:id (and activity/equipment variants)
func (ctrl *Controller) GetDetail(c *gin.Context) {
	result, err := ctrl.service.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrListingNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Listing not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch listing", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Listing fetched successfully", result, nil)
}

// GetAvailability handles GET /listings/:id/availability
func (ctrl *Controller) GetAvailability(c *gin.Context) {
	var query AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, response.BindingErrors(err))
		return
	}

	result, err := ctrl.service.GetAvailability(c.Request.Context(), c.Param("id"), &query)
	if err != nil {
		switch {
		case errors.Is(err, ErrListingNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Listing not found", nil, nil)
		case errors.Is(err, ErrInvalidDateRange):
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid date range", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch availability", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Availability fetched successfully", result, nil)
}

// Create handles POST /admin/listings
func (ctrl *Controller) Create(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, response.BindingErrors(err))
		return
	}

	result, err := ctrl.service.Create(c.Request.Context(), c.GetString("user_id"), &req)
	if err != nil {
		if errors.Is(err, ErrUnknownAmenity) {
			response.RespondJSON(c, "error", http.StatusBadRequest, "One or more amenities do not exist", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create listing", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Listing created successfully", result, nil)
}

// Update handles PUT /admin/listings/:id
func (ctrl *Controller) Update(c *gin.Context) {
	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, response.BindingErrors(err))
		return
	}

	result, err := ctrl.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrListingNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Listing not found", nil, nil)
		case errors.Is(err, ErrUnknownAmenity):
			response.RespondJSON(c, "error", http.StatusBadRequest, "One or more amenities do not exist", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to update listing", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Listing updated successfully", result, nil)
}

// UpdateStatus handles PATCH /admin/listings/:id/status
func (ctrl *Controller) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, response.BindingErrors(err))
		return
	}

	result, err := ctrl.service.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrListingNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Listing not found", nil, nil)
		case errors.Is(err, ErrInvalidStatusChange):
			response.RespondJSON(c, "error", http.StatusConflict, "Invalid status transition", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to update status", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Listing status updated successfully", result, nil)
}

// Archive handles DELETE /admin/listings/:id
func (ctrl *Controller) Archive(c *gin.Context) {
	if err := ctrl.service.Archive(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, ErrListingNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Listing not found", nil, nil)
		case errors.Is(err, ErrInvalidStatusChange):
			response.RespondJSON(c, "error", http.StatusConflict, "Listing is already archived", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to archive listing", nil, err.Error())
		}
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Listing archived successfully", nil, nil)
}

// AdminList handles GET /admin/listings
func (ctrl *Controller) AdminList(c *gin.Context) {
	var query AdminListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, response.BindingErrors(err))
		return
	}

	result, err := ctrl.service.AdminList(c.Request.Context(), &query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch listings", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Listings fetched successfully", result, nil)
}

// AdminGet handles GET /admin/listings/:id
func (ctrl *Controller) AdminGet(c *gin.Context) {
	result, err := ctrl.service.AdminGet(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrListingNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Listing not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch listing", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Listing fetched successfully", result, nil)
}

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadImage handles POST /admin/listings/:id/images
func (ctrl *Controller) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Image file is required", nil, err.Error())
		return
	}

	if file.Size > ctrl.config.Upload.MaxSize {
		response.RespondJSON(c, "error", http.StatusBadRequest,
			fmt.Sprintf("Image exceeds maximum size of %d bytes", ctrl.config.Upload.MaxSize), nil, nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Unsupported image format", nil, nil)
		return
	}

	filename := uuid.New().String() + ext
	dst := filepath.Join(ctrl.config.Upload.Path, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to store image", nil, err.Error())
		return
	}

	position, _ := strconv.Atoi(c.PostForm("position"))
	result, err := ctrl.service.AddImage(c.Request.Context(), c.Param("id"), "/uploads/"+filename, position)
	if err != nil {
		if errors.Is(err, ErrListingNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Listing not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to save image", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Image uploaded successfully", result, nil)
}

// DeleteImage handles DELETE /admin/listings/:id/images/:imageId
func (ctrl *Controller) DeleteImage(c *gin.Context) {
	err := ctrl.service.DeleteImage(c.Request.Context(), c.Param("id"), c.Param("imageId"))
	if err != nil {
		if errors.Is(err, ErrListingNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Image not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to delete image", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Image deleted successfully", nil, nil)
}
