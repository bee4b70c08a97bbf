package amenities

// CreateAmenityRequest is the admin payload for creating an amenity
type CreateAmenityRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=60"`
	Description string `json:"description" binding:"omitempty,max=255"`
	Icon        string `json:"icon" binding:"omitempty,max=60"`
}

// UpdateAmenityRequest is the admin payload for updating an amenity
type UpdateAmenityRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=60"`
	Description *string `json:"description" binding:"omitempty,max=255"`
	Icon        *string `json:"icon" binding:"omitempty,max=60"`
}
