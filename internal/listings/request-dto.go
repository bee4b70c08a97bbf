package listings

// CreateListingRequest is the admin payload for creating a listing
type CreateListingRequest struct {
	Kind        string   `json:"kind" binding:"required,oneof=CAMPSITE ACTIVITY EQUIPMENT"`
	Name        string   `json:"name" binding:"required,min=3,max=120"`
	Description string   `json:"description" binding:"omitempty,max=5000"`
	Location    string   `json:"location" binding:"required,min=2,max=120"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	Capacity    int      `json:"capacity" binding:"required,gt=0"`
	UnitPrice   float64  `json:"unit_price" binding:"required,gt=0"`
	AmenityIDs  []string `json:"amenity_ids" binding:"omitempty,dive,uuid"`
}

// UpdateListingRequest is the admin payload for updating a listing.
// Kind is immutable once created.
type UpdateListingRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=3,max=120"`
	Description *string   `json:"description" binding:"omitempty,max=5000"`
	Location    *string   `json:"location" binding:"omitempty,min=2,max=120"`
	Latitude    *float64  `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude   *float64  `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	Capacity    *int      `json:"capacity" binding:"omitempty,gt=0"`
	UnitPrice   *float64  `json:"unit_price" binding:"omitempty,gt=0"`
	AmenityIDs  *[]string `json:"amenity_ids" binding:"omitempty,dive,uuid"`
}

// UpdateStatusRequest is the admin payload for changing a listing status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=DRAFT PUBLISHED ARCHIVED"`
}

// BrowseQuery captures public catalog browse filters
type BrowseQuery struct {
	Page     int     `form:"page,default=1" binding:"omitempty,gt=0"`
	Limit    int     `form:"limit,default=20" binding:"omitempty,gt=0,lte=100"`
	Search   string  `form:"search" binding:"omitempty,max=120"`
	Location string  `form:"location" binding:"omitempty,max=120"`
	MinPrice float64 `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice float64 `form:"max_price" binding:"omitempty,gte=0"`
	Amenity  string  `form:"amenity" binding:"omitempty,max=60"` // amenity slug
	Sort     string  `form:"sort,default=created_at_desc" binding:"omitempty,oneof=created_at_desc created_at_asc price_asc price_desc name_asc"`
}

// AvailabilityQuery captures the availability date window
type AvailabilityQuery struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// AdminListQuery captures admin catalog filters
type AdminListQuery struct {
	Page   int    `form:"page,default=1" binding:"omitempty,gt=0"`
	Limit  int    `form:"limit,default=20" binding:"omitempty,gt=0,lte=100"`
	Kind   string `form:"kind" binding:"omitempty,oneof=CAMPSITE ACTIVITY EQUIPMENT"`
	Status string `form:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	Search string `form:"search" binding:"omitempty,max=120"`
}
