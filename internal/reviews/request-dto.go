package reviews

// CreateReviewRequest is the payload for leaving a review
type CreateReviewRequest struct {
	ReservationID string `json:"reservation_id" binding:"required,uuid"`
	Rating        int    `json:"rating" binding:"required,gte=1,lte=5"`
	Title         string `json:"title" binding:"omitempty,max=120"`
	Comment       string `json:"comment" binding:"omitempty,max=5000"`
}

// ListQuery captures review list pagination
type ListQuery struct {
	Page  int `form:"page,default=1" binding:"omitempty,gt=0"`
	Limit int `form:"limit,default=20" binding:"omitempty,gt=0,lte=100"`
}

// ReviewerView is the public shape of a review author
type ReviewerView struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ReviewResponse is a review with its author attached
type ReviewResponse struct {
	Review
	Reviewer *ReviewerView `json:"reviewer,omitempty"`
}

// PaginatedReviewsResponse wraps a review page with the rating aggregate
type PaginatedReviewsResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"average_rating"`
	Total         int64            `json:"total"`
	Page          int              `json:"page"`
	Limit         int              `json:"limit"`
	TotalPages    int              `json:"total_pages"`
}
