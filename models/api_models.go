package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

type SubmitReviewRequest struct {
	MovieID int64  `json:"movie_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

type SearchResponse struct {
	Query   string  `json:"query"`
	Results []Movie `json:"results"`
}

// RatingBucket is one bar of the 1..5 star histogram.
type RatingBucket struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// ReportResponse carries the aggregate statistics for one user's review
// history.
type ReportResponse struct {
	TotalReviews    int            `json:"total_reviews"`
	AverageRating   float64        `json:"average_rating"`
	RatingHistogram []RatingBucket `json:"rating_histogram"`
	GenresExplored  int            `json:"genres_explored"`
	DaysActive      int            `json:"days_active"`
	RecentReviews   []Review       `json:"recent_reviews"`
	GenreFrequency  map[string]int `json:"genre_frequency"`
}
