package services

import (
	"context"
	"math"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"cinecircle-backend/models"
)

const recentFeedSize = 5

// ReportService derives aggregate statistics from a user's review history.
// All derivations are pure and recomputed per request.
type ReportService struct {
	reviews *ReviewService
	search  *SearchService
	catalog []models.Movie
}

func NewReportService(reviews *ReviewService, search *SearchService, catalog []models.Movie) *ReportService {
	return &ReportService{
		reviews: reviews,
		search:  search,
		catalog: catalog,
	}
}

// BuildUserReport assembles the full report for one user. The movie set in
// scope is the built-in catalog plus the user's latest search results.
func (s *ReportService) BuildUserReport(ctx context.Context, user models.AuthUser) (models.ReportResponse, error) {
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return models.ReportResponse{}, err
	}

	reviews, err := s.reviews.ListForUser(ctx, userID)
	if err != nil {
		return models.ReportResponse{}, err
	}

	movies := append([]models.Movie{}, s.catalog...)
	movies = append(movies, s.search.Results(user.ID)...)

	return BuildReport(user, reviews, movies, time.Now().UTC()), nil
}

// BuildReport composes every aggregate over the given review scope.
func BuildReport(user models.AuthUser, reviews []models.Review, movies []models.Movie, now time.Time) models.ReportResponse {
	genreFreq := GenreFrequency(reviews, movies)
	return models.ReportResponse{
		TotalReviews:    len(reviews),
		AverageRating:   AverageRating(reviews),
		RatingHistogram: RatingHistogram(reviews),
		GenresExplored:  len(genreFreq),
		DaysActive:      DaysActive(user.JoinDate, now),
		RecentReviews:   RecentReviews(reviews, recentFeedSize),
		GenreFrequency:  genreFreq,
	}
}

// AverageRating is the arithmetic mean of the ratings, 0 for an empty list.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// RatingHistogram counts reviews per star value 1..5. The bucket counts
// always sum to the review count.
func RatingHistogram(reviews []models.Review) []models.RatingBucket {
	buckets := make([]models.RatingBucket, 5)
	for i := range buckets {
		buckets[i].Rating = i + 1
	}
	for _, r := range reviews {
		if r.Rating >= 1 && r.Rating <= 5 {
			buckets[r.Rating-1].Count++
		}
	}
	return buckets
}

// GenreFrequency counts movies-with-reviews per genre string. A movie
// contributes once no matter how many reviews it has.
func GenreFrequency(reviews []models.Review, movies []models.Movie) map[string]int {
	reviewed := make(map[int64]bool, len(reviews))
	for _, r := range reviews {
		reviewed[r.MovieID] = true
	}

	freq := map[string]int{}
	seen := map[int64]bool{}
	for _, m := range movies {
		if !reviewed[m.ID] || seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		freq[m.Genre]++
	}
	return freq
}

// RecentReviews returns the newest reviews, capped at limit.
func RecentReviews(reviews []models.Review, limit int) []models.Review {
	out := make([]models.Review, len(reviews))
	copy(out, reviews)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DaysActive is the elapsed time since joining, in whole days, rounded up.
// Joining right now yields 0.
func DaysActive(joinDate, now time.Time) int {
	elapsed := now.Sub(joinDate)
	if elapsed <= 0 {
		return 0
	}
	return int(math.Ceil(elapsed.Hours() / 24))
}
