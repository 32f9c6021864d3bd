package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"cinecircle-backend/models"
)

// ReviewStore abstracts the two review backends: the Mongo collection and the
// process-lifetime memory store.
type ReviewStore interface {
	Insert(ctx context.Context, review models.Review) (models.Review, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error)
	FindByMovie(ctx context.Context, userID primitive.ObjectID, movieID int64) ([]models.Review, error)
	Clear(ctx context.Context, userID primitive.ObjectID) error
}

type ReviewService struct {
	store ReviewStore
	log   zerolog.Logger
}

func NewReviewService(store ReviewStore, log zerolog.Logger) *ReviewService {
	return &ReviewService{store: store, log: log}
}

// AddReview persists a review for the signed-in user. The user's display name
// is denormalized into the row at write time and never re-resolved.
func (s *ReviewService) AddReview(ctx context.Context, user models.AuthUser, req *models.SubmitReviewRequest) (models.Review, error) {
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return models.Review{}, fmt.Errorf("invalid user id: %w", err)
	}

	review := models.Review{
		MovieID:  req.MovieID,
		UserID:   userID,
		UserName: user.Name,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	stored, err := s.store.Insert(ctx, review)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to save review")
		return models.Review{}, err
	}
	return stored, nil
}

// ListForUser returns the user's reviews, newest first.
func (s *ReviewService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error) {
	return s.store.FindByUser(ctx, userID)
}

// ListForMovie returns the user's reviews for one movie, newest first.
func (s *ReviewService) ListForMovie(ctx context.Context, userID primitive.ObjectID, movieID int64) ([]models.Review, error) {
	return s.store.FindByMovie(ctx, userID, movieID)
}

// ClearUser drops session-scoped review state on logout.
func (s *ReviewService) ClearUser(ctx context.Context, userID primitive.ObjectID) error {
	return s.store.Clear(ctx, userID)
}
