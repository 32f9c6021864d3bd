package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"cinecircle-backend/data_access"
	"cinecircle-backend/models"
)

type failingReviewStore struct {
	data_access.MemoryReviewStore
}

func (f *failingReviewStore) Insert(ctx context.Context, review models.Review) (models.Review, error) {
	return models.Review{}, errors.New("insert failed")
}

func testAuthUser() models.AuthUser {
	return models.AuthUser{
		ID:    primitive.NewObjectID().Hex(),
		Email: "casey@example.com",
		Name:  "Casey Jones",
	}
}

func TestAddReview(t *testing.T) {
	t.Run("assigns id and timestamp, denormalizes user name", func(t *testing.T) {
		s := NewReviewService(data_access.NewMemoryReviewStore(), zerolog.Nop())
		user := testAuthUser()

		review, err := s.AddReview(context.Background(), user, &models.SubmitReviewRequest{
			MovieID: 603,
			Rating:  5,
			Comment: "still holds up",
		})

		require.NoError(t, err)
		assert.False(t, review.ID.IsZero())
		assert.False(t, review.CreatedAt.IsZero())
		assert.Equal(t, "Casey Jones", review.UserName)
		assert.Equal(t, int64(603), review.MovieID)
		assert.Equal(t, 5, review.Rating)
	})

	t.Run("invalid user id", func(t *testing.T) {
		s := NewReviewService(data_access.NewMemoryReviewStore(), zerolog.Nop())
		user := models.AuthUser{ID: "not-an-object-id"}

		_, err := s.AddReview(context.Background(), user, &models.SubmitReviewRequest{
			MovieID: 603,
			Rating:  3,
			Comment: "x",
		})
		assert.Error(t, err)
	})

	t.Run("store failure leaves no partial state", func(t *testing.T) {
		store := &failingReviewStore{}
		s := NewReviewService(store, zerolog.Nop())
		user := testAuthUser()

		_, err := s.AddReview(context.Background(), user, &models.SubmitReviewRequest{
			MovieID: 603,
			Rating:  3,
			Comment: "x",
		})
		require.Error(t, err)

		userID, _ := primitive.ObjectIDFromHex(user.ID)
		reviews, err := s.ListForUser(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, reviews)
	})
}

func TestListForUserAndMovie(t *testing.T) {
	s := NewReviewService(data_access.NewMemoryReviewStore(), zerolog.Nop())
	user := testAuthUser()
	userID, _ := primitive.ObjectIDFromHex(user.ID)

	for _, req := range []models.SubmitReviewRequest{
		{MovieID: 603, Rating: 5, Comment: "first"},
		{MovieID: 278, Rating: 4, Comment: "second"},
		{MovieID: 603, Rating: 2, Comment: "third"},
	} {
		_, err := s.AddReview(context.Background(), user, &req)
		require.NoError(t, err)
	}

	all, err := s.ListForUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for i := 0; i < len(all)-1; i++ {
		assert.False(t, all[i].CreatedAt.Before(all[i+1].CreatedAt), "newest first")
	}

	matrix, err := s.ListForMovie(context.Background(), userID, 603)
	require.NoError(t, err)
	assert.Len(t, matrix, 2)
	for _, r := range matrix {
		assert.Equal(t, int64(603), r.MovieID)
	}
}

func TestClearUser(t *testing.T) {
	s := NewReviewService(data_access.NewMemoryReviewStore(), zerolog.Nop())
	user := testAuthUser()
	userID, _ := primitive.ObjectIDFromHex(user.ID)

	_, err := s.AddReview(context.Background(), user, &models.SubmitReviewRequest{
		MovieID: 603, Rating: 5, Comment: "x",
	})
	require.NoError(t, err)

	require.NoError(t, s.ClearUser(context.Background(), userID))

	reviews, err := s.ListForUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
