package data_access

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"cinecircle-backend/models"
)

// MemoryReviewStore keeps reviews for the lifetime of the process only.
// Ids are derived from the insertion time, matching what the persisted store
// would assign. Ordering is canonical: newest first.
type MemoryReviewStore struct {
	mu      sync.RWMutex
	reviews map[primitive.ObjectID][]models.Review
}

func NewMemoryReviewStore() *MemoryReviewStore {
	return &MemoryReviewStore{
		reviews: make(map[primitive.ObjectID][]models.Review),
	}
}

func (s *MemoryReviewStore) Insert(ctx context.Context, review models.Review) (models.Review, error) {
	now := time.Now().UTC()
	review.ID = primitive.NewObjectIDFromTimestamp(now)
	review.CreatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews[review.UserID] = append([]models.Review{review}, s.reviews[review.UserID]...)
	return review, nil
}

func (s *MemoryReviewStore) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Review, len(s.reviews[userID]))
	copy(out, s.reviews[userID])
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryReviewStore) FindByMovie(ctx context.Context, userID primitive.ObjectID, movieID int64) ([]models.Review, error) {
	all, err := s.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := []models.Review{}
	for _, r := range all {
		if r.MovieID == movieID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MemoryReviewStore) Clear(ctx context.Context, userID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reviews, userID)
	return nil
}

// MemoryUserStore holds accounts for the lifetime of the process. It backs
// the memory review-store mode, where nothing survives a restart.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[primitive.ObjectID]models.User)}
}

func (s *MemoryUserStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return errors.New("email already registered")
		}
	}
	user.ID = primitive.NewObjectID()
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (s *MemoryUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		user := u
		return &user, nil
	}
	return nil, nil
}

func (s *MemoryUserStore) UpdateLastLogin(ctx context.Context, id primitive.ObjectID, t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		u.LastLogin = t
		s.users[id] = u
	}
	return nil
}
