package data_access

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cinecircle-backend/models"
)

type UserRepository struct {
	collection *mongo.Collection
}

type ReviewRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *MongoDB) *UserRepository {
	return &UserRepository{collection: db.Collection("users")}
}

func NewReviewRepository(db *MongoDB) *ReviewRepository {
	return &ReviewRepository{collection: db.Collection("reviews")}
}

// UserRepository methods

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id primitive.ObjectID, t time.Time) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"last_login": t}})
	return err
}

// ReviewRepository methods

// Insert writes the denormalized review row and returns the stored row with
// its server-assigned id and timestamp.
func (r *ReviewRepository) Insert(ctx context.Context, review models.Review) (models.Review, error) {
	review.CreatedAt = time.Now().UTC()
	res, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return models.Review{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid
	}
	return review, nil
}

// FindByUser returns the user's reviews, newest first.
func (r *ReviewRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByMovie returns the user's reviews for one movie, newest first.
func (r *ReviewRepository) FindByMovie(ctx context.Context, userID primitive.ObjectID, movieID int64) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID, "movie_id": movieID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Clear is a no-op for the persisted store: logout discards session state,
// not the user's review history.
func (r *ReviewRepository) Clear(ctx context.Context, userID primitive.ObjectID) error {
	return nil
}
