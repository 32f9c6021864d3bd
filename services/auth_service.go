package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"cinecircle-backend/models"
)

const tokenLifetime = 24 * time.Hour

// UserStore is the persistence surface the auth service needs.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id primitive.ObjectID, t time.Time) error
}

type AuthService struct {
	userStore UserStore
	jwtSecret string
}

func NewAuthService(userStore UserStore, jwtSecret string) *AuthService {
	return &AuthService{
		userStore: userStore,
		jwtSecret: jwtSecret,
	}
}

func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	existingUser, err := s.userStore.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, errors.New("user already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &models.User{
		Email:     req.Email,
		Password:  string(hashedPassword),
		FullName:  req.FullName,
		CreatedAt: now,
		LastLogin: now,
	}

	if err := s.userStore.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: user.ToAuthUser()}, nil
}

func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userStore.FindByEmail(ctx, req.Email)
	if err != nil || user == nil {
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	now := time.Now().UTC()
	if err := s.userStore.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: user.ToAuthUser()}, nil
}

// CurrentUser resolves the identity behind an authenticated request.
func (s *AuthService) CurrentUser(ctx context.Context, userID primitive.ObjectID) (models.AuthUser, error) {
	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return models.AuthUser{}, err
	}
	if user == nil {
		return models.AuthUser{}, errors.New("user not found")
	}
	return user.ToAuthUser(), nil
}

func (s *AuthService) signToken(userID primitive.ObjectID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.Hex(),
		"exp":     time.Now().Add(tokenLifetime).Unix(),
	})
	return token.SignedString([]byte(s.jwtSecret))
}
