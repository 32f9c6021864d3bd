package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"cinecircle-backend/models"
	"cinecircle-backend/services"
)

type ReviewController struct {
	authService   *services.AuthService
	reviewService *services.ReviewService
}

func NewReviewController(authService *services.AuthService, reviewService *services.ReviewService) *ReviewController {
	return &ReviewController{
		authService:   authService,
		reviewService: reviewService,
	}
}

func (c *ReviewController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req models.SubmitReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": reviewErrorMessage(err)})
		return
	}

	user, err := c.authService.CurrentUser(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Session could not be resolved"})
		return
	}

	review, err := c.reviewService.AddReview(ctx.Request.Context(), user, &req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
		return
	}

	ctx.JSON(http.StatusCreated, review)
}

// ListMine returns the caller's reviews, newest first.
func (c *ReviewController) ListMine(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	reviews, err := c.reviewService.ListForUser(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}

// ListForMovie returns the caller's reviews for one movie, newest first.
func (c *ReviewController) ListForMovie(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	movieID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie id"})
		return
	}

	reviews, err := c.reviewService.ListForMovie(ctx.Request.Context(), userID, movieID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}

func reviewErrorMessage(err error) string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request format"
	}
	for _, e := range ve {
		switch e.Field() {
		case "MovieID":
			return "A movie is required"
		case "Rating":
			return "Rating must be between 1 and 5"
		case "Comment":
			return "A comment is required"
		}
	}
	return "Invalid input data"
}
