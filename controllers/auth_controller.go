package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"cinecircle-backend/models"
	"cinecircle-backend/services"
)

type AuthController struct {
	authService   *services.AuthService
	reviewService *services.ReviewService
	searchService *services.SearchService
}

func NewAuthController(
	authService *services.AuthService,
	reviewService *services.ReviewService,
	searchService *services.SearchService,
) *AuthController {
	return &AuthController{
		authService:   authService,
		reviewService: reviewService,
		searchService: searchService,
	}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var req models.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": credentialsErrorMessage(err)})
		return
	}

	resp, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

func (c *AuthController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": credentialsErrorMessage(err)})
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Logout discards the caller's session-scoped state. Tokens are stateless;
// the client drops its copy.
func (c *AuthController) Logout(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := c.reviewService.ClearUser(ctx.Request.Context(), userID); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}
	c.searchService.Clear(userID.Hex())

	ctx.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// Me resolves the current session into the client-facing identity.
func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := c.authService.CurrentUser(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Session could not be resolved"})
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func credentialsErrorMessage(err error) string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request format"
	}
	for _, e := range ve {
		switch e.Field() {
		case "Email":
			return "Please provide a valid email address"
		case "Password":
			if e.Tag() == "min" {
				return "Password must be at least 6 characters long"
			}
			return "Password is required"
		}
	}
	return "Invalid input data"
}
