package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cinecircle-backend/data_access"
	"cinecircle-backend/models"
	"cinecircle-backend/services"
)

type MovieController struct {
	searchService *services.SearchService
	catalog       []models.Movie
}

func NewMovieController(searchService *services.SearchService, catalog []models.Movie) *MovieController {
	return &MovieController{
		searchService: searchService,
		catalog:       catalog,
	}
}

// Catalog serves the built-in sample movie list.
func (c *MovieController) Catalog(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.catalog)
}

// Search runs an enriched movie search scoped to the caller.
func (c *MovieController) Search(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	query := ctx.Query("q")
	movies, err := c.searchService.Search(ctx.Request.Context(), userID.Hex(), query)
	if err != nil {
		if errors.Is(err, data_access.ErrAPIKeyMissing) {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Movie search is not configured"})
			return
		}
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to search movies"})
		return
	}

	ctx.JSON(http.StatusOK, models.SearchResponse{Query: query, Results: movies})
}
