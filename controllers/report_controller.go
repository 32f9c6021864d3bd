package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cinecircle-backend/services"
)

type ReportController struct {
	authService   *services.AuthService
	reportService *services.ReportService
}

func NewReportController(authService *services.AuthService, reportService *services.ReportService) *ReportController {
	return &ReportController{
		authService:   authService,
		reportService: reportService,
	}
}

// GetReport returns the caller's aggregate review statistics.
func (c *ReportController) GetReport(ctx *gin.Context) {
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

	report, err := c.reportService.BuildUserReport(ctx.Request.Context(), user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	ctx.JSON(http.StatusOK, report)
}
