package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"cinecircle-backend/config"
	"cinecircle-backend/controllers"
	"cinecircle-backend/data_access"
	"cinecircle-backend/helper"
	"cinecircle-backend/logger"
	"cinecircle-backend/middleware"
	"cinecircle-backend/models"
	"cinecircle-backend/services"
)

const sampleCatalogPath = "sample_movies.csv"

func setupCORS() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{
		"Origin",
		"Content-Type",
		"Content-Length",
		"Accept-Encoding",
		"X-CSRF-Token",
		"Authorization",
	}
	cfg.MaxAge = 12 * time.Hour
	return cors.New(cfg)
}

func main() {
	// Optional: plain env vars are enough without a .env file.
	_ = godotenv.Load()

	log := logger.New("cinecircle")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	log.Info().Str("env", cfg.Env).Str("review_store", cfg.ReviewStore).Msg("configuration loaded")

	if cfg.MovieAPIKey == "" {
		log.Warn().Msg("MOVIE_API_KEY is not set, movie search will be unavailable")
	}

	var userStore services.UserStore
	var reviewStore services.ReviewStore

	if cfg.ReviewStore == config.StoreModeMongo {
		mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to MongoDB")
		}
		defer mongodb.Close(context.Background())

		userStore = data_access.NewUserRepository(mongodb)
		reviewStore = data_access.NewReviewRepository(mongodb)
	} else {
		userStore = data_access.NewMemoryUserStore()
		reviewStore = data_access.NewMemoryReviewStore()
	}

	catalog, err := helper.LoadSampleCatalog(sampleCatalogPath)
	if err != nil {
		log.Warn().Err(err).Msg("sample catalog unavailable")
		catalog = []models.Movie{}
	}

	tmdb := data_access.NewTMDBClient(cfg.MovieAPIKey, cfg.MovieAPIBaseURL, cfg.MovieImageBaseURL)

	searchService := services.NewSearchService(tmdb, log)
	if cfg.MovieAPIKey != "" {
		genreCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		searchService.LoadGenres(genreCtx)
		cancel()
	}

	authService := services.NewAuthService(userStore, cfg.JWTSecret)
	reviewService := services.NewReviewService(reviewStore, log)
	reportService := services.NewReportService(reviewService, searchService, catalog)

	authController := controllers.NewAuthController(authService, reviewService, searchService)
	movieController := controllers.NewMovieController(searchService, catalog)
	reviewController := controllers.NewReviewController(authService, reviewService)
	reportController := controllers.NewReportController(authService, reportService)

	middleware.SetJWTSecret(cfg.JWTSecret)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(setupCORS())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RateLimitMiddleware(rate.NewLimiter(5, 10)))

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")
	{
		api.POST("/register", authController.Register)
		api.POST("/login", authController.Login)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/logout", authController.Logout)
			protected.GET("/me", authController.Me)
			protected.GET("/movies", movieController.Catalog)
			protected.GET("/search", movieController.Search)
			protected.GET("/reviews", reviewController.ListMine)
			protected.POST("/reviews", reviewController.Create)
			protected.GET("/movies/:id/reviews", reviewController.ListForMovie)
			protected.GET("/reports", reportController.GetReport)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
