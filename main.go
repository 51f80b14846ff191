package main

import (
	"log"
	"time"

	"devconnector-be/internal/cache"
	"devconnector-be/internal/config"
	"devconnector-be/internal/controllers"
	"devconnector-be/internal/database"
	"devconnector-be/internal/jwt"
	"devconnector-be/internal/middleware"
	"devconnector-be/internal/repository"
	"devconnector-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set before the server can issue or verify tokens")
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTLMinutes)*time.Minute,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	profileService := service.NewProfileService(profileRepo, userRepo, cacheClient)
	postService := service.NewPostService(postRepo, userRepo)
	githubService := service.NewGithubService(cfg.GithubToken, cacheClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	profileController := controllers.NewProfileController(profileService, githubService)
	postController := controllers.NewPostController(postService)
	qrcodeController := controllers.NewQRCodeController(cfg.FrontendURL)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	authRequired := middleware.AuthMiddleware(jwtService)

	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	api := router.Group("/api")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		// Registration and login with stricter rate limiting
		api.POST("/users", authRateLimiter.LimitMiddleware(), authController.Register)
		api.POST("/auth", authRateLimiter.LimitMiddleware(), authController.Login)
		api.GET("/auth", authRequired, authController.Me)

		profile := api.Group("/profile")
		{
			profile.GET("", profileController.GetAll)
			profile.GET("/user/:user_id", profileController.GetByUserID)
			profile.GET("/user/:user_id/qrcode", qrcodeController.ProfileQRCode)
			profile.GET("/github/:username", profileController.GithubRepos)

			profile.GET("/me", authRequired, profileController.Me)
			profile.POST("", authRequired, profileController.Upsert)
			profile.DELETE("", authRequired, profileController.DeleteAccount)
			profile.PUT("/experience", authRequired, profileController.AddExperience)
			profile.DELETE("/experience/:exp_id", authRequired, profileController.DeleteExperience)
			profile.PUT("/education", authRequired, profileController.AddEducation)
			profile.DELETE("/education/:edu_id", authRequired, profileController.DeleteEducation)
		}

		posts := api.Group("/posts")
		posts.Use(authRequired)
		{
			posts.POST("", postController.Create)
			posts.GET("", postController.GetAll)
			posts.GET("/:id", postController.GetByID)
			posts.DELETE("/:id", postController.Delete)
			posts.PUT("/like/:id", postController.Like)
			posts.PUT("/unlike/:id", postController.Unlike)
			posts.POST("/comment/:id", postController.AddComment)
			posts.DELETE("/:id/comment/:comment_id", postController.DeleteComment)
		}
	}

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
