package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"goahomes/api/internal/api/handlers"
	"goahomes/api/internal/api/middleware"
	"goahomes/api/internal/config"
	"goahomes/api/internal/services"
	"goahomes/api/internal/storage"
)

// SetupRouter configures and returns the main Gin engine.
func SetupRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, taskClient *asynq.Client) *gin.Engine {
	// Initialize services needed by API handlers
	listingService := services.NewListingService(db, cfg)
	submissionService := services.NewSubmissionService(db, cfg, listingService)
	inquiryService := services.NewInquiryService(db, cfg, listingService, taskClient)

	var s3StorageService storage.IS3Storage
	if cfg.AwsS3Bucket != "" {
		var err error
		s3StorageService, err = storage.NewS3Storage(cfg)
		if err != nil {
			log.Fatalf("CRITICAL: Failed to initialize S3 storage for API: %v", err)
		}
	} else {
		log.Println("AWS_S3_BUCKET not configured, image uploads disabled.")
	}

	r := gin.Default()

	// Apply global middleware first (order matters)
	rateLimiter := middleware.NewRateLimiterMiddleware(cfg)
	r.Use(middleware.CORSMiddleware())
	r.Use(rateLimiter.Limit())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg)
	listingHandler := handlers.NewRestListingHandler(listingService, rdb, cfg)
	submissionHandler := handlers.NewRestSubmissionHandler(submissionService, taskClient)
	inquiryHandler := handlers.NewRestInquiryHandler(inquiryService)
	uploadHandler := handlers.NewUploadHandler(s3StorageService)

	v1 := r.Group("/v1")
	{
		// Public routes (rate limiting already applied globally)
		v1.GET("/properties", listingHandler.ListProperties)
		v1.GET("/properties/:id", listingHandler.GetProperty)
		v1.POST("/properties/:id/inquiries", inquiryHandler.CreateInquiry)
		v1.POST("/submissions", submissionHandler.CreateSubmission)
		v1.POST("/auth/login", authHandler.Login)

		v1.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg.JwtSecret), middleware.AdminMiddleware())
		{
			admin.POST("/properties", listingHandler.CreateProperty)
			admin.PUT("/properties/:id", listingHandler.UpdateProperty)
			admin.DELETE("/properties/:id", listingHandler.DeleteProperty)

			admin.GET("/submissions", submissionHandler.ListSubmissions)
			admin.GET("/submissions/:id", submissionHandler.GetSubmission)
			admin.PATCH("/submissions/:id", submissionHandler.DecideSubmission)
			admin.POST("/submissions/:id/publish", submissionHandler.PublishSubmission)
			admin.DELETE("/submissions/:id", submissionHandler.DeleteSubmission)

			admin.POST("/uploads", uploadHandler.PresignUpload)
			admin.POST("/seed", listingHandler.SeedProperties)
		}
	}

	return r
}

// SetupServiceRouter configures and returns the internal service Gin engine
// used for health checks and controlled shutdown.
func SetupServiceRouter(cfg *config.Config, shutdownChan chan<- struct{}) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "app": cfg.AppName})
	})

	r.POST("/shutdown", func(c *gin.Context) {
		log.Println("Received shutdown command via Service API")
		c.JSON(http.StatusOK, gin.H{"success": true, "result": "Shutdown initiated"})
		select {
		case shutdownChan <- struct{}{}:
		default:
			log.Println("Shutdown channel already signaled or blocked.")
		}
	})

	return r
}
