package router

import (
	"time"

	"github.com/TripMitra/trip-mitra-backend/config"
	"github.com/TripMitra/trip-mitra-backend/handlers"
	"github.com/TripMitra/trip-mitra-backend/middleware"
	"github.com/TripMitra/trip-mitra-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies holds everything needed to wire up the routes.
type Dependencies struct {
	Config        *config.Config
	PlanHandler   *handlers.PlanHandler
	TripHandler   *handlers.TripHandler
	HealthHandler *handlers.HealthHandler
	RateLimiter   services.RateLimiterInterface
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and metrics
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/v1")
	{
		// Plan generation is the expensive endpoint, so it alone carries the
		// rate limiter.
		planLimiter := middleware.PlanRateLimiter(
			deps.RateLimiter,
			deps.Config.RateLimit.PlanRequestsPerMinute,
			time.Duration(deps.Config.RateLimit.WindowSeconds)*time.Second,
		)

		planRoutes := v1.Group("/plans")
		{
			planRoutes.POST("", planLimiter, deps.PlanHandler.CreatePlanHandler)
			planRoutes.GET("/questions", deps.PlanHandler.GetQuestionsHandler)
			planRoutes.GET("/options", deps.PlanHandler.GetOptionsHandler)
		}

		tripRoutes := v1.Group("/trips")
		{
			tripRoutes.POST("", deps.TripHandler.SaveTripHandler)
			tripRoutes.GET("", deps.TripHandler.ListTripsHandler)
			tripRoutes.GET("/:id", deps.TripHandler.GetTripHandler)
			tripRoutes.DELETE("/:id", deps.TripHandler.DeleteTripHandler)
		}
	}

	return r
}
