package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nutrilog/backend/internal/api"
	"github.com/nutrilog/backend/internal/middleware"
)

// SetupRouter configures the application routes. The rate limiter is
// optional; passing nil leaves write endpoints unthrottled.
func SetupRouter(
	authHandler *api.AuthHandler,
	profileHandler *api.ProfileHandler,
	foodHandler *api.FoodHandler,
	logHandler *api.FoodLogHandler,
	tokenValidator middleware.TokenValidator,
	limiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://frontend:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(tokenValidator))
	{
		protected.GET("/auth/profile", authHandler.Me)

		users := protected.Group("/users")
		{
			users.GET("/profile", profileHandler.GetProfile)
			users.PUT("/profile", profileHandler.UpdateProfile)
			users.POST("/profile/picture", profileHandler.UploadProfilePicture)
		}

		foods := protected.Group("/foods")
		{
			foods.GET("/search", foodHandler.Search)
			foods.GET("/meta/categories", foodHandler.Categories)
			foods.GET("/:id", foodHandler.GetFood)
		}

		logs := protected.Group("/logs")
		{
			logs.GET("/daily", logHandler.Daily)
			logs.GET("/stats", logHandler.Stats)
		}

		// Writes go through the rate limiter when one is configured.
		writes := protected.Group("")
		if limiter != nil {
			writes.Use(limiter.Middleware())
		}
		{
			writes.POST("/foods", foodHandler.CreateFood)
			writes.POST("/logs", logHandler.CreateLog)
			writes.PUT("/logs/:id", logHandler.UpdateLog)
			writes.DELETE("/logs/:id", logHandler.DeleteLog)
		}
	}

	return router
}
