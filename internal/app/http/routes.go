package routes

import (
	authapi "quarters-app/internal/api/auth"
	coinsapi "quarters-app/internal/api/coins"
	usersapi "quarters-app/internal/api/users"
	"quarters-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	authHandler := authapi.NewHandler(db)
	coinsHandler := coinsapi.NewHandler(db)
	usersHandler := usersapi.NewHandler(db)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/auth/google", authHandler.GoogleStart)
	r.GET("/auth/google/callback", authHandler.GoogleCallback)

	api := r.Group("/api")

	// Public profile is gated by the target's visibility flag, not by auth.
	api.GET("/user/profile/:userId", usersHandler.PublicProfile)

	// Authenticated
	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.SanitizeInputMiddleware())

	auth.GET("/auth/me", authHandler.Me)

	auth.GET("/coins/quarters", coinsHandler.ListQuarters)
	auth.POST("/coins/quarters/:id/collect", coinsHandler.CollectQuarter)
	auth.DELETE("/coins/quarters/:id/collect", coinsHandler.ReleaseQuarter)
	auth.GET("/coins/stats", coinsHandler.GetStats)
	auth.GET("/coins/series", coinsHandler.ListSeries)

	auth.PUT("/user/profile-visibility", usersHandler.UpdateProfileVisibility)
}
