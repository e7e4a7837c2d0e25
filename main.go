package main

import (
	"log"
	"time"

	"quarters-app/config"
	"quarters-app/database"
	routes "quarters-app/internal/app/http"
	"quarters-app/internal/seed"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	db, err := database.Connect(config.DB_URL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Seeding runs before the server accepts any request; a failure here
	// aborts startup. Rerunning on every start is safe.
	if err := seed.Run(db); err != nil {
		log.Fatal("Failed to seed catalog: ", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db)

	if err := r.Run(":" + config.PORT); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
