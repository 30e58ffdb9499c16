package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"filehost/internal/config"
	"filehost/internal/database"
	"filehost/internal/domain/application"
	"filehost/internal/domain/resource"
	"filehost/internal/middleware"
	"filehost/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	manager := database.NewManager()
	if err := manager.ConnectWithRetry(cfg.DatabaseURL, database.DefaultRetryPolicy()); err != nil {
		log.Fatal(err)
	}

	db := manager.DB()
	if err := db.AutoMigrate(&application.Application{}, &resource.Resource{}); err != nil {
		log.Fatal(err)
	}

	store := storage.NewStore(cfg.StorageRoot)
	if err := store.EnsureBuckets(resource.Buckets()); err != nil {
		log.Fatal(err)
	}

	appRepo := application.NewRepository(db)
	resRepo := resource.NewRepository(db)

	appHandler := application.NewHandler(application.NewService(appRepo))
	resHandler := resource.NewHandler(resource.NewService(resRepo, appRepo, store, cfg.BaseURL))

	errorLog, err := os.OpenFile("error.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatal(err)
	}
	defer errorLog.Close()

	r := gin.New()
	r.Use(
		gin.Logger(),
		middleware.ErrorLogger(errorLog),
		middleware.CORS(),
		middleware.MaxBodySize(cfg.MaxUploadSize),
	)

	r.GET("/", func(c *gin.Context) {
		status := "Offline"
		if manager.Connected() {
			status = "Online"
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Welcome to the API",
			"status":  status,
			"about":   "An API for storing and serving images, videos, pdfs, etc.",
		})
	})

	api := r.Group("/api")
	{
		application.RegisterRoutes(api, appHandler)
		resource.RegisterRoutes(api, resHandler)
	}

	r.Static("/uploads", cfg.StorageRoot)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
