package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"go-panorama-gallery/internal/api"
	"go-panorama-gallery/internal/config"
)

func main() {
	logger := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration: ", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.LoadHTMLGlob("web/templates/*.html")

	api.SetupRoutes(router, cfg, logger)

	logger.WithFields(logrus.Fields{
		"port":    cfg.Server.Port,
		"gallery": cfg.Gallery.Path,
		"env":     cfg.Server.Env,
	}).Info("starting panorama gallery server")

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: ", err)
	}
}
