package api

import (
	"github.com/gin-gonic/gin"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/sirupsen/logrus"

	"go-panorama-gallery/internal/api/handlers"
	"go-panorama-gallery/internal/api/middleware"
	"go-panorama-gallery/internal/config"
)

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine, cfg *config.Config, log *logrus.Logger) {
	router.Use(middleware.RequestID(), middleware.AccessLog(log))

	g := handlers.NewGallery(cfg, osfs.New(cfg.Gallery.Path), log)

	router.GET("/", g.Show)
	router.GET("/healthz", handlers.Health)
	router.GET("/thumbnails/*path", g.Thumbnail)
	router.Static("/images", cfg.Gallery.Path)
}
