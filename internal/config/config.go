package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"go-panorama-gallery/internal/gallery"
)

type Config struct {
	Server  ServerConfig
	Gallery GalleryConfig
	Viewer  ViewerConfig
	Site    SiteConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GalleryConfig struct {
	Path              string
	AllowedExtensions []string
	WelcomeFile       string
}

type ViewerConfig struct {
	HFOV       int // clamped to [50,120] at load
	AutoRotate int
}

type SiteConfig struct {
	Title       string
	Description string
	Author      string
}

// Load reads configuration from the environment once at startup. A .env
// file is honored when present but not required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Gallery: GalleryConfig{
			Path:              getEnv("GALLERY_PATH", "./images"),
			AllowedExtensions: getEnvAsList("GALLERY_ALLOWED_EXTENSIONS", []string{"jpg", "jpeg", "png"}),
			WelcomeFile:       getEnv("GALLERY_WELCOME_FILE", "welcome.jpg"),
		},
		Viewer: ViewerConfig{
			HFOV:       gallery.ClampHFOV(getEnvAsInt("VIEWER_HFOV", 105)),
			AutoRotate: getEnvAsInt("VIEWER_AUTOROTATE", -2),
		},
		Site: SiteConfig{
			Title:       getEnv("SITE_TITLE", "Renstar Panorama Viewer"),
			Description: getEnv("SITE_DESCRIPTION", "Panorama Photos for All Occasions!"),
			Author:      getEnv("SITE_AUTHOR", "Emil"),
		},
	}

	if len(config.Gallery.AllowedExtensions) == 0 {
		return nil, fmt.Errorf("GALLERY_ALLOWED_EXTENSIONS must name at least one extension")
	}

	return config, nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		var intVal int
		if _, err := fmt.Sscanf(value, "%d", &intVal); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimPrefix(strings.TrimSpace(item), ".")
		if item != "" {
			items = append(items, strings.ToLower(item))
		}
	}
	return items
}
