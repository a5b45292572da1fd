package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-git/go-billy/v5"
	"github.com/sirupsen/logrus"

	"go-panorama-gallery/internal/config"
	"go-panorama-gallery/internal/gallery"
	"go-panorama-gallery/internal/viewer"
)

// webPrefix is the URL prefix under which the raw gallery tree is served.
const webPrefix = "images"

// Gallery serves the panorama gallery page and thumbnails. The filesystem
// is rooted at the configured gallery path.
type Gallery struct {
	cfg      *config.Config
	fs       billy.Filesystem
	resolver *gallery.Resolver
	log      *logrus.Logger
}

func NewGallery(cfg *config.Config, fsys billy.Filesystem, log *logrus.Logger) *Gallery {
	return &Gallery{
		cfg: cfg,
		fs:  fsys,
		resolver: gallery.NewResolver(fsys, gallery.Options{
			RootPath:          ".",
			WebPrefix:         webPrefix,
			AllowedExtensions: cfg.Gallery.AllowedExtensions,
			WelcomeFile:       cfg.Gallery.WelcomeFile,
			HFOV:              cfg.Viewer.HFOV,
		}),
		log: log,
	}
}

type folderTile struct {
	Label string
	URL   string
	Thumb string // "" means the template shows the placeholder
}

type imageTile struct {
	Label   string
	Thumb   string
	SceneID string
	Active  bool
}

// Show resolves the requested gallery view and renders the page.
func (h *Gallery) Show(c *gin.Context) {
	req := gallery.Request{
		Directory: c.Query("dir"),
		SceneID:   c.Query("scene"),
		Image:     c.Query("image"),
		FromUINav: c.Query("nav") == "1",
		Author:    c.DefaultQuery("author", h.cfg.Site.Author),
	}
	state := h.resolver.Resolve(req)

	configJSON, err := viewer.JSON(state, h.cfg.Viewer.AutoRotate)
	if err != nil {
		h.log.WithError(err).Error("failed to serialize viewer configuration")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build viewer configuration"})
		return
	}

	headerTitle := h.cfg.Site.Title
	if state.Mode == gallery.ModeSubfolder {
		headerTitle += " — " + gallery.ToLabel(state.CurrentFolder)
	}

	currentURL := pageURL(c)

	folders := make([]folderTile, 0, len(state.Folders))
	for _, f := range state.Folders {
		tile := folderTile{Label: f.Label, URL: gallery.FolderURL(f.Name)}
		if f.PreviewPath != "" {
			tile.Thumb = thumbnailURL(f.PreviewPath)
		}
		folders = append(folders, tile)
	}

	thumbs := make([]imageTile, 0, len(state.Thumbnails))
	for _, t := range state.Thumbnails {
		thumbs = append(thumbs, imageTile{
			Label:   t.Label,
			Thumb:   thumbnailURL(t.Path),
			SceneID: t.SceneID,
			Active:  t.SceneID == state.ActiveSceneID,
		})
	}

	c.HTML(http.StatusOK, "gallery.html", gin.H{
		"Title":        h.cfg.Site.Title,
		"HeaderTitle":  headerTitle,
		"Description":  h.cfg.Site.Description,
		"CanonicalURL": currentURL,
		"Host":         c.Request.Host,
		"OGImage":      currentURL + "/360-og.jpg",
		"ImagesDirWeb": webPrefix,
		"HasContent":   state.HasContent,
		"ShowUp":       state.Mode == gallery.ModeSubfolder && state.FromUINav,
		"UpURL":        gallery.RootURL(),
		"Folders":      folders,
		"Thumbs":       thumbs,
		"ConfigJSON":   template.JS(configJSON),
	})
}

// Health reports liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// thumbnailURL swaps the raw image prefix for the resizing endpoint.
func thumbnailURL(webPath string) string {
	return "/thumbnails/" + strings.TrimPrefix(webPath, webPrefix+"/")
}

func pageURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + strings.TrimSuffix(c.Request.URL.Path, "/")
}
