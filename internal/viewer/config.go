// Package viewer serializes a resolved gallery state into the Pannellum
// viewer configuration. Field names and nesting are the widget's contract
// and must not change.
package viewer

import (
	"encoding/json"

	"go-panorama-gallery/internal/gallery"
)

const (
	sceneFadeDuration = 800
	minHFOV           = 50
	maxHFOV           = 120
)

// Config is the top-level viewer configuration object.
type Config struct {
	Default Defaults          `json:"default"`
	Scenes  *gallery.SceneSet `json:"scenes"`
}

// Defaults is the viewer's "default" section.
type Defaults struct {
	FirstScene        string `json:"firstScene"`
	AutoLoad          bool   `json:"autoLoad"`
	SceneFadeDuration int    `json:"sceneFadeDuration"`
	Author            string `json:"author"`
	AutoRotate        int    `json:"autoRotate"`
	MinHFOV           int    `json:"minHfov"`
	MaxHFOV           int    `json:"maxHfov"`
	Compass           bool   `json:"compass"`
}

// Build assembles the configuration for a resolved state. autoRotate is the
// configured spin speed, passed through unchanged.
func Build(st *gallery.State, autoRotate int) Config {
	return Config{
		Default: Defaults{
			FirstScene:        st.ActiveSceneID,
			AutoLoad:          true,
			SceneFadeDuration: sceneFadeDuration,
			Author:            st.Author,
			AutoRotate:        autoRotate,
			MinHFOV:           minHFOV,
			MaxHFOV:           maxHFOV,
			Compass:           false,
		},
		Scenes: st.Scenes,
	}
}

// JSON renders the configuration the page script consumes. A state without
// content serializes to an empty object so the shell can branch on it.
func JSON(st *gallery.State, autoRotate int) ([]byte, error) {
	if !st.HasContent {
		return []byte("{}"), nil
	}
	return json.Marshal(Build(st, autoRotate))
}
