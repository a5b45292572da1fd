package gallery

import (
	"net/url"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
)

// Mode says whether a resolution landed at the gallery root or inside one
// subfolder. Only one level of nesting exists.
type Mode int

const (
	ModeRoot Mode = iota
	ModeSubfolder
)

// Request carries the user-supplied hints for one resolution. All fields
// are optional; anything unresolvable is ignored rather than rejected.
type Request struct {
	Directory string // requested subfolder, any casing
	SceneID   string // deep-linked scene id
	Image     string // raw image filename
	FromUINav bool   // arrived via an in-UI folder click, not a deep link
	Author    string // pass-through display metadata
}

// Folder is a root-mode tile for one subfolder. PreviewPath is the
// web-relative path of the folder's first image, or "" when the folder has
// no images and the presentation layer should substitute a placeholder.
type Folder struct {
	Name        string
	Label       string
	PreviewPath string
}

// Thumbnail is one clickable image tile, in scan order. The welcome image
// never appears here.
type Thumbnail struct {
	Name    string
	Label   string
	Path    string
	SceneID string
}

// State is the complete outcome of one resolution: everything the
// presentation layer needs, fully built, never mutated afterwards.
type State struct {
	Mode          Mode
	CurrentFolder string   // on-disk casing; "" in root mode
	Folders       []Folder // root mode only
	RootImages    []string
	FolderImages  []string
	Scenes        *SceneSet
	FileToSceneID map[string]string // raw filename -> scene id, welcome excluded
	Thumbnails    []Thumbnail
	ActiveSceneID string // "" when nothing resolved
	HasContent    bool
	FromUINav     bool
	Author        string
	Welcome       string // on-disk welcome filename, "" if absent or subfolder mode
}

// Options is the static configuration a Resolver needs. RootPath is the
// gallery root within the filesystem; WebPrefix is the URL prefix emitted
// in panorama and thumbnail paths.
type Options struct {
	RootPath          string
	WebPrefix         string
	AllowedExtensions []string
	WelcomeFile       string
	HFOV              int
}

// Resolver turns a filesystem snapshot plus request hints into a State. It
// holds no mutable state, so one Resolver serves concurrent requests.
type Resolver struct {
	scanner *Scanner
	opts    Options
}

func NewResolver(fsys billy.Filesystem, opts Options) *Resolver {
	opts.HFOV = ClampHFOV(opts.HFOV)
	return &Resolver{scanner: NewScanner(fsys), opts: opts}
}

// ClampHFOV bounds a field of view to the viewer's supported [50,120] range.
func ClampHFOV(v int) int {
	if v < 50 {
		return 50
	}
	if v > 120 {
		return 120
	}
	return v
}

// Resolve performs one full resolution pass. It is a total function: every
// input shape yields a complete State, with unresolvable hints ignored and
// missing content reported as HasContent=false.
func (r *Resolver) Resolve(req Request) *State {
	subdirs := r.scanner.Subdirectories(r.opts.RootPath)

	st := &State{
		FromUINav:     req.FromUINav,
		Author:        req.Author,
		FileToSceneID: make(map[string]string),
	}

	resolved := ""
	if req.Directory != "" {
		for _, d := range subdirs {
			if strings.EqualFold(req.Directory, d) {
				resolved = d
				break
			}
		}
	}

	builder := newSceneBuilder(r.opts.HFOV)
	if resolved != "" {
		r.resolveSubfolder(st, builder, req, resolved)
	} else {
		r.resolveRoot(st, builder, req, subdirs)
	}
	st.Scenes = builder.set
	return st
}

func (r *Resolver) resolveRoot(st *State, builder *sceneBuilder, req Request, subdirs []string) {
	st.Mode = ModeRoot
	st.RootImages = r.scanner.Images(r.opts.RootPath, r.opts.AllowedExtensions)

	// The welcome image, when present in any casing, becomes the baseline
	// first scene but is kept out of the thumbnail map.
	var active string
	welcome := findFold(r.opts.WelcomeFile, st.RootImages)
	if welcome != "" {
		st.Welcome = welcome
		active = builder.Add(r.webPath(welcome), welcome)
	}

	for _, img := range st.RootImages {
		if welcome != "" && strings.EqualFold(img, welcome) {
			continue
		}
		sid := builder.Add(r.webPath(img), img)
		st.FileToSceneID[img] = sid
		st.Thumbnails = append(st.Thumbnails, Thumbnail{
			Name:    img,
			Label:   ToLabel(img),
			Path:    r.webPath(img),
			SceneID: sid,
		})
	}

	if active == "" {
		active = builder.set.First()
	}
	if req.Image != "" {
		if sid, ok := st.FileToSceneID[req.Image]; ok {
			active = sid
		}
	}
	// A known scene id beats everything, including the image hint.
	if req.SceneID != "" && builder.set.Has(req.SceneID) {
		active = req.SceneID
	}

	st.ActiveSceneID = active
	st.HasContent = builder.set.Len() > 0 && active != ""

	for _, dir := range subdirs {
		folder := Folder{Name: dir, Label: ToLabel(dir)}
		if imgs := r.scanner.Images(path.Join(r.opts.RootPath, dir), r.opts.AllowedExtensions); len(imgs) > 0 {
			folder.PreviewPath = r.webPath(dir, imgs[0])
		}
		st.Folders = append(st.Folders, folder)
	}
}

func (r *Resolver) resolveSubfolder(st *State, builder *sceneBuilder, req Request, dir string) {
	st.Mode = ModeSubfolder
	st.CurrentFolder = dir
	st.FolderImages = r.scanner.Images(path.Join(r.opts.RootPath, dir), r.opts.AllowedExtensions)

	// A subfolder with zero images is never viewable, even if a stale
	// scene-id parameter happens to match something.
	empty := len(st.FolderImages) == 0

	for _, img := range st.FolderImages {
		// Folder name in the id base keeps ids distinct from same-named
		// files at root or in other folders.
		sid := builder.Add(r.webPath(dir, img), dir+"-"+img)
		st.FileToSceneID[img] = sid
		st.Thumbnails = append(st.Thumbnails, Thumbnail{
			Name:    img,
			Label:   ToLabel(img),
			Path:    r.webPath(dir, img),
			SceneID: sid,
		})
	}

	var active string
	switch {
	case req.Image != "" && st.FileToSceneID[req.Image] != "":
		active = st.FileToSceneID[req.Image]
	case req.SceneID != "" && builder.set.Has(req.SceneID):
		active = req.SceneID
	default:
		active = builder.set.First()
	}

	st.ActiveSceneID = active
	st.HasContent = !empty && builder.set.Len() > 0 && active != ""
}

// webPath joins the configured web prefix with percent-encoded segments.
func (r *Resolver) webPath(segments ...string) string {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, r.opts.WebPrefix)
	for _, s := range segments {
		parts = append(parts, url.PathEscape(s))
	}
	return strings.Join(parts, "/")
}

// findFold returns the element of names matching needle case-insensitively,
// preserving the on-disk casing, or "" if absent.
func findFold(needle string, names []string) string {
	for _, n := range names {
		if strings.EqualFold(n, needle) {
			return n
		}
	}
	return ""
}

// FolderURL is the deep-link target of a folder tile; nav=1 marks in-UI
// navigation so the subfolder view shows an Up tile. Spaces are encoded as
// %20, not +, so canonical deep links keep a stable byte form.
func FolderURL(name string) string {
	return "?dir=" + strings.ReplaceAll(url.QueryEscape(name), "+", "%20") + "&nav=1"
}

// RootURL is the target of the Up tile.
func RootURL() string {
	return "?nav=1"
}
