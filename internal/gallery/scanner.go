package gallery

import (
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/maruel/natural"
)

// Scanner lists directory contents for the resolver. It is a stateless,
// read-only view over a billy filesystem; production code hands it an osfs
// rooted at the gallery path, tests hand it a memfs.
type Scanner struct {
	fs billy.Filesystem
}

func NewScanner(fsys billy.Filesystem) *Scanner {
	return &Scanner{fs: fsys}
}

// Subdirectories returns the names of the immediate child directories of
// root, hidden entries excluded, in case-insensitive natural order. A
// missing root yields an empty list, not an error.
func (s *Scanner) Subdirectories(root string) []string {
	entries, err := s.fs.ReadDir(root)
	if err != nil {
		return nil
	}

	var dirs []string
	for _, entry := range entries {
		if isHidden(entry.Name()) || !entry.IsDir() {
			continue
		}
		dirs = append(dirs, entry.Name())
	}
	sortNatural(dirs)
	return dirs
}

// Images returns the filenames of the immediate child files of dir whose
// extension is in allowed, hidden entries excluded, in case-insensitive
// natural order. A missing dir yields an empty list, not an error.
func (s *Scanner) Images(dir string, allowed []string) []string {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil
	}

	var images []string
	for _, entry := range entries {
		if isHidden(entry.Name()) || entry.IsDir() {
			continue
		}
		if HasAllowedExtension(entry.Name(), allowed) {
			images = append(images, entry.Name())
		}
	}
	sortNatural(images)
	return images
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// sortNatural orders names case-insensitively with numeric awareness, so
// "img2" sorts before "img10". Case-insensitive ties fall back to a byte
// comparison so the order never depends on directory read order.
func sortNatural(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li == lj {
			return names[i] < names[j]
		}
		return natural.Less(li, lj)
	})
}
