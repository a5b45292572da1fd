package gallery

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	extensionRe  = regexp.MustCompile(`(?i)\.[a-z0-9]+$`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonSlugRe    = regexp.MustCompile(`[^a-z0-9]+`)
)

// ToLabel derives a display label from a file or folder name:
// "some-file_name.jpg" becomes "Some File Name".
func ToLabel(name string) string {
	base := extensionRe.ReplaceAllString(name, "")
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	base = whitespaceRe.ReplaceAllString(strings.TrimSpace(base), " ")

	words := strings.Split(base, " ")
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	r := []rune(strings.ToLower(w))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// ToSlug reduces text to a URL and JS-identifier safe token: lowercase,
// extension stripped, every run of non-alphanumerics collapsed to a single
// dash. An input with no usable characters yields "scene".
func ToSlug(text string) string {
	s := strings.ToLower(text)
	s = extensionRe.ReplaceAllString(s, "")
	s = nonSlugRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "scene"
	}
	return s
}

// HasAllowedExtension reports whether the filename's extension, compared
// case-insensitively and without the leading dot, is in the allowed set.
func HasAllowedExtension(name string, allowed []string) bool {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return false
	}
	ext := strings.ToLower(name[idx+1:])
	for _, a := range allowed {
		if ext == strings.ToLower(a) {
			return true
		}
	}
	return false
}
