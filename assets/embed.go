package assets

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
)

//go:embed images
var assetsFS embed.FS

// Embedded returns the build-time image tree rooted at images/.
func Embedded() fs.FS {
	sub, err := fs.Sub(assetsFS, "images")
	if err != nil {
		return assetsFS
	}
	return sub
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "images/"); ok {
		s = after
	}
	return s
}
