package config

import (
	"path/filepath"
	"strings"
)

// ResolvePath expands a leading ~ to home. Paths that are still relative
// afterwards are taken relative to home.
func ResolvePath(path string, home string) string {
	switch {
	case path == "~":
		path = home
	case strings.HasPrefix(path, "~/"):
		path = filepath.Join(home, path[2:])
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(home, path)
	}

	return path
}
