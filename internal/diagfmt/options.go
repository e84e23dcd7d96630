package diagfmt

import (
	"path/filepath"
	"strings"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto shows paths relative to BaseDir when they are inside it.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of errors.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	BaseDir  string
	// Context выводит строку исходника с кареткой
	Context bool
}

// JSONOpts configures JSON output of errors.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         PathMode
	BaseDir          string
	Max              int // обрезка вывода
}

// formatPath renders path according to mode.
func formatPath(path string, mode PathMode, baseDir string) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	case PathModeBasename:
		if i := strings.LastIndexAny(path, `/\`); i >= 0 {
			return path[i+1:]
		}
	case PathModeRelative, PathModeAuto:
		if baseDir == "" {
			return path
		}
		rel, err := filepath.Rel(baseDir, path)
		if err != nil || (mode == PathModeAuto && strings.HasPrefix(rel, "..")) {
			return path
		}
		return rel
	}
	return path
}
