package loader

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// Masks is a compiled set of file-name masks such as "*.pas". Matching
// looks at the base name only and ignores case.
type Masks struct {
	globs []glob.Glob
}

// CompileMasks compiles masks; blank entries are skipped.
func CompileMasks(masks []string) (*Masks, error) {
	m := &Masks{globs: make([]glob.Glob, 0, len(masks))}
	for _, mask := range masks {
		mask = strings.TrimSpace(mask)
		if mask == "" {
			continue
		}
		g, err := glob.Compile(strings.ToLower(mask))
		if err != nil {
			return nil, fmt.Errorf("invalid file mask %q: %w", mask, err)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// Match reports whether the base name of path matches a mask. Project
// option files (.dproj) never match.
func (m *Masks) Match(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	if filepath.Ext(base) == ".dproj" {
		return false
	}
	for _, g := range m.globs {
		if g.Match(base) {
			return true
		}
	}
	return false
}

// SplitSearchPath separates a trailing "**" segment: "src/**" searches src
// recursively, "src" only its top level.
func SplitSearchPath(searchPath string) (dir string, recursive bool) {
	clean := filepath.FromSlash(strings.ReplaceAll(searchPath, `\`, "/"))
	if filepath.Base(clean) == "**" {
		dir = filepath.Dir(clean)
		return dir, true
	}
	return clean, false
}

// ListFiles enumerates the files under searchPaths whose names match masks.
// The result is sorted and free of duplicates.
func ListFiles(searchPaths, masks []string) ([]string, error) {
	m, err := CompileMasks(masks)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, sp := range searchPaths {
		if strings.TrimSpace(sp) == "" {
			continue
		}
		root, recursive := SplitSearchPath(sp)
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && !recursive {
					return filepath.SkipDir
				}
				return nil
			}
			if m.Match(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("search path %q: %w", sp, err)
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}
