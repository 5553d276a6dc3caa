// Package library discovers playable files under a music directory.
package library

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// DefaultExtensions lists the formats the player can decode.
var DefaultExtensions = []string{"mp3", "flac", "wav", "ogg"}

// Formats is a set of enabled file extensions, lowercase and without dot.
type Formats map[string]struct{}

// NewFormats builds a Formats set. Extensions may be given with or without
// a leading dot, in any case.
func NewFormats(exts ...string) Formats {
	f := make(Formats, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			f[ext] = struct{}{}
		}
	}
	return f
}

// Match reports whether path has an enabled extension.
func (f Formats) Match(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return false
	}
	_, ok := f[ext]
	return ok
}

// ScanOptions controls which files Scan returns.
type ScanOptions struct {
	Extensions []string // enabled formats; DefaultExtensions if empty
	Exclude    []string // globs matched against the slash-separated path relative to root
}

// Scan walks root recursively and returns the matching regular files
// sorted by path. Returns nil and no error when nothing matches.
func Scan(root string, opts ScanOptions) ([]string, error) {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	formats := NewFormats(exts...)

	excludes, err := compileExcludes(opts.Exclude)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("scan %s: %w", path, walkErr)
		}
		if path != root && excluded(excludes, root, path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if formats.Match(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}

func compileExcludes(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func excluded(globs []glob.Glob, root, path string) bool {
	if len(globs) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, g := range globs {
		if g.Match(rel) {
			return true
		}
	}
	return false
}
