package main

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// resolveGlobs expands glob patterns into a sorted, de-duplicated list of
// regular files. Patterns containing "**" recurse into subdirectories;
// plain patterns go through filepath.Glob.
func resolveGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, pattern := range patterns {
		if strings.Contains(pattern, "**") {
			matches, err := recursiveGlob(pattern)
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				add(m)
			}
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if isRegularFile(m) {
				add(m)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// recursiveGlob walks from the pattern's fixed prefix and keeps files whose
// slash path matches the pattern, with "**" spanning any number of path
// segments.
func recursiveGlob(pattern string) ([]string, error) {
	pattern = filepath.ToSlash(pattern)

	root := "."
	if idx := strings.Index(pattern, "**"); idx > 0 {
		prefix := strings.TrimSuffix(pattern[:idx], "/")
		if prefix != "" {
			root = prefix
		}
	}

	var matches []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directories are skipped, not fatal; the engine
			// reports unreadable files individually.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if matchDoubleStar(pattern, filepath.ToSlash(p)) {
			matches = append(matches, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return matches, nil
}

// matchDoubleStar matches a slash-separated path against a pattern where
// "**" matches zero or more whole segments and other segments use
// path.Match semantics.
func matchDoubleStar(pattern, name string) bool {
	return matchSegments(strings.Split(pattern, "/"), strings.Split(name, "/"))
}

func matchSegments(pat, segs []string) bool {
	if len(pat) == 0 {
		return len(segs) == 0
	}

	if pat[0] == "**" {
		// "**" consumes zero or more segments.
		for skip := 0; skip <= len(segs); skip++ {
			if matchSegments(pat[1:], segs[skip:]) {
				return true
			}
		}
		return false
	}

	if len(segs) == 0 {
		return false
	}
	ok, err := path.Match(pat[0], segs[0])
	if err != nil || !ok {
		return false
	}
	return matchSegments(pat[1:], segs[1:])
}

func isRegularFile(p string) bool {
	fi, err := os.Stat(p)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}
