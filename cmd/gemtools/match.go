package main

import (
	"path/filepath"
	"strings"
)

// matches reports whether name matches a lowercase glob pattern, falling back
// to a substring test when the pattern is not a glob.
func matches(pattern, name string) bool {
	lower := strings.ToLower(name)
	if ok, _ := filepath.Match(pattern, lower); ok {
		return true
	}
	return strings.Contains(lower, pattern)
}
