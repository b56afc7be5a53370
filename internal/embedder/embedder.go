// Package embedder turns a directory of shader sources into a C++ initializer
// list of { name, contents } raw string literal pairs.
//
// The generated text is meant to be #included inside the braces of a
// std::unordered_map<std::string, std::string> so the web build can serve
// shader files without a filesystem.
package embedder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/gemtools/internal/logger"
)

// Separator joins consecutive pairs in the generated output.
const Separator = ",\n"

// MaxDelimiterLen is the longest raw string delimiter C++ accepts.
const MaxDelimiterLen = 16

var (
	// ErrDelimiterCollision is returned when a string contains the closing
	// sequence of the raw literal it would be wrapped in.
	ErrDelimiterCollision = errors.New("raw string delimiter collision")

	// ErrBadDelimiter is returned for delimiters a C++ compiler rejects.
	ErrBadDelimiter = errors.New("invalid raw string delimiter")

	// ErrMalformed is returned by Parse for text that Format would not produce.
	ErrMalformed = errors.New("malformed embedded table")
)

// Entry is one embedded shader file.
type Entry struct {
	Name     string
	Contents string
}

// Options describes a single embedding run.
type Options struct {
	InputDir   string
	Extension  string
	OutputPath string
	Delimiter  string
}

// Scan reads every regular file directly inside dir whose extension is ext.
// Subdirectories are not descended into. Entries are sorted by name so the
// output does not depend on directory listing order.
func Scan(dir, ext string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if !de.Type().IsRegular() && !isRegularLink(dir, de) {
			continue
		}
		if filepath.Ext(de.Name()) != ext {
			continue
		}

		path := filepath.Join(dir, de.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		logger.Debug("matched shader", zap.String("file", path), zap.Int("bytes", len(data)))
		entries = append(entries, Entry{Name: de.Name(), Contents: string(data)})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// isRegularLink reports whether de is a symlink resolving to a regular file.
func isRegularLink(dir string, de os.DirEntry) bool {
	if de.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, de.Name()))
	return err == nil && info.Mode().IsRegular()
}

// Literal wraps s in a C++ raw string literal using delim.
func Literal(s, delim string) (string, error) {
	if err := ValidateDelimiter(delim); err != nil {
		return "", err
	}
	if strings.Contains(s, ")"+delim+"\"") {
		return "", fmt.Errorf("%w: text contains )%s\"", ErrDelimiterCollision, delim)
	}
	return "R\"" + delim + "(" + s + ")" + delim + "\"", nil
}

// ValidateDelimiter checks delim against the C++ raw string rules: at most
// MaxDelimiterLen characters from the basic source character set, excluding
// space, parentheses, backslash and control characters.
func ValidateDelimiter(delim string) error {
	if len(delim) > MaxDelimiterLen {
		return fmt.Errorf("%w: %q is longer than %d characters", ErrBadDelimiter, delim, MaxDelimiterLen)
	}
	for _, r := range delim {
		if r <= ' ' || r >= 0x7f || strings.ContainsRune("()\\$@`", r) {
			return fmt.Errorf("%w: %q contains %q", ErrBadDelimiter, delim, r)
		}
	}
	return nil
}

// Format renders entries as initializer pairs joined by Separator. There is
// no trailing separator or newline.
func Format(entries []Entry, delim string) (string, error) {
	if err := ValidateDelimiter(delim); err != nil {
		return "", err
	}
	pairs := make([]string, 0, len(entries))
	for _, e := range entries {
		key, err := Literal(e.Name, delim)
		if err != nil {
			return "", fmt.Errorf("name of %s: %w", e.Name, err)
		}
		value, err := Literal(e.Contents, delim)
		if err != nil {
			return "", fmt.Errorf("contents of %s: %w", e.Name, err)
		}
		pairs = append(pairs, "{ "+key+", "+value+" }")
	}
	return strings.Join(pairs, Separator), nil
}

// Generate scans opts.InputDir and writes the formatted table to
// opts.OutputPath, returning the number of pairs written. Every input is read
// before the output is touched, so a failed run leaves an existing output
// file as it was.
func Generate(opts Options) (int, error) {
	if err := ValidateDelimiter(opts.Delimiter); err != nil {
		return 0, err
	}

	entries, err := Scan(opts.InputDir, opts.Extension)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		logger.Warn("no shaders matched",
			zap.String("dir", opts.InputDir),
			zap.String("extension", opts.Extension))
	}

	text, err := Format(entries, opts.Delimiter)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(opts.OutputPath), 0755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(opts.OutputPath, []byte(text), 0644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", opts.OutputPath, err)
	}

	return len(entries), nil
}
