package embedder

import (
	"fmt"
	"os"
	"strings"
)

// Table maps embedded file names to their contents.
type Table map[string]string

// Get returns the contents stored under name, or "" if there is none.
func (t Table) Get(name string) string {
	return t[name]
}

// Load reads a generated file and parses it with Parse.
func Load(path, delim string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(string(data), delim)
}

// Parse is the inverse of Format.
func Parse(text, delim string) (Table, error) {
	t := make(Table)
	rest := text
	for rest != "" {
		var key, value string
		var err error

		if rest, err = expect(rest, "{ "); err != nil {
			return nil, err
		}
		if key, rest, err = parseLiteral(rest, delim); err != nil {
			return nil, err
		}
		if rest, err = expect(rest, ", "); err != nil {
			return nil, err
		}
		if value, rest, err = parseLiteral(rest, delim); err != nil {
			return nil, err
		}
		if rest, err = expect(rest, " }"); err != nil {
			return nil, err
		}

		if _, dup := t[key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrMalformed, key)
		}
		t[key] = value

		if rest == "" {
			break
		}
		if rest, err = expect(rest, Separator); err != nil {
			return nil, err
		}
		if rest == "" {
			return nil, fmt.Errorf("%w: trailing separator", ErrMalformed)
		}
	}
	return t, nil
}

func expect(s, prefix string) (string, error) {
	if !strings.HasPrefix(s, prefix) {
		return "", fmt.Errorf("%w: expected %q near %q", ErrMalformed, prefix, head(s))
	}
	return s[len(prefix):], nil
}

func parseLiteral(s, delim string) (value, rest string, err error) {
	open := "R\"" + delim + "("
	closing := ")" + delim + "\""

	if s, err = expect(s, open); err != nil {
		return "", "", err
	}
	end := strings.Index(s, closing)
	if end < 0 {
		return "", "", fmt.Errorf("%w: unterminated raw string", ErrMalformed)
	}
	return s[:end], s[end+len(closing):], nil
}

func head(s string) string {
	if len(s) > 16 {
		return s[:16]
	}
	return s
}
