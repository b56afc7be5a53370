// Package deploy stages web release artifacts into the serving directory.
package deploy

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/gemtools/internal/logger"
)

// ErrSameFile is returned when source and destination are the same file.
var ErrSameFile = errors.New("source and destination are the same file")

// DefaultFiles are the artifacts produced by the emscripten release build.
var DefaultFiles = []string{"index.html", "App.js", "App.wasm"}

// Copier copies a fixed list of files from SrcDir to DstDir.
type Copier struct {
	SrcDir string
	DstDir string
	Files  []string
}

// Run copies Files in order, overwriting existing destinations. It stops at
// the first failure without undoing earlier copies and returns the names
// copied so far.
func (c *Copier) Run() ([]string, error) {
	copied := make([]string, 0, len(c.Files))
	for _, name := range c.Files {
		src := filepath.Join(c.SrcDir, name)
		dst := filepath.Join(c.DstDir, name)

		if err := CopyFile(src, dst); err != nil {
			return copied, fmt.Errorf("deploying %s: %w", name, err)
		}

		logger.Debug("copied artifact", zap.String("src", src), zap.String("dst", dst))
		copied = append(copied, name)
	}
	return copied, nil
}

// CopyFile copies src to dst and then gives dst the permission bits and
// modification time of src.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}

	// Opening dst with O_TRUNC would empty src before it is read.
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return fmt.Errorf("%w: %s and %s", ErrSameFile, src, dst)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	// OpenFile only applies the mode to newly created files.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
