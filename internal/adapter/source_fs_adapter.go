// Package adapter contains the infrastructure the conversion workflow runs
// on: file system access, Ruby parsing, runtime data and report storage.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/src-d/enry/v2"

	m "github.com/mouse-blink/respec/internal/model"
)

const (
	specSuffix   = "_spec.rb"
	rubyLanguage = "Ruby"
)

// SourceFSAdapter abstracts the file system operations the workflow needs so
// that it can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get collects the spec files under roots. A root ending in `/...` is
	// scanned recursively. Paths matching any exclude pattern are skipped.
	Get(roots []m.Path, exclude []string) ([]m.Source, error)

	// Walk traverses root. When recursive is false only the root directory
	// itself is listed.
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the content of an existing file, keeping its mode.
	WriteFile(path m.Path, content []byte) error

	// HashFile returns the hex SHA-256 of the file at path.
	HashFile(path m.Path) (string, error)

	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback of filepath.Walk.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local file system.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects Ruby spec files for the provided roots, deduplicated and in
// walk order.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, exclude []string) ([]m.Source, error) {
	if len(roots) == 0 {
		return []m.Source{}, nil
	}

	excludes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})

	var sources []m.Source

	collect := func(root, path string) error {
		source, ok, err := a.processFilePath(root, path, excludes)
		if err != nil || !ok {
			return err
		}

		if _, exists := seen[string(source.Origin)]; exists {
			return nil
		}

		seen[string(source.Origin)] = struct{}{}
		sources = append(sources, source)

		return nil
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := collect(filepath.Dir(rootPath), rootPath); err != nil {
				return nil, err
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				return nil
			}

			return collect(rootPath, path)
		})
		if err != nil {
			return nil, err
		}
	}

	return sources, nil
}

// Walk iterates over files under root, optionally descending into
// subdirectories. Vendored directories are never entered.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && path != rootStr && (!recursive || isVendored(rootStr, path, true)) {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile overwrites path with content, preserving its permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte) error {
	info, err := os.Stat(string(path))
	if err != nil {
		return err
	}

	return os.WriteFile(string(path), content, info.Mode().Perm())
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func (a *LocalSourceFSAdapter) processFilePath(root, path string, excludes []*regexp.Regexp) (m.Source, bool, error) {
	if !strings.HasSuffix(path, specSuffix) {
		return m.Source{}, false, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return m.Source{}, false, err
	}

	for _, re := range excludes {
		if re.MatchString(absPath) {
			return m.Source{}, false, nil
		}
	}

	if isVendored(root, absPath, false) {
		return m.Source{}, false, nil
	}

	content, err := a.ReadFile(m.Path(absPath))
	if err != nil {
		return m.Source{}, false, nil //nolint:nilerr // unreadable files are skipped
	}

	if enry.GetLanguage(filepath.Base(absPath), content) != rubyLanguage {
		return m.Source{}, false, nil
	}

	hash, err := a.HashFile(m.Path(absPath))
	if err != nil {
		return m.Source{}, false, fmt.Errorf("hash error for %s: %w", absPath, err)
	}

	return m.Source{Origin: m.Path(absPath), Hash: hash}, true, nil
}

// isVendored reports whether path looks like third-party code. Only the part
// below root is considered so that the location of the project itself never
// counts.
func isVendored(root, path string, dir bool) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	rel = filepath.ToSlash(rel)
	if dir {
		rel += "/"
	}

	return enry.IsVendor(rel)
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rest, ok := strings.CutSuffix(rootStr, "/..."); ok {
		return rest, true
	}

	if rootStr == "..." {
		return ".", true
	}

	return rootStr, false
}
