// Package extract runs CSS files through a server-side style sheet and
// emits the serialized style-element markup a server-rendered document
// embeds ahead of hydration.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"

	"github.com/recera/styled/internal/cssom"
	"github.com/recera/styled/pkg/sheet"
	"github.com/recera/styled/pkg/styling"
)

// Config controls one extraction run.
type Config struct {
	// Includes are doublestar glob patterns selecting input CSS files.
	Includes []string
	// Validate routes every rule through positional insertion with rule
	// validation, dropping malformed rules instead of passing them on.
	Validate bool
	// Compat selects the text-node variant in validate mode.
	Compat bool
	// Minify compacts each file's CSS before injection.
	Minify bool
	// Capacity overrides the sheet's per-tag component capacity.
	Capacity int
}

// Result summarizes an extraction run.
type Result struct {
	// HTML is the serialized sheet: one style block per tag.
	HTML string
	// Files lists the inputs that were injected, in injection order.
	Files []string
	// Components is the number of distinct component ids injected.
	Components int
	// Skipped lists inputs whose content the sheet had already seen.
	Skipped []string
}

// Run injects every matched CSS file into a fresh sheet, one component
// id per file, and serializes the sheet. Files are injected in sorted
// path order so output is reproducible.
func Run(cfg Config) (*Result, error) {
	files, err := matchFiles(cfg.Includes)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no CSS files match %v", cfg.Includes)
	}

	s := newRunSheet(cfg)

	var m *minify.M
	if cfg.Minify {
		m = minify.New()
		m.AddFunc("text/css", mincss.Minify)
	}

	res := &Result{}
	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		content := string(raw)
		if m != nil {
			minified, err := m.String("text/css", content)
			if err != nil {
				return nil, fmt.Errorf("minifying %s: %w", path, err)
			}
			content = minified
		}

		hash := styling.Hash(content)
		if _, seen := s.NameForHash(hash); seen {
			res.Skipped = append(res.Skipped, path)
			continue
		}
		id := componentID(path)
		if err := s.Inject(id, cssom.SplitRules(content), hash, styling.Name(content)); err != nil {
			return nil, fmt.Errorf("injecting %s: %w", path, err)
		}
		res.Files = append(res.Files, path)
		res.Components++
	}

	res.HTML = s.HTML()
	return res, nil
}

func newRunSheet(cfg Config) *sheet.StyleSheet {
	opts := sheet.Options{
		Capacity:    cfg.Capacity,
		ForceServer: true,
		Compat:      cfg.Compat,
	}
	if cfg.Validate {
		return sheet.NewValidating(opts)
	}
	return sheet.New(opts)
}

func matchFiles(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad include pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// componentID derives a stable component id from a file path: the base
// name without extension, prefixed so ids from different trees with the
// same base name stay distinct via their directory.
func componentID(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	dir := filepath.Base(filepath.Dir(path))
	if dir == "." || dir == string(filepath.Separator) {
		return base
	}
	return dir + "/" + base
}
