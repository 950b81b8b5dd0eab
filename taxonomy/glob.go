package taxonomy

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern selects taxonomy files when loading a directory.
const DefaultPattern = "**/*.{yaml,yml,json}"

// LoadGlob loads every file under root matching pattern and combines their
// account types, in lexical file order, into one validated taxonomy.
// Use ** to match nested directories. An empty pattern means DefaultPattern.
func LoadGlob(root, pattern string) (*Taxonomy, error) {
	return LoadFS(os.DirFS(root), pattern)
}

// LoadFS is LoadGlob over an fs.FS.
func LoadFS(fsys fs.FS, pattern string) (*Taxonomy, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob error: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no taxonomy files match pattern: %s", pattern)
	}
	slices.Sort(matches)

	var types []AccountTypeConfig
	for _, name := range matches {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read taxonomy file: %w", err)
		}
		cfg, err := parseConfig(data, path.Ext(name))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		types = append(types, cfg.AccountTypes...)
	}

	return New(types...)
}
