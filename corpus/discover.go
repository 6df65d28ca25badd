package corpus

import (
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover walks root and returns the paths (root joined with the
// match, so relative when root is relative) of files matching any of
// include that don't also match any of exclude, sorted for
// deterministic ordering across runs.
func Discover(root string, include, exclude []string) ([]string, error) {
	seen := make(map[string]struct{})
	for _, pattern := range include {
		globPattern := filepath.Join(root, pattern)
		matches, err := doublestar.FilepathGlob(globPattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			seen[m] = struct{}{}
		}
	}

	paths := make([]string, 0, len(seen))
	for path := range seen {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		excluded := false
		for _, pattern := range exclude {
			matched, err := doublestar.Match(pattern, rel)
			if err == nil && matched {
				excluded = true
				break
			}
		}
		if !excluded {
			paths = append(paths, path)
		}
	}

	sort.Strings(paths)
	return paths, nil
}
