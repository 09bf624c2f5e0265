package discover

import (
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// IgnoreFile is the per-directory exclusion file. It uses gitignore syntax
// and applies to everything beneath the directory that contains it.
const IgnoreFile = ".fmtignore"

// ignoreLayer holds the compiled rules of one directory's ignore file.
// The underlying parser is immutable once compiled.
type ignoreLayer struct {
	dir    string
	parser *ignore.GitIgnore
}

// appendIgnoreLayer returns parents plus a layer for dir's ignore file.
// When dir has no ignore file (or it fails to parse) the parents slice is
// returned unchanged, so layers only accumulate where rules actually exist.
func appendIgnoreLayer(parents []ignoreLayer, dir string) []ignoreLayer {
	parser, err := ignore.CompileIgnoreFile(filepath.Join(dir, IgnoreFile))
	if err != nil {
		return parents
	}
	layers := make([]ignoreLayer, len(parents)+1)
	copy(layers, parents)
	layers[len(parents)] = ignoreLayer{dir: dir, parser: parser}
	return layers
}

// isIgnored reports whether any active layer excludes the path. Directory
// paths are matched with a trailing slash so directory-only patterns apply.
func isIgnored(layers []ignoreLayer, path string, isDir bool) bool {
	for _, layer := range layers {
		rel, err := filepath.Rel(layer.dir, path)
		if err != nil {
			continue
		}
		checkPath := filepath.ToSlash(rel)
		if isDir {
			checkPath += "/"
		}
		if layer.parser.MatchesPath(checkPath) {
			return true
		}
	}
	return false
}
