// Package discover enumerates the source files that a conformance run
// should check.
package discover

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtensions is the extension allow-list used when no override is
// configured. It covers the C and C++ source and header extensions the tool
// was built to gate.
var DefaultExtensions = []string{".cpp", ".cc", ".cxx", ".c", ".h", ".hpp", ".hxx"}

// Options configures a traversal.
type Options struct {
	// Extensions is the extension allow-list (each entry including the
	// leading dot). Empty means DefaultExtensions.
	Extensions []string

	// NoIgnore disables .fmtignore processing.
	NoIgnore bool
}

// workItem is one pending path on the traversal work-list. Each item carries
// a snapshot of the ignore layers of the directories above it.
type workItem struct {
	path    string
	ignores []ignoreLayer
}

// Files walks root and returns every regular file beneath it whose extension
// is in the allow-list. A root that is itself a matching file yields that
// file. The traversal is iterative over an explicit work-list, so arbitrarily
// deep trees cannot exhaust the stack. Symlinks are followed with no cycle
// detection; the tool is expected to run over a bounded project tree.
func Files(root string, opts Options) ([]string, error) {
	exts := newExtSet(opts.Extensions)

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: root}
		}
		return nil, err
	}

	if !info.IsDir() {
		if exts.match(root) {
			return []string{root}, nil
		}
		return nil, nil
	}

	var files []string
	var layers []ignoreLayer
	if !opts.NoIgnore {
		layers = appendIgnoreLayer(nil, root)
	}
	stack := []workItem{{path: root, ignores: layers}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(item.path)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			child := filepath.Join(item.path, entry.Name())

			isDir := entry.IsDir()
			if entry.Type()&os.ModeSymlink != 0 {
				// Resolve symlinks so linked source trees are still checked.
				target, sErr := os.Stat(child)
				if sErr != nil {
					continue // broken symlink
				}
				isDir = target.IsDir()
			}

			if isDir {
				if isIgnored(item.ignores, child, true) {
					continue
				}
				childLayers := item.ignores
				if !opts.NoIgnore {
					childLayers = appendIgnoreLayer(item.ignores, child)
				}
				stack = append(stack, workItem{path: child, ignores: childLayers})
				continue
			}

			if !entry.Type().IsRegular() && entry.Type()&os.ModeSymlink == 0 {
				continue // sockets, fifos, devices
			}
			if !exts.match(child) {
				continue
			}
			if isIgnored(item.ignores, child, false) {
				continue
			}
			files = append(files, child)
		}
	}

	return files, nil
}

// extSet is an extension allow-list with O(1) membership tests.
type extSet map[string]struct{}

func newExtSet(exts []string) extSet {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	s := make(extSet, len(exts))
	for _, e := range exts {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		s[e] = struct{}{}
	}
	return s
}

// match reports whether the path's extension is in the allow-list.
// Paths with no extension never match.
func (s extSet) match(path string) bool {
	ext := filepath.Ext(path)
	if ext == "" {
		return false
	}
	_, ok := s[ext]
	return ok
}
