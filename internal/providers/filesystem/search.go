package filesystem

import (
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sys/unix"
)

// dirID identifies a directory independently of the path used to reach it.
type dirID struct {
	dev uint64
	ino uint64
}

// statDir stats path following symlinks and reports whether it is a directory.
func statDir(path string) (dirID, bool, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return dirID{}, false, err
	}
	id := dirID{dev: uint64(st.Dev), ino: uint64(st.Ino)}
	return id, st.Mode&unix.S_IFMT == unix.S_IFDIR, nil
}

// Search collects the absolute paths of entries below root whose name contains
// pattern. Results follow pre-order traversal: the matches directly inside a
// directory precede anything found in its subdirectories. Each directory is
// entered at most once per call, so symlink cycles terminate.
func Search(root, pattern string, recursive bool) ([]string, error) {
	rootID, isDir, err := statDir(root)
	if err != nil {
		return nil, newError(KindDirectoryUnreadable, "search", root, err)
	}
	if !isDir {
		return nil, newError(KindNotADirectory, "search", root, nil)
	}

	results := []string{}
	visited := map[dirID]struct{}{rootID: {}}
	stack := []string{root}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		names, err := readNames(dir)
		if err != nil {
			if dir == root {
				return nil, err
			}
			continue
		}

		var subdirs []string
		for _, name := range names {
			full := joinChild(dir, name)
			if strings.Contains(name, pattern) {
				results = append(results, full)
			}
			if !recursive {
				continue
			}

			id, isDir, err := statDir(full)
			if err != nil || !isDir {
				continue
			}
			if _, seen := visited[id]; seen {
				continue
			}
			visited[id] = struct{}{}
			subdirs = append(subdirs, full)
		}

		// Push in reverse so the first subdirectory is walked next.
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	return results, nil
}

// Glob matches a doublestar pattern such as "**/*.go" relative to root and
// returns absolute paths.
func Glob(root, pattern string) ([]string, error) {
	if pattern == "" {
		return nil, invalidArgument("glob", "pattern is empty")
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, invalidArgument("glob", "malformed pattern %q", pattern)
	}
	if _, isDir, err := statDir(root); err != nil || !isDir {
		if err == nil {
			return nil, newError(KindNotADirectory, "glob", root, nil)
		}
		return nil, newError(KindDirectoryUnreadable, "glob", root, err)
	}

	matches, err := doublestar.Glob(os.DirFS(root), strings.TrimPrefix(pattern, rootPath))
	if err != nil {
		return nil, newError(KindIOError, "glob", root, err)
	}

	results := make([]string, 0, len(matches))
	for _, m := range matches {
		results = append(results, joinChild(root, m))
	}
	return results, nil
}
