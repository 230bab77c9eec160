package filesystem

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	rootPath  = "/"
	parentRef = ".."
)

// Resolver owns the current directory and resolves path arguments against it.
//
// Relative arguments are appended verbatim: "a/../b" is passed to the
// filesystem as written rather than being collapsed lexically.
type Resolver struct {
	mu  sync.RWMutex
	cwd string
}

// NewResolver creates a resolver rooted at start, which must be an existing
// absolute directory.
func NewResolver(start string) (*Resolver, error) {
	if !strings.HasPrefix(start, rootPath) {
		return nil, invalidArgument("resolve", "start directory %q is not absolute", start)
	}
	info, err := os.Stat(start)
	if err != nil {
		return nil, classify("resolve", start, err)
	}
	if !info.IsDir() {
		return nil, newError(KindNotADirectory, "resolve", start, nil)
	}
	return &Resolver{cwd: trimSeparators(start)}, nil
}

// NewResolverFromWorkingDir starts at the process working directory, or at the
// filesystem root when it cannot be determined.
func NewResolverFromWorkingDir() *Resolver {
	if wd, err := os.Getwd(); err == nil {
		if r, err := NewResolver(wd); err == nil {
			return r
		}
	}
	return &Resolver{cwd: rootPath}
}

// Current returns the current directory.
func (r *Resolver) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cwd
}

// Resolve turns a path argument into an absolute path. An empty argument and
// ".." both name the parent of the current directory.
func (r *Resolver) Resolve(input string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return resolve(r.cwd, input)
}

// ResolveName resolves an argument that must name a file or directory.
func (r *Resolver) ResolveName(input string) (string, error) {
	if input == "" {
		return "", invalidArgument("resolve", "path argument is empty")
	}
	return r.Resolve(input), nil
}

// ChangeDirectory moves the current directory to path. The state is left
// untouched on failure.
func (r *Resolver) ChangeDirectory(path string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	target := resolve(r.cwd, path)
	info, err := os.Stat(target)
	if err != nil {
		return r.cwd, classify("change directory", target, err)
	}
	if !info.IsDir() {
		return r.cwd, newError(KindNotADirectory, "change directory", target,
			fmt.Errorf("%s is not a directory", path))
	}

	r.cwd = trimSeparators(target)
	return r.cwd, nil
}

func resolve(cwd, input string) string {
	switch {
	case input == "" || input == parentRef:
		return parentOf(cwd)
	case strings.HasPrefix(input, rootPath):
		return input
	default:
		return joinChild(cwd, input)
	}
}

// parentOf strips the last segment of an absolute path.
func parentOf(dir string) string {
	segments := splitSegments(dir)
	if len(segments) <= 1 {
		return rootPath
	}
	return rootPath + strings.Join(segments[:len(segments)-1], rootPath)
}

func splitSegments(dir string) []string {
	parts := strings.Split(dir, rootPath)
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// trimSeparators drops trailing separators, keeping the root itself.
func trimSeparators(dir string) string {
	trimmed := strings.TrimRight(dir, rootPath)
	if trimmed == "" {
		return rootPath
	}
	return trimmed
}

// joinChild appends name to dir with exactly one separator between them.
func joinChild(dir, name string) string {
	if strings.HasSuffix(dir, rootPath) {
		return dir + name
	}
	return dir + rootPath + name
}
