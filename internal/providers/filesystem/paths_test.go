package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewResolver tests resolver construction
func TestNewResolver(t *testing.T) {
	root := t.TempDir()

	r, err := NewResolver(root)
	require.NoError(t, err)
	assert.Equal(t, root, r.Current())

	_, err = NewResolver("relative/dir")
	assert.True(t, IsKind(err, KindInvalidArgument))

	_, err = NewResolver(filepath.Join(root, "missing"))
	assert.True(t, IsKind(err, KindNotFound))

	file := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = NewResolver(file)
	assert.True(t, IsKind(err, KindNotADirectory))
}

// TestResolve tests path argument resolution
func TestResolve(t *testing.T) {
	tests := []struct {
		cwd   string
		input string
		want  string
	}{
		{"/home/user", "docs", "/home/user/docs"},
		{"/home/user", "/etc", "/etc"},
		{"/home/user", "..", "/home"},
		{"/home/user", "", "/home"},
		{"/home", "..", "/"},
		{"/", "..", "/"},
		{"/", "", "/"},
		{"/", "etc", "/etc"},
		{"/home/user", "a/../b", "/home/user/a/../b"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, resolve(tt.cwd, tt.input), "cwd=%q input=%q", tt.cwd, tt.input)
	}
}

// TestResolveName tests that name arguments may not be empty
func TestResolveName(t *testing.T) {
	r := &Resolver{cwd: "/srv"}

	_, err := r.ResolveName("")
	assert.True(t, IsKind(err, KindInvalidArgument))

	path, err := r.ResolveName("data")
	require.NoError(t, err)
	assert.Equal(t, "/srv/data", path)
}

// TestChangeDirectory tests moving between directories
func TestChangeDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "docs"), 0o755))

	r, err := NewResolver(root)
	require.NoError(t, err)

	cwd, err := r.ChangeDirectory("docs")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "docs"), cwd)
	assert.Equal(t, cwd, r.Current())

	cwd, err = r.ChangeDirectory("..")
	require.NoError(t, err)
	assert.Equal(t, root, cwd)

	cwd, err = r.ChangeDirectory(filepath.Join(root, "docs"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "docs"), cwd)
}

// TestChangeDirectoryTrimsTrailingSeparator tests that "docs/" is stored as "docs"
func TestChangeDirectoryTrimsTrailingSeparator(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs", "api"), 0o755))

	r, err := NewResolver(root + "/")
	require.NoError(t, err)
	assert.Equal(t, root, r.Current())

	cwd, err := r.ChangeDirectory("docs/")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "docs"), cwd)
	assert.Equal(t, filepath.Join(root, "docs", "api"), r.Resolve("api"))

	cwd, err = r.ChangeDirectory(filepath.Join(root, "docs", "api") + "//")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "docs", "api"), cwd)

	cwd, err = r.ChangeDirectory("/")
	require.NoError(t, err)
	assert.Equal(t, "/", cwd)
}

// TestChangeDirectoryAtRoot tests that the parent of the root is the root
func TestChangeDirectoryAtRoot(t *testing.T) {
	r, err := NewResolver("/")
	require.NoError(t, err)

	cwd, err := r.ChangeDirectory("..")
	require.NoError(t, err)
	assert.Equal(t, "/", cwd)

	cwd, err = r.ChangeDirectory("")
	require.NoError(t, err)
	assert.Equal(t, "/", cwd)
}

// TestChangeDirectoryFailureKeepsState tests that failed moves leave the current directory alone
func TestChangeDirectoryFailureKeepsState(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	r, err := NewResolver(root)
	require.NoError(t, err)

	cwd, err := r.ChangeDirectory("notes.txt")
	assert.True(t, IsKind(err, KindNotADirectory))
	assert.Equal(t, root, cwd)
	assert.Equal(t, root, r.Current())

	cwd, err = r.ChangeDirectory("missing")
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, root, cwd)
	assert.Equal(t, root, r.Current())
}

// TestParentOf tests segment based parent computation
func TestParentOf(t *testing.T) {
	assert.Equal(t, "/", parentOf("/"))
	assert.Equal(t, "/", parentOf("/a"))
	assert.Equal(t, "/a", parentOf("/a/b"))
	assert.Equal(t, "/a", parentOf("/a/b/"))
	assert.Equal(t, "/a/b", parentOf("//a//b//c"))
}
