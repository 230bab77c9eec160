package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInspect tests permission and ownership inspection
func TestInspect(t *testing.T) {
	root := t.TempDir()
	buildTree(t, root, map[string]string{"notes.txt": "hello world"})
	path := filepath.Join(root, "notes.txt")
	require.NoError(t, os.Chmod(path, 0o600))

	info, err := Inspect(path, InspectOptions{})
	require.NoError(t, err)

	assert.Equal(t, path, info.Path)
	assert.Equal(t, "notes.txt", info.Name)
	assert.False(t, info.IsDir)
	assert.Equal(t, "-rw-------", info.Symbolic)
	assert.Equal(t, "600", info.Octal)
	assert.Equal(t, int64(11), info.Bytes)
	assert.Equal(t, "11.00 B", info.Size)
	assert.NotEmpty(t, info.Owner)
	assert.NotEmpty(t, info.Group)
	assert.Empty(t, info.MIMEType)
	assert.Empty(t, info.Charset)
}

// TestInspectDirectory tests inspecting a directory
func TestInspectDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Chmod(root, 0o755))

	info, err := Inspect(root, InspectOptions{DetectContent: true})
	require.NoError(t, err)
	assert.True(t, info.IsDir)
	assert.Equal(t, "drwxr-xr-x", info.Symbolic)
	assert.Empty(t, info.MIMEType)
}

// TestInspectDetectContent tests MIME and charset sniffing
func TestInspectDetectContent(t *testing.T) {
	root := t.TempDir()
	buildTree(t, root, map[string]string{
		"plain.txt": strings.Repeat("the quick brown fox jumps over the lazy dog\n", 20),
		"image.png": "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR",
		"run.py":    "#!/usr/bin/env python\nprint('hello')\n",
	})

	text, err := Inspect(filepath.Join(root, "plain.txt"), InspectOptions{DetectContent: true})
	require.NoError(t, err)
	assert.Equal(t, "text/plain; charset=utf-8", text.MIMEType)
	assert.Equal(t, "utf-8", text.Charset)

	// No charset parameter on the type, so the content detector fills it in.
	script, err := Inspect(filepath.Join(root, "run.py"), InspectOptions{DetectContent: true})
	require.NoError(t, err)
	assert.Equal(t, "text/x-python", script.MIMEType)
	assert.NotEmpty(t, script.Charset)

	image, err := Inspect(filepath.Join(root, "image.png"), InspectOptions{DetectContent: true})
	require.NoError(t, err)
	assert.Equal(t, "image/png", image.MIMEType)
	assert.Empty(t, image.Charset)
}

// TestInspectMissing tests inspecting an absent path
func TestInspectMissing(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "missing"), InspectOptions{})
	assert.True(t, IsKind(err, KindNotFound))
}

// TestOwnerLookupFallback tests that unmapped IDs resolve to "unknown"
func TestOwnerLookupFallback(t *testing.T) {
	assert.Equal(t, "unknown", lookupUser(3999999999))
	assert.Equal(t, "unknown", lookupGroup(3999999999))
	assert.Equal(t, "unknown", Entry{UID: 3999999999}.Owner())
}
