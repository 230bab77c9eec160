package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

const (
	newFileMode os.FileMode = 0o644
	newDirMode  os.FileMode = 0o755
	copyMode    os.FileMode = 0o666
)

// Create creates an empty regular file. It fails if path already exists.
func Create(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, newFileMode)
	if err != nil {
		return classify("create file", path, err)
	}
	if err := f.Close(); err != nil {
		return classify("create file", path, err)
	}
	return nil
}

// CreateDirectory creates a single directory level; parents are not created.
func CreateDirectory(path string) error {
	if err := os.Mkdir(path, newDirMode); err != nil {
		return classify("create directory", path, err)
	}
	return nil
}

// Copy duplicates the contents of src into dst, creating or truncating dst.
// A failure part way through may leave dst partially written.
func Copy(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, newError(KindSourceNotFound, "copy", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, newError(KindSourceNotFound, "copy", src, err)
	}
	if info.IsDir() {
		return 0, newError(KindInvalidArgument, "copy", src, fmt.Errorf("%s is a directory", src))
	}
	if existing, err := os.Stat(dst); err == nil && os.SameFile(info, existing) {
		return 0, newError(KindInvalidArgument, "copy", dst, fmt.Errorf("%s and %s are the same file", src, dst))
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, copyMode)
	if err != nil {
		return 0, newError(KindDestinationUnwritable, "copy", dst, err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, newError(KindIOError, "copy", dst, err)
	}
	if err := out.Close(); err != nil {
		return n, newError(KindIOError, "copy", dst, err)
	}
	return n, nil
}

// Move renames src to dst. Both must be on the same volume; there is no
// copy-and-delete fallback.
func Move(src, dst string) error {
	if err := os.Rename(src, dst); err != nil {
		var errno syscall.Errno
		if errors.As(err, &errno) {
			return newError(KindMoveFailed, "move", src, fmt.Errorf("%w (%s)", err, unix.ErrnoName(errno)))
		}
		return newError(KindMoveFailed, "move", src, err)
	}
	return nil
}

// Delete removes a file, or a directory if it is empty, and reports which kind
// of entry was removed. Symbolic links are removed, never followed.
func Delete(path string) (EntryKind, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return "", classify("delete", path, err)
	}

	if info.IsDir() {
		if err := unix.Rmdir(path); err != nil {
			if errors.Is(err, unix.ENOTEMPTY) || errors.Is(err, unix.EEXIST) {
				return KindDirectory, newError(KindDirectoryNotEmpty, "delete", path, err)
			}
			return KindDirectory, classify("delete", path, &os.PathError{Op: "rmdir", Path: path, Err: err})
		}
		return KindDirectory, nil
	}

	if err := unix.Unlink(path); err != nil {
		return KindFile, classify("delete", path, &os.PathError{Op: "unlink", Path: path, Err: err})
	}
	return KindFile, nil
}

// SetPermissions applies the permission bits of mode to path.
func SetPermissions(path string, mode Mode) error {
	if err := os.Chmod(path, mode.FileMode()); err != nil {
		return classify("change permissions", path, err)
	}
	return nil
}
