package filesystem

import (
	"errors"
	"fmt"
	"io/fs"

	"golang.org/x/sys/unix"
)

// ErrorKind classifies filesystem failures for callers and result codes.
type ErrorKind string

const (
	KindInvalidArgument       ErrorKind = "INVALID_ARGUMENT"
	KindNotFound              ErrorKind = "NOT_FOUND"
	KindNotADirectory         ErrorKind = "NOT_A_DIRECTORY"
	KindDirectoryUnreadable   ErrorKind = "DIRECTORY_UNREADABLE"
	KindDirectoryNotEmpty     ErrorKind = "DIRECTORY_NOT_EMPTY"
	KindAlreadyExists         ErrorKind = "ALREADY_EXISTS"
	KindPermissionDenied      ErrorKind = "PERMISSION_DENIED"
	KindSourceNotFound        ErrorKind = "SOURCE_NOT_FOUND"
	KindDestinationUnwritable ErrorKind = "DESTINATION_UNWRITABLE"
	KindMoveFailed            ErrorKind = "MOVE_FAILED"
	KindIOError               ErrorKind = "IO_ERROR"
)

// ErrInvalidFormat is wrapped by ParseOctal failures.
var ErrInvalidFormat = errors.New("invalid permission format")

// Error is the error type returned by every operation in this package.
type Error struct {
	Kind ErrorKind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", msg, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of err, or KindIOError if err was not produced here.
func KindOf(err error) ErrorKind {
	var fsErr *Error
	if errors.As(err, &fsErr) {
		return fsErr.Kind
	}
	return KindIOError
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

func newError(kind ErrorKind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

func invalidArgument(op, format string, args ...interface{}) *Error {
	return newError(KindInvalidArgument, op, "", fmt.Errorf(format, args...))
}

// classify maps an OS error onto the taxonomy.
func classify(op, path string, err error) *Error {
	var fsErr *Error
	if errors.As(err, &fsErr) {
		return fsErr
	}

	kind := KindIOError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, unix.ENOTEMPTY):
		kind = KindDirectoryNotEmpty
	case errors.Is(err, fs.ErrExist):
		kind = KindAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		kind = KindPermissionDenied
	case errors.Is(err, unix.ENOTDIR):
		kind = KindNotADirectory
	}
	return newError(kind, op, path, err)
}
