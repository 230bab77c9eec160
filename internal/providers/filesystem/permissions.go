package filesystem

import (
	"fmt"
	"io/fs"
)

// Mode is a fixed-width permission bitset: nine rwx bits for owner, group and
// other plus a directory flag. Setuid, setgid and sticky bits are not carried.
type Mode uint16

const (
	OtherExecute Mode = 1 << iota
	OtherWrite
	OtherRead
	GroupExecute
	GroupWrite
	GroupRead
	OwnerExecute
	OwnerWrite
	OwnerRead
	TypeDirectory

	// PermMask selects the nine permission bits.
	PermMask Mode = 0o777
)

// ModeOf converts a Go file mode into a Mode.
func ModeOf(m fs.FileMode) Mode {
	mode := Mode(m.Perm())
	if m.IsDir() {
		mode |= TypeDirectory
	}
	return mode
}

func (m Mode) IsDir() bool             { return m&TypeDirectory != 0 }
func (m Mode) IsOwnerReadable() bool   { return m&OwnerRead != 0 }
func (m Mode) IsOwnerWritable() bool   { return m&OwnerWrite != 0 }
func (m Mode) IsOwnerExecutable() bool { return m&OwnerExecute != 0 }
func (m Mode) IsGroupReadable() bool   { return m&GroupRead != 0 }
func (m Mode) IsGroupWritable() bool   { return m&GroupWrite != 0 }
func (m Mode) IsGroupExecutable() bool { return m&GroupExecute != 0 }
func (m Mode) IsOtherReadable() bool   { return m&OtherRead != 0 }
func (m Mode) IsOtherWritable() bool   { return m&OtherWrite != 0 }
func (m Mode) IsOtherExecutable() bool { return m&OtherExecute != 0 }

// Perm returns only the permission bits.
func (m Mode) Perm() Mode {
	return m & PermMask
}

// FileMode returns the permission bits as an fs.FileMode suitable for chmod.
func (m Mode) FileMode() fs.FileMode {
	return fs.FileMode(m.Perm())
}

// Symbolic renders the mode in ls format, e.g. "drwxr-xr-x".
func (m Mode) Symbolic() string {
	buf := make([]byte, 0, 10)
	buf = append(buf, flag(m.IsDir(), 'd'))

	checks := [9]struct {
		set    bool
		letter byte
	}{
		{m.IsOwnerReadable(), 'r'},
		{m.IsOwnerWritable(), 'w'},
		{m.IsOwnerExecutable(), 'x'},
		{m.IsGroupReadable(), 'r'},
		{m.IsGroupWritable(), 'w'},
		{m.IsGroupExecutable(), 'x'},
		{m.IsOtherReadable(), 'r'},
		{m.IsOtherWritable(), 'w'},
		{m.IsOtherExecutable(), 'x'},
	}
	for _, c := range checks {
		buf = append(buf, flag(c.set, c.letter))
	}
	return string(buf)
}

// Octal renders the permission bits as exactly three octal digits.
func (m Mode) Octal() string {
	return fmt.Sprintf("%03o", uint16(m.Perm()))
}

func (m Mode) String() string {
	return m.Symbolic()
}

// ParseOctal decodes a three digit octal permission string such as "755".
func ParseOctal(s string) (Mode, error) {
	if len(s) != 3 {
		return 0, newError(KindInvalidArgument, "parse permissions", "",
			fmt.Errorf("%w: %q must be exactly 3 octal digits", ErrInvalidFormat, s))
	}

	var mode Mode
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '7' {
			return 0, newError(KindInvalidArgument, "parse permissions", "",
				fmt.Errorf("%w: %q is not an octal digit", ErrInvalidFormat, c))
		}
		mode = mode*8 + Mode(c-'0')
	}
	return mode, nil
}

func flag(set bool, letter byte) byte {
	if set {
		return letter
	}
	return '-'
}
