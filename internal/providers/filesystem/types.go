package filesystem

import (
	"io/fs"
	"time"
)

// EntryKind distinguishes directories from everything else.
type EntryKind string

const (
	KindDirectory EntryKind = "directory"
	KindFile      EntryKind = "file"
)

// Entry represents one child of a listed directory
type Entry struct {
	Name        string     `json:"name" yaml:"name" toml:"name"`
	Kind        EntryKind  `json:"kind" yaml:"kind" toml:"kind"`
	Mode        Mode       `json:"-" yaml:"-" toml:"-"`
	Permissions string     `json:"permissions,omitempty" yaml:"permissions,omitempty" toml:"permissions,omitempty"`
	Octal       string     `json:"octal,omitempty" yaml:"octal,omitempty" toml:"octal,omitempty"`
	Size        int64      `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`
	HumanSize   string     `json:"human_size,omitempty" yaml:"human_size,omitempty" toml:"human_size,omitempty"`
	UID         uint32     `json:"uid,omitempty" yaml:"uid,omitempty" toml:"uid,omitempty"`
	GID         uint32     `json:"gid,omitempty" yaml:"gid,omitempty" toml:"gid,omitempty"`
	Modified    *time.Time `json:"modified,omitempty" yaml:"modified,omitempty" toml:"modified,omitempty"`
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// Owner resolves the owning user name, "unknown" if it has none.
func (e Entry) Owner() string {
	return lookupUser(e.UID)
}

// Group resolves the owning group name, "unknown" if it has none.
func (e Entry) Group() string {
	return lookupGroup(e.GID)
}

// Listing is the result of listing a directory
type Listing struct {
	Path        string  `json:"path" yaml:"path" toml:"path"`
	Directories []Entry `json:"directories" yaml:"directories" toml:"directories"`
	Files       []Entry `json:"files" yaml:"files" toml:"files"`
}

// Total returns the number of entries in both partitions.
func (l *Listing) Total() int {
	return len(l.Directories) + len(l.Files)
}

// PermissionInfo describes the permissions and ownership of one path
type PermissionInfo struct {
	Path     string    `json:"path" yaml:"path" toml:"path"`
	Name     string    `json:"name" yaml:"name" toml:"name"`
	IsDir    bool      `json:"is_dir" yaml:"is_dir" toml:"is_dir"`
	Symbolic string    `json:"permissions" yaml:"permissions" toml:"permissions"`
	Octal    string    `json:"octal" yaml:"octal" toml:"octal"`
	Owner    string    `json:"owner" yaml:"owner" toml:"owner"`
	Group    string    `json:"group" yaml:"group" toml:"group"`
	Bytes    int64     `json:"bytes" yaml:"bytes" toml:"bytes"`
	Size     string    `json:"size" yaml:"size" toml:"size"`
	Modified time.Time `json:"modified" yaml:"modified" toml:"modified"`
	MIMEType string    `json:"mime_type,omitempty" yaml:"mime_type,omitempty" toml:"mime_type,omitempty"`
	Charset  string    `json:"charset,omitempty" yaml:"charset,omitempty" toml:"charset,omitempty"`
}

// DirectoryUsage summarizes the space used below a directory
type DirectoryUsage struct {
	Path        string `json:"path" yaml:"path" toml:"path"`
	Bytes       int64  `json:"bytes" yaml:"bytes" toml:"bytes"`
	Size        string `json:"size" yaml:"size" toml:"size"`
	Files       int64  `json:"files" yaml:"files" toml:"files"`
	Directories int64  `json:"directories" yaml:"directories" toml:"directories"`
}

func newEntry(name string, info fs.FileInfo, detailed bool) Entry {
	entry := Entry{Name: name, Kind: KindFile}
	if info.IsDir() {
		entry.Kind = KindDirectory
	}
	if !detailed {
		return entry
	}

	entry.Mode = ModeOf(info.Mode())
	entry.Permissions = entry.Mode.Symbolic()
	entry.Octal = entry.Mode.Octal()
	modified := info.ModTime()
	entry.Modified = &modified
	if !entry.IsDir() {
		entry.Size = info.Size()
		entry.HumanSize = FormatSize(entry.Size)
	}
	entry.UID, entry.GID = ownerIDs(info)
	return entry
}
