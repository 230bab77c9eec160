package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// List lists the immediate children of dir, split into directories and files.
// Children whose metadata cannot be read are skipped.
func List(dir string, detailed bool) (*Listing, error) {
	names, err := readNames(dir)
	if err != nil {
		return nil, err
	}

	listing := &Listing{
		Path:        dir,
		Directories: []Entry{},
		Files:       []Entry{},
	}
	for _, name := range names {
		info, err := os.Stat(joinChild(dir, name))
		if err != nil {
			continue
		}

		entry := newEntry(name, info, detailed)
		if entry.IsDir() {
			listing.Directories = append(listing.Directories, entry)
		} else {
			listing.Files = append(listing.Files, entry)
		}
	}

	slices.SortFunc(listing.Directories, byName)
	slices.SortFunc(listing.Files, byName)
	return listing, nil
}

// readNames returns the child names of dir in ascending order. The directory
// handle is released before returning.
func readNames(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, newError(KindDirectoryUnreadable, "open directory", dir, err)
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, newError(KindDirectoryUnreadable, "read directory", dir, err)
	}
	slices.Sort(names)
	return names, nil
}

// Usage sums the sizes of all regular entries below dir. Symbolic links are
// not followed.
func Usage(ctx context.Context, dir string) (*DirectoryUsage, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, classify("usage", dir, err)
	}
	if !info.IsDir() {
		return nil, newError(KindNotADirectory, "usage", dir, nil)
	}

	var bytes, files, dirs atomic.Int64
	conf := fastwalk.Config{Follow: false}

	err = fastwalk.Walk(&conf, dir, func(p string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if p == dir {
			return nil
		}
		if d.IsDir() {
			dirs.Add(1)
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return nil
		}
		files.Add(1)
		bytes.Add(fi.Size())
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, newError(KindDirectoryUnreadable, "usage", dir, err)
	}

	return &DirectoryUsage{
		Path:        dir,
		Bytes:       bytes.Load(),
		Size:        FormatSize(bytes.Load()),
		Files:       files.Load(),
		Directories: dirs.Load(),
	}, nil
}

func byName(a, b Entry) int {
	return strings.Compare(a.Name, b.Name)
}
