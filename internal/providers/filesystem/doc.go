// Package filesystem implements the explorer's filesystem engine.
//
// This package is organized into specialized modules:
//   - paths: current directory state and path argument resolution
//   - directory: sorted directory listings and subtree usage
//   - search: substring search (optionally recursive) and glob matching
//   - operations: create, copy, move, delete and chmod
//   - permissions: mode bitset with symbolic and octal codecs
//   - metadata: ownership, size and content inspection
//
// All operations:
//   - Take absolute paths produced by a Resolver
//   - Return *Error values carrying an ErrorKind
//   - Release every file and directory handle before returning
//
// Listing and search are best effort: children whose metadata cannot be read
// are skipped, while a failure to open the top-level directory is returned.
//
// Example Usage:
//
//	r := filesystem.NewResolverFromWorkingDir()
//	listing, err := filesystem.List(r.Current(), true)
package filesystem
