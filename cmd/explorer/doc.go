// Command explorer browses and manages the local filesystem.
//
// Usage:
//
//	explorer ls -l
//	explorer --dir /var/log find -r .gz
//	explorer shell
package main
