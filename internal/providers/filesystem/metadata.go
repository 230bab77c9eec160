package filesystem

import (
	"io"
	"io/fs"
	"mime"
	"os"
	"os/user"
	"strconv"
	"strings"
	"syscall"

	"github.com/gabriel-vasile/mimetype"
	"github.com/saintfish/chardet"
)

const (
	unknownName = "unknown"

	// charsetSample bounds how much of a file is read for charset detection.
	charsetSample = 4096
)

// InspectOptions controls the optional content sniffing done by Inspect.
type InspectOptions struct {
	DetectContent bool
}

// Inspect reports the permissions, ownership and size of path.
func Inspect(path string, opts InspectOptions) (*PermissionInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, classify("inspect", path, err)
	}

	mode := ModeOf(info.Mode())
	uid, gid := ownerIDs(info)
	result := &PermissionInfo{
		Path:     path,
		Name:     info.Name(),
		IsDir:    info.IsDir(),
		Symbolic: mode.Symbolic(),
		Octal:    mode.Octal(),
		Owner:    lookupUser(uid),
		Group:    lookupGroup(gid),
		Bytes:    info.Size(),
		Size:     FormatSize(info.Size()),
		Modified: info.ModTime(),
	}

	if opts.DetectContent && info.Mode().IsRegular() {
		result.MIMEType, result.Charset = sniff(path)
	}
	return result, nil
}

// sniff detects the MIME type of a file, and its charset when it is text.
// The charset parameter of the MIME type wins; chardet is consulted only
// when the type carries none. Failures leave the fields empty.
func sniff(path string) (string, string) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", ""
	}
	if !strings.HasPrefix(mtype.String(), "text/") {
		return mtype.String(), ""
	}
	if _, params, err := mime.ParseMediaType(mtype.String()); err == nil && params["charset"] != "" {
		return mtype.String(), strings.ToLower(params["charset"])
	}
	return mtype.String(), detectCharset(path)
}

func detectCharset(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	buf := make([]byte, charsetSample)
	n, err := io.ReadFull(f, buf)
	if n == 0 && err != nil {
		return ""
	}

	result, err := chardet.NewTextDetector().DetectBest(buf[:n])
	if err != nil || result == nil {
		return ""
	}
	return strings.ToLower(result.Charset)
}

func ownerIDs(info fs.FileInfo) (uint32, uint32) {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return st.Uid, st.Gid
	}
	return 0, 0
}

func lookupUser(uid uint32) string {
	u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		return unknownName
	}
	return u.Username
}

func lookupGroup(gid uint32) string {
	g, err := user.LookupGroupId(strconv.FormatUint(uint64(gid), 10))
	if err != nil {
		return unknownName
	}
	return g.Name
}
