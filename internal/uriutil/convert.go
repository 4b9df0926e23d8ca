// Package uriutil converts between file:// URIs and file system paths.
package uriutil

import (
	"net/url"
	"path/filepath"
	"strings"
)

// PathToURI converts a file system path to a file:// URI. Relative paths
// are made absolute and each segment is percent-encoded:
//
//	/home/user/a b.scss -> file:///home/user/a%20b.scss
//	C:\proj             -> file:///C:/proj
func PathToURI(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	path = filepath.ToSlash(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return "file://" + strings.Join(segments, "/")
}

// URIToPath converts a file:// URI to a file system path, decoding
// percent-escapes. Anything that is not a file URI is stripped of a
// leading file:// and otherwise returned as is.
func URIToPath(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme != "file" {
		return filepath.FromSlash(dropDriveSlash(strings.TrimPrefix(uri, "file://")))
	}
	path := parsed.Path
	if parsed.Host != "" {
		path = "//" + parsed.Host + path
	}
	return filepath.FromSlash(dropDriveSlash(path))
}

// dropDriveSlash turns /C:/proj into C:/proj.
func dropDriveSlash(path string) string {
	if len(path) >= 3 && path[0] == '/' && path[2] == ':' {
		return path[1:]
	}
	return path
}
