// Package addressbook provides embedded runtime resources (the greeting banner)
// and an overlay filesystem that checks local disk first, falling back to embedded.
package addressbook

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed templates/greeting.txt
var rawTemplates embed.FS

// Templates is the embedded templates filesystem with the "templates/" prefix stripped.
var Templates = mustSub(rawTemplates, "templates")

// GreetingFile is the banner printed when an interactive session starts.
const GreetingFile = "greeting.txt"

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// Greeting returns the greeting banner, preferring localDir/greeting.txt over
// the embedded copy. Trailing newlines are trimmed.
func Greeting(localDir string) string {
	data, err := fs.ReadFile(OverlayFS(localDir, Templates), GreetingFile)
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(data), "\n")
}

// OverlayFS returns a filesystem that checks localDir on disk first,
// falling back to the embedded filesystem for files not found locally.
func OverlayFS(localDir string, embedded fs.FS) fs.FS {
	return overlayFS{localDir: localDir, embedded: embedded}
}

type overlayFS struct {
	localDir string
	embedded fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if o.localDir != "" {
		if f, err := os.Open(filepath.Join(o.localDir, filepath.FromSlash(name))); err == nil {
			return f, nil
		}
	}
	return o.embedded.Open(name)
}
