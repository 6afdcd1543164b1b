package assets

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// Index maps bare asset filenames to the path they are served under.
// It stands in for the bundler's asset manifest: products reference images
// by logical name ("margherita", "garlic-bread.png") and the index decides
// whether such a file actually exists.
type Index struct {
	byName map[string]string
}

// NewIndex builds an index from explicit filename -> served-path pairs.
func NewIndex(files map[string]string) *Index {
	byName := make(map[string]string, len(files))
	for name, served := range files {
		byName[name] = served
	}
	return &Index{byName: byName}
}

// NewIndexFromFS walks an asset directory and serves every file under
// baseURL. Walk errors skip the entry rather than failing the whole index.
func NewIndexFromFS(fsys fs.FS, baseURL string) (*Index, error) {
	byName := make(map[string]string)
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		name := path.Base(p)
		byName[name] = strings.TrimRight(baseURL, "/") + "/" + filepath.ToSlash(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Index{byName: byName}, nil
}

func isAbsoluteURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Resolve maps a logical image reference onto a served asset path.
// Absolute URLs pass through untouched. Otherwise the index is probed with
// the bare name, then .png, .jpg, .jpeg appended, in that order.
// A miss returns ("", false); callers show a placeholder.
func (ix *Index) Resolve(logical string) (string, bool) {
	if logical == "" {
		return "", false
	}
	if isAbsoluteURL(logical) {
		return logical, true
	}
	target := strings.TrimPrefix(logical, "./")
	for _, candidate := range []string{target, target + ".png", target + ".jpg", target + ".jpeg"} {
		if served, ok := ix.byName[candidate]; ok {
			return served, true
		}
	}
	return "", false
}
