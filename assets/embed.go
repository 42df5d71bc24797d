package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed layer/*.png sprites/*.png
var assetsFS embed.FS

// ErrAssetLoad marks an image that could not be read or decoded.
var ErrAssetLoad = errors.New("assets: load failed")

// Open returns the asset source rooted at dir, or the embedded art when dir is empty.
func Open(dir string) fs.FS {
	if dir == "" {
		return assetsFS
	}
	return os.DirFS(dir)
}

// LoadImage reads and decodes an image by assets-relative path.
func LoadImage(fsys fs.FS, path string) (image.Image, error) {
	clean := cleanAssetPath(path)
	if !fs.ValidPath(clean) || clean == "." {
		return nil, fmt.Errorf("%w: invalid path %q", ErrAssetLoad, path)
	}
	b, err := fs.ReadFile(fsys, clean)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrAssetLoad, path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrAssetLoad, path, err)
	}
	return img, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s = strings.TrimPrefix(s, "./")
	return strings.TrimPrefix(s, "assets/")
}
