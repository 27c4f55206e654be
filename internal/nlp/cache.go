package nlp

import (
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// fileCache stores answers on disk under an md5 of their inputs.
type fileCache struct {
	dir string
}

func newFileCache(dir string) (*fileCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create cache directory")
	}
	return &fileCache{dir: dir}, nil
}

// path spreads entries over 256 subdirectories.
func (c *fileCache) path(kind, provider, text string) string {
	hash := md5.Sum([]byte(kind + "\x00" + provider + "\x00" + text))
	name := hex.EncodeToString(hash[:])
	return filepath.Join(c.dir, name[:2], name[2:]+".txt")
}

func (c *fileCache) get(kind, provider, text string) (string, bool) {
	data, err := os.ReadFile(c.path(kind, provider, text))
	if err != nil || len(data) == 0 {
		return "", false
	}
	return string(data), true
}

func (c *fileCache) put(kind, provider, text, value string) error {
	path := c.path(kind, provider, text)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "failed to create cache subdirectory")
	}
	if err := os.WriteFile(path, []byte(value), 0644); err != nil {
		return errors.Wrap(err, "failed to write cache entry")
	}
	return nil
}
