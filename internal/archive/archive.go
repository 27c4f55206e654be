package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
)

// ArchiveCorpus writes a submitted correction corpus to a timestamped file
// in archiveDir and returns its path.
func ArchiveCorpus(archiveDir, corpus string) (string, error) {
	if corpus == "" {
		return "", errors.New("refusing to archive an empty corpus")
	}

	// Create archive directory if it doesn't exist
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", errors.Wrap(err, "failed to create archive directory")
	}

	now := time.Now()
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("corpus-%s.txt", now.Format("20060102-150405")))

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("corpus-%s.txt", now.Format("20060102-150405.000000")))
	}

	f, err := os.OpenFile(archivePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create corpus archive %s", archivePath)
	}
	defer f.Close()

	if _, err := f.WriteString(corpus + "\n"); err != nil {
		return "", errors.Wrap(err, "failed to write corpus archive")
	}

	return archivePath, nil
}

// Corpus is an archived corpus file.
type Corpus struct {
	Path    string
	ModTime time.Time
	Size    int64
}

// ListCorpora returns the archived corpus files in archiveDir ordered by
// modification time, oldest first. A missing directory holds no corpora.
func ListCorpora(archiveDir string) ([]Corpus, error) {
	matches, err := filepath.Glob(filepath.Join(archiveDir, "corpus-*.txt"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list corpus archives")
	}

	corpora := make([]Corpus, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to stat corpus archive %s", path)
		}
		corpora = append(corpora, Corpus{Path: path, ModTime: info.ModTime(), Size: info.Size()})
	}

	sort.SliceStable(corpora, func(i, j int) bool {
		return corpora[i].ModTime.Before(corpora[j].ModTime)
	})
	return corpora, nil
}
