package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"codeberg.org/snonux/banglahindi/internal/testutil"
)

func TestArchiveCorpus(t *testing.T) {
	tmpDir := t.TempDir()
	archiveDir := filepath.Join(tmpDir, "corpus")

	corpus := "Bangla: আমি\nHindi: मैं"
	path, err := ArchiveCorpus(archiveDir, corpus)
	if err != nil {
		t.Fatalf("ArchiveCorpus failed: %v", err)
	}

	// Check that archive directory was created
	if _, err := os.Stat(archiveDir); os.IsNotExist(err) {
		t.Error("Archive directory was not created")
	}

	// Verify the archived file name starts with "corpus-"
	name := filepath.Base(path)
	if !strings.HasPrefix(name, "corpus-") || !strings.HasSuffix(name, ".txt") {
		t.Errorf("Unexpected archive file name: %s", name)
	}

	// Verify timestamp format (should be corpus-YYYYMMDD-HHMMSS.txt)
	parts := strings.Split(strings.TrimSuffix(name, ".txt"), "-")
	if len(parts) < 3 || len(parts[1]) != 8 {
		t.Errorf("Invalid archive name format: %s", name)
	}

	testutil.AssertFileContent(t, path, []byte(corpus+"\n"))
}

func TestArchiveCorpus_Empty(t *testing.T) {
	archiveDir := filepath.Join(t.TempDir(), "corpus")
	if _, err := ArchiveCorpus(archiveDir, ""); err == nil {
		t.Error("Expected error for empty corpus")
	}
	testutil.AssertFileNotExists(t, archiveDir)
}

func TestArchiveCorpus_MultipleArchives(t *testing.T) {
	tmpDir := t.TempDir()

	// Archive twice to ensure unique names
	for i := 0; i < 2; i++ {
		// Small delay to ensure different timestamps
		if i == 1 {
			time.Sleep(10 * time.Millisecond)
		}

		if _, err := ArchiveCorpus(tmpDir, "corpus"); err != nil {
			t.Fatalf("ArchiveCorpus failed on iteration %d: %v", i, err)
		}
	}

	corpora, err := ListCorpora(tmpDir)
	if err != nil {
		t.Fatalf("ListCorpora failed: %v", err)
	}

	if len(corpora) != 2 {
		t.Fatalf("Expected 2 archives, got %d", len(corpora))
	}

	// Verify both archives have different names
	if corpora[0].Path == corpora[1].Path {
		t.Error("Archive names are not unique")
	}
}

func TestListCorpora_OrderedByModTime(t *testing.T) {
	tmpDir := t.TempDir()
	base := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	// The collision name sorts before the plain name but was written later.
	files := []struct {
		name string
		mod  time.Time
	}{
		{"corpus-20260102-150405.txt", base},
		{"corpus-20260102-150405.000123.txt", base.Add(time.Millisecond)},
		{"corpus-20260101-090000.txt", base.Add(-24 * time.Hour)},
	}
	for _, f := range files {
		path := filepath.Join(tmpDir, f.name)
		testutil.CreateTestFile(t, path, []byte("corpus\n"))
		if err := os.Chtimes(path, f.mod, f.mod); err != nil {
			t.Fatalf("Chtimes failed: %v", err)
		}
	}

	corpora, err := ListCorpora(tmpDir)
	if err != nil {
		t.Fatalf("ListCorpora failed: %v", err)
	}

	want := []string{
		"corpus-20260101-090000.txt",
		"corpus-20260102-150405.txt",
		"corpus-20260102-150405.000123.txt",
	}
	if len(corpora) != len(want) {
		t.Fatalf("Expected %d archives, got %d", len(want), len(corpora))
	}
	for i, name := range want {
		if got := filepath.Base(corpora[i].Path); got != name {
			t.Errorf("corpora[%d] = %s, want %s", i, got, name)
		}
		if corpora[i].Size != int64(len("corpus\n")) {
			t.Errorf("corpora[%d].Size = %d", i, corpora[i].Size)
		}
	}
}

func TestListCorpora_MissingDirectory(t *testing.T) {
	corpora, err := ListCorpora(filepath.Join(t.TempDir(), "nonexistent"))
	if err != nil {
		t.Fatalf("ListCorpora failed: %v", err)
	}
	if len(corpora) != 0 {
		t.Errorf("Expected no archives, got %v", corpora)
	}
}
