// Package batch reads transliteration jobs from line-oriented input.
package batch

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// Entry is one line of batch input
type Entry struct {
	Line   int
	Bangla string
	// Correction is set for "bangla = hindi" lines, which record feedback
	// instead of being transliterated.
	Correction string
}

// IsFeedback reports whether the entry is a correction.
func (e Entry) IsFeedback() bool {
	return e.Correction != ""
}

// ReadBatchFile reads entries from a file. Supports formats:
// - Bangla text only: "আমি ভাত খাই।" (will be transliterated)
// - With correction: "আমি ভাত খাই। = मैं भात खाता हूँ।" (recorded as feedback)
// Blank lines, lines starting with '#' and lines with an empty side of '='
// are skipped.
func ReadBatchFile(filename string) ([]Entry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read batch file")
	}
	defer f.Close()

	return ReadBatch(f)
}

// ReadBatch reads entries from r.
func ReadBatch(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		bangla, correction, found := strings.Cut(line, "=")
		if !found {
			entries = append(entries, Entry{Line: lineNo, Bangla: line})
			continue
		}

		bangla = strings.TrimSpace(bangla)
		correction = strings.TrimSpace(correction)
		if bangla == "" || correction == "" {
			continue
		}
		entries = append(entries, Entry{Line: lineNo, Bangla: bangla, Correction: correction})
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan batch input")
	}
	return entries, nil
}
