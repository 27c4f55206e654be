package feedback

import (
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/banglahindi/internal/nlp"
)

const schema = `
CREATE TABLE IF NOT EXISTS feedback_pairs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	bangla TEXT NOT NULL,
	hindi TEXT NOT NULL,
	created_at DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS corpus_submissions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	pair_count INTEGER NOT NULL,
	archive_path TEXT NOT NULL DEFAULT '',
	submitted_at DATETIME NOT NULL
);`

// Store persists pending pairs and the submission log.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the SQLite database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open feedback database %s", path)
	}

	store, err := NewStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewStore wraps an open database and creates the schema if needed.
func NewStore(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, errors.Wrap(err, "failed to create feedback schema")
	}
	return &Store{db: db}, nil
}

// Append stores a pending pair.
func (s *Store) Append(p nlp.Pair) error {
	_, err := s.db.Exec(
		`INSERT INTO feedback_pairs (bangla, hindi, created_at) VALUES (?, ?, ?)`,
		p.Bangla, p.Hindi, time.Now().UTC())
	if err != nil {
		return errors.Wrap(err, "failed to store feedback pair")
	}
	return nil
}

// Pending returns the stored pairs in insertion order.
func (s *Store) Pending() ([]nlp.Pair, error) {
	rows, err := s.db.Query(`SELECT bangla, hindi FROM feedback_pairs ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query feedback pairs")
	}
	defer rows.Close()

	var pairs []nlp.Pair
	for rows.Next() {
		var p nlp.Pair
		if err := rows.Scan(&p.Bangla, &p.Hindi); err != nil {
			return nil, errors.Wrap(err, "failed to scan feedback pair")
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read feedback pairs")
	}
	return pairs, nil
}

// Trim keeps the newest limit pending pairs and deletes the rest. It
// returns how many pairs were deleted.
func (s *Store) Trim(limit int) (int64, error) {
	res, err := s.db.Exec(
		`DELETE FROM feedback_pairs WHERE id NOT IN (SELECT id FROM feedback_pairs ORDER BY id DESC LIMIT ?)`, limit)
	if err != nil {
		return 0, errors.Wrap(err, "failed to trim feedback pairs")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "failed to trim feedback pairs")
	}
	return n, nil
}

// MarkSubmitted removes the remove oldest pending pairs and logs a
// submission of submitted pairs. remove is smaller than submitted when
// part of the corpus was trimmed while it was in flight.
func (s *Store) MarkSubmitted(submitted, remove int, archivePath string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM feedback_pairs WHERE id IN (SELECT id FROM feedback_pairs ORDER BY id LIMIT ?)`, remove); err != nil {
		return errors.Wrap(err, "failed to delete submitted pairs")
	}

	if _, err := tx.Exec(
		`INSERT INTO corpus_submissions (pair_count, archive_path, submitted_at) VALUES (?, ?, ?)`,
		submitted, archivePath, time.Now().UTC()); err != nil {
		return errors.Wrap(err, "failed to log submission")
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit submission")
	}
	return nil
}

// Submissions returns how many corpora were submitted and how many pairs
// they held in total.
func (s *Store) Submissions() (count int, pairs int, err error) {
	row := s.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(pair_count), 0) FROM corpus_submissions`)
	if err := row.Scan(&count, &pairs); err != nil {
		return 0, 0, errors.Wrap(err, "failed to count submissions")
	}
	return count, pairs, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
