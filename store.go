package studioweb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested submission does not exist.
var ErrNotFound = errors.New("studioweb: not found")

// Store wraps a SQLite database holding contact form submissions.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the CLI read while the site writes; writers wait on the busy
	// timeout instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS contact_submissions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL,
    message TEXT NOT NULL,
    ip TEXT NOT NULL DEFAULT '',
    user_agent TEXT NOT NULL DEFAULT '',
    page TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_contact_submissions_created_at ON contact_submissions (created_at);
`)
	return err
}

// SaveSubmission inserts sub and returns its id. A zero CreatedAt is set to
// the current time.
func (s *Store) SaveSubmission(ctx context.Context, sub ContactSubmission) (int64, error) {
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_submissions (first_name, last_name, email, message, ip, user_agent, page, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.FirstName, sub.LastName, sub.Email, sub.Message, sub.IP, sub.UserAgent, sub.Page,
		sub.CreatedAt.UTC().Format(createdLayout))
	if err != nil {
		return 0, fmt.Errorf("studioweb: save submission: %w", err)
	}
	return res.LastInsertId()
}

// createdLayout is fixed-width so created_at sorts lexically.
const createdLayout = "2006-01-02T15:04:05.000000000Z07:00"

const submissionColumns = `id, first_name, last_name, email, message, ip, user_agent, page, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (ContactSubmission, error) {
	var sub ContactSubmission
	var created string
	if err := row.Scan(&sub.ID, &sub.FirstName, &sub.LastName, &sub.Email, &sub.Message,
		&sub.IP, &sub.UserAgent, &sub.Page, &created); err != nil {
		return ContactSubmission{}, err
	}
	t, err := time.Parse(createdLayout, created)
	if err != nil {
		return ContactSubmission{}, fmt.Errorf("studioweb: submission %d: bad created_at %q: %w", sub.ID, created, err)
	}
	sub.CreatedAt = t
	return sub, nil
}

// ListSubmissions returns the newest submissions first. limit <= 0 returns
// all of them.
func (s *Store) ListSubmissions(ctx context.Context, limit int) ([]ContactSubmission, error) {
	q := `SELECT ` + submissionColumns + ` FROM contact_submissions ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("studioweb: list submissions: %w", err)
	}
	defer rows.Close()

	var subs []ContactSubmission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// GetSubmission returns a single submission by id.
func (s *Store) GetSubmission(ctx context.Context, id int64) (ContactSubmission, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+submissionColumns+` FROM contact_submissions WHERE id = ?`, id)
	sub, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ContactSubmission{}, ErrNotFound
	}
	return sub, err
}

// DeleteSubmission removes a submission by id.
func (s *Store) DeleteSubmission(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contact_submissions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("studioweb: delete submission: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
