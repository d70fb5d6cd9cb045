// Package storage persists quiz leads (optional email capture) in SQLite.
// Lead capture is an isolated side effect: nothing in the scoring path
// depends on it.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/scentlab/fragrance-match/internal/domain"
)

type LeadStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*LeadStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &LeadStore{db: db}, nil
}

func (s *LeadStore) Close() error { return s.db.Close() }

func (s *LeadStore) EnsureSchema() error {
	const createTable = `
CREATE TABLE IF NOT EXISTS leads (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL,
  utm_source TEXT NOT NULL DEFAULT '',
  utm_campaign TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP NOT NULL
);
`
	if _, err := s.db.Exec(createTable); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_leads_email ON leads(email);`); err != nil {
		return err
	}
	return nil
}

// SaveLead stores a lead, assigning an id and timestamp when missing.
func (s *LeadStore) SaveLead(l domain.Lead) (domain.Lead, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`
INSERT INTO leads (id, email, utm_source, utm_campaign, created_at)
VALUES (?, ?, ?, ?, ?)
`, l.ID, l.Email, l.UTMSource, l.UTMCampaign, l.CreatedAt)
	if err != nil {
		return domain.Lead{}, fmt.Errorf("insert lead: %w", err)
	}
	return l, nil
}

func (s *LeadStore) CountLeads() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM leads`).Scan(&n)
	return n, err
}

func (s *LeadStore) ListLeads(limit, offset int) ([]domain.Lead, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.Query(`
SELECT id, email, utm_source, utm_campaign, created_at
FROM leads
ORDER BY created_at, id
LIMIT ? OFFSET ?
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Lead
	for rows.Next() {
		var l domain.Lead
		if err := rows.Scan(&l.ID, &l.Email, &l.UTMSource, &l.UTMCampaign, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
