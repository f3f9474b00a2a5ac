// Package store persists translation memory, the keep-verbatim glossary,
// and evaluation run history in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS translation_memory (
		id TEXT PRIMARY KEY,
		source_text TEXT NOT NULL,
		formal BOOLEAN NOT NULL DEFAULT FALSE,
		final_text TEXT NOT NULL,
		model TEXT,
		usage_count INTEGER DEFAULT 1,
		invalidated BOOLEAN DEFAULT FALSE,
		last_used TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(source_text, formal)
	);

	CREATE TABLE IF NOT EXISTS glossary (
		id TEXT PRIMARY KEY,
		term TEXT NOT NULL UNIQUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS evaluation_runs (
		id TEXT PRIMARY KEY,
		model TEXT NOT NULL,
		profile TEXT NOT NULL,
		total_cases INTEGER NOT NULL,
		successful INTEGER NOT NULL,
		failed INTEGER NOT NULL,
		overall_score REAL NOT NULL,
		report_path TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// normalizeKey makes cache lookups robust against Unicode composition and
// stray whitespace differences in the source text.
func normalizeKey(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}

// --- translation memory ---

// MemoryEntry is one cached translation.
type MemoryEntry struct {
	ID          string
	SourceText  string
	Formal      bool
	FinalText   string
	Model       string
	UsageCount  int
	Invalidated bool
	LastUsed    time.Time
	CreatedAt   time.Time
}

// MemoryStats summarizes the translation memory table.
type MemoryStats struct {
	TotalEntries   int
	ActiveEntries  int
	InvalidEntries int
	TotalUsage     int
}

// GetCachedTranslation returns the cached translation for sourceText at the
// given formality, bumping its usage counter. found is false on a miss or
// when the entry has been invalidated.
func (s *Store) GetCachedTranslation(ctx context.Context, sourceText string, formal bool) (string, bool, error) {
	key := normalizeKey(sourceText)

	var (
		id        string
		finalText string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, final_text FROM translation_memory
		 WHERE source_text = ? AND formal = ? AND invalidated = FALSE`,
		key, formal).Scan(&id, &finalText)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query translation memory: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE translation_memory
		 SET usage_count = usage_count + 1, last_used = CURRENT_TIMESTAMP
		 WHERE id = ?`, id)
	if err != nil {
		return "", false, fmt.Errorf("failed to update usage count: %w", err)
	}

	return finalText, true, nil
}

// SaveToMemory stores or refreshes a translation for sourceText.
func (s *Store) SaveToMemory(ctx context.Context, sourceText string, formal bool, finalText, model string) error {
	key := normalizeKey(sourceText)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO translation_memory (id, source_text, formal, final_text, model)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(source_text, formal) DO UPDATE SET
			final_text = excluded.final_text,
			model = excluded.model,
			invalidated = FALSE,
			last_used = CURRENT_TIMESTAMP`,
		uuid.New().String(), key, formal, finalText, model)
	if err != nil {
		return fmt.Errorf("failed to save to memory: %w", err)
	}
	return nil
}

// ListMemory returns all memory entries, most recently used first.
func (s *Store) ListMemory(ctx context.Context) ([]MemoryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_text, formal, final_text, COALESCE(model, ''),
			usage_count, invalidated, last_used, created_at
		 FROM translation_memory ORDER BY last_used DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list memory: %w", err)
	}
	defer rows.Close()

	var entries []MemoryEntry
	for rows.Next() {
		var e MemoryEntry
		if err := rows.Scan(&e.ID, &e.SourceText, &e.Formal, &e.FinalText, &e.Model,
			&e.UsageCount, &e.Invalidated, &e.LastUsed, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan memory entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteMemory removes one memory entry by ID.
func (s *Store) DeleteMemory(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM translation_memory WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete memory entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no memory entry with id %s", id)
	}
	return nil
}

// ClearMemory removes all memory entries and returns how many were deleted.
func (s *Store) ClearMemory(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM translation_memory`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear memory: %w", err)
	}
	return res.RowsAffected()
}

// Stats returns counters over the translation memory table.
func (s *Store) Stats(ctx context.Context) (MemoryStats, error) {
	var st MemoryStats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN invalidated THEN 0 ELSE 1 END), 0),
			COALESCE(SUM(CASE WHEN invalidated THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(usage_count), 0)
		 FROM translation_memory`).
		Scan(&st.TotalEntries, &st.ActiveEntries, &st.InvalidEntries, &st.TotalUsage)
	if err != nil {
		return st, fmt.Errorf("failed to compute stats: %w", err)
	}
	return st, nil
}

// --- glossary ---

// GlossaryEntry is a term kept untranslated verbatim in every run.
type GlossaryEntry struct {
	ID        string
	Term      string
	CreatedAt time.Time
}

// AddGlossaryTerm inserts a keep-verbatim term; adding an existing term is
// a no-op.
func (s *Store) AddGlossaryTerm(ctx context.Context, term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return fmt.Errorf("glossary term cannot be empty")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO glossary (id, term) VALUES (?, ?)
		 ON CONFLICT(term) DO NOTHING`,
		uuid.New().String(), norm.NFC.String(term))
	if err != nil {
		return fmt.Errorf("failed to add glossary term: %w", err)
	}
	return nil
}

// ListGlossaryTerms returns all glossary entries ordered by term.
func (s *Store) ListGlossaryTerms(ctx context.Context) ([]GlossaryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, term, created_at FROM glossary ORDER BY term`)
	if err != nil {
		return nil, fmt.Errorf("failed to list glossary: %w", err)
	}
	defer rows.Close()

	var entries []GlossaryEntry
	for rows.Next() {
		var e GlossaryEntry
		if err := rows.Scan(&e.ID, &e.Term, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan glossary entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteGlossaryTerm removes a glossary entry by ID.
func (s *Store) DeleteGlossaryTerm(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM glossary WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete glossary entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no glossary entry with id %s", id)
	}
	return nil
}

// --- evaluation runs ---

// EvaluationRun is the persisted summary of one accuracy run.
type EvaluationRun struct {
	ID           string
	Model        string
	Profile      string
	TotalCases   int
	Successful   int
	Failed       int
	OverallScore float64
	ReportPath   string
	CreatedAt    time.Time
}

// SaveEvaluationRun records a run summary. A missing ID is generated.
func (s *Store) SaveEvaluationRun(ctx context.Context, run EvaluationRun) (string, error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO evaluation_runs
			(id, model, profile, total_cases, successful, failed, overall_score, report_path)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Model, run.Profile, run.TotalCases, run.Successful,
		run.Failed, run.OverallScore, run.ReportPath)
	if err != nil {
		return "", fmt.Errorf("failed to save evaluation run: %w", err)
	}
	return run.ID, nil
}

// ListEvaluationRuns returns all recorded runs, newest first.
func (s *Store) ListEvaluationRuns(ctx context.Context) ([]EvaluationRun, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, model, profile, total_cases, successful, failed,
			overall_score, COALESCE(report_path, ''), created_at
		 FROM evaluation_runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluation runs: %w", err)
	}
	defer rows.Close()

	var runs []EvaluationRun
	for rows.Next() {
		var r EvaluationRun
		if err := rows.Scan(&r.ID, &r.Model, &r.Profile, &r.TotalCases, &r.Successful,
			&r.Failed, &r.OverallScore, &r.ReportPath, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
