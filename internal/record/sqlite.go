package record

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"marker-tracker/internal/marker"
	"marker-tracker/pkg/geometry"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id     TEXT PRIMARY KEY,
	object     INTEGER NOT NULL,
	source     TEXT NOT NULL,
	started_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS markers (
	run_id  TEXT NOT NULL REFERENCES runs(run_id),
	frame   INTEGER NOT NULL,
	mark_id INTEGER NOT NULL,
	px      INTEGER NOT NULL,
	py      INTEGER NOT NULL,
	x       REAL NOT NULL,
	y       REAL NOT NULL,
	z       REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_markers_run_frame ON markers (run_id, frame);
`

// connPragmas are applied by the driver to every pooled connection.
var connPragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"foreign_keys(1)",
}

func dsn(path string) string {
	q := url.Values{"_pragma": connPragmas}
	return "file:" + path + "?" + q.Encode()
}

// SQLiteSink stores records in a SQLite database. Each tracker run gets its
// own row in runs so several videos can share one database.
type SQLiteSink struct {
	db    *sql.DB
	runID string
}

// OpenSQLite opens (or creates) the database at path and registers a new run.
func OpenSQLite(path string, object int, source string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	s := &SQLiteSink{db: db, runID: uuid.NewString()}
	_, err = db.Exec(`INSERT INTO runs (run_id, object, source, started_at) VALUES (?, ?, ?, ?)`,
		s.runID, object, source, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to register run: %w", err)
	}
	return s, nil
}

// RunID identifies the records written by this sink.
func (s *SQLiteSink) RunID() string {
	return s.runID
}

// Write stores one frame's records in a single transaction.
func (s *SQLiteSink) Write(records []marker.Record) error {
	if len(records) == 0 {
		return nil
	}

	ctx := context.Background()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO markers (run_id, frame, mark_id, px, py, x, y, z) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.ExecContext(ctx, s.runID, r.Frame, int(r.ID),
			r.Origin.X, r.Origin.Y, r.Offset.X, r.Offset.Y, r.Offset.Z)
		if err != nil {
			return fmt.Errorf("failed to insert frame %d marker %d: %w", r.Frame, r.ID, err)
		}
	}
	return tx.Commit()
}

// Records returns every record of a run ordered by frame.
func (s *SQLiteSink) Records(runID string) ([]marker.Record, error) {
	rows, err := s.db.Query(`
		SELECT m.frame, m.mark_id, m.px, m.py, m.x, m.y, m.z, r.object
		FROM markers m JOIN runs r ON r.run_id = m.run_id
		WHERE m.run_id = ?
		ORDER BY m.frame, m.rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var out []marker.Record
	for rows.Next() {
		var (
			r      marker.Record
			id     int
			px, py int
		)
		if err := rows.Scan(&r.Frame, &id, &px, &py, &r.Offset.X, &r.Offset.Y, &r.Offset.Z, &r.Object); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		r.ID = marker.ID(id)
		r.Origin = geometry.Pt(px, py)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the database.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
