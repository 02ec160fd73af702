package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/gedembed/matrix"
)

// Run describes one stored distance-matrix computation.
type Run struct {
	ID       string
	Dataset  string
	Created  time.Time
	Elapsed  time.Duration
	Rows     int
	Cols     int
	Failed   int
	TestIDs  []int
	TrainIDs []int
}

// SQLite is a run history backed by a single SQLite file.
// It is safe for concurrent use through database/sql.
type SQLite struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	dataset TEXT NOT NULL,
	created_ns INTEGER NOT NULL,
	elapsed_ns INTEGER NOT NULL,
	n_rows INTEGER NOT NULL,
	n_cols INTEGER NOT NULL,
	failed INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS run_ids (
	run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	axis TEXT NOT NULL,
	pos INTEGER NOT NULL,
	graph_id INTEGER NOT NULL,
	PRIMARY KEY (run_id, axis, pos)
);

CREATE TABLE IF NOT EXISTS cells (
	run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	row_idx INTEGER NOT NULL,
	col_idx INTEGER NOT NULL,
	value REAL,
	PRIMARY KEY (run_id, row_idx, col_idx)
);

CREATE INDEX IF NOT EXISTS idx_runs_dataset ON runs(dataset);
`

// Open creates or opens the database at path and ensures the schema.
func Open(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store.Open: failed to create directory: %w", err)
		}
	}

	// Pragmas in the DSN apply to every pooled connection.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("store.Open: failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store.Open: failed to create schema: %w", err)
	}

	return &SQLite{db: db, path: path}, nil
}

// Close closes the database.
func (s *SQLite) Close() error { return s.db.Close() }

// SaveRun stores run and every cell of m in one transaction and returns the
// run id (a new UUID when run.ID is empty). Rows/Cols are taken from m.
func (s *SQLite) SaveRun(ctx context.Context, run Run, m *matrix.Dense) (string, error) {
	testIDs, err := idsOrRange(run.TestIDs, m.Rows())
	if err != nil {
		return "", fmt.Errorf("SaveRun: test ids: %w", err)
	}
	trainIDs, err := idsOrRange(run.TrainIDs, m.Cols())
	if err != nil {
		return "", fmt.Errorf("SaveRun: train ids: %w", err)
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.Created.IsZero() {
		run.Created = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("SaveRun: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, dataset, created_ns, elapsed_ns, n_rows, n_cols, failed) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Dataset, run.Created.UnixNano(), int64(run.Elapsed), m.Rows(), m.Cols(), run.Failed,
	); err != nil {
		return "", fmt.Errorf("SaveRun: insert run: %w", err)
	}

	idStmt, err := tx.PrepareContext(ctx, `INSERT INTO run_ids (run_id, axis, pos, graph_id) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("SaveRun: %w", err)
	}
	defer idStmt.Close()
	for axis, ids := range map[string][]int{"test": testIDs, "train": trainIDs} {
		for pos, id := range ids {
			if _, err := idStmt.ExecContext(ctx, run.ID, axis, pos, id); err != nil {
				return "", fmt.Errorf("SaveRun: insert %s id: %w", axis, err)
			}
		}
	}

	cellStmt, err := tx.PrepareContext(ctx, `INSERT INTO cells (run_id, row_idx, col_idx, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("SaveRun: %w", err)
	}
	defer cellStmt.Close()
	for i := 0; i < m.Rows(); i++ {
		for j, v := range m.Row(i) {
			val := sql.NullFloat64{Float64: v, Valid: !math.IsNaN(v)}
			if _, err := cellStmt.ExecContext(ctx, run.ID, i, j, val); err != nil {
				return "", fmt.Errorf("SaveRun: insert cell (%d,%d): %w", i, j, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("SaveRun: commit: %w", err)
	}

	return run.ID, nil
}

// DeleteRun removes a run; its ids and cells go with it through ON DELETE CASCADE.
func (s *SQLite) DeleteRun(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("DeleteRun(%q): %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteRun(%q): %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("DeleteRun(%q): %w", id, ErrRunNotFound)
	}

	return nil
}

// LoadRun reads a run and its matrix back.
func (s *SQLite) LoadRun(ctx context.Context, id string) (Run, *matrix.Dense, error) {
	run := Run{ID: id}
	var created, elapsed int64
	err := s.db.QueryRowContext(ctx,
		`SELECT dataset, created_ns, elapsed_ns, n_rows, n_cols, failed FROM runs WHERE id = ?`, id,
	).Scan(&run.Dataset, &created, &elapsed, &run.Rows, &run.Cols, &run.Failed)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, nil, fmt.Errorf("LoadRun(%s): %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, nil, fmt.Errorf("LoadRun(%s): %w", id, err)
	}
	run.Created = time.Unix(0, created)
	run.Elapsed = time.Duration(elapsed)

	run.TestIDs = make([]int, run.Rows)
	run.TrainIDs = make([]int, run.Cols)
	rows, err := s.db.QueryContext(ctx, `SELECT axis, pos, graph_id FROM run_ids WHERE run_id = ?`, id)
	if err != nil {
		return Run{}, nil, fmt.Errorf("LoadRun(%s): %w", id, err)
	}
	for rows.Next() {
		var axis string
		var pos, gid int
		if err := rows.Scan(&axis, &pos, &gid); err != nil {
			rows.Close()
			return Run{}, nil, fmt.Errorf("LoadRun(%s): %w", id, err)
		}
		dst := run.TestIDs
		if axis == "train" {
			dst = run.TrainIDs
		}
		if pos < 0 || pos >= len(dst) {
			rows.Close()
			return Run{}, nil, fmt.Errorf("LoadRun(%s): %s id at %d: %w", id, axis, pos, ErrShape)
		}
		dst[pos] = gid
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Run{}, nil, fmt.Errorf("LoadRun(%s): %w", id, err)
	}

	m, err := matrix.NewDense(run.Rows, run.Cols)
	if err != nil {
		return Run{}, nil, fmt.Errorf("LoadRun(%s): %w", id, err)
	}
	cells, err := s.db.QueryContext(ctx, `SELECT row_idx, col_idx, value FROM cells WHERE run_id = ?`, id)
	if err != nil {
		return Run{}, nil, fmt.Errorf("LoadRun(%s): %w", id, err)
	}
	defer cells.Close()
	for cells.Next() {
		var i, j int
		var v sql.NullFloat64
		if err := cells.Scan(&i, &j, &v); err != nil {
			return Run{}, nil, fmt.Errorf("LoadRun(%s): %w", id, err)
		}
		x := math.NaN()
		if v.Valid {
			x = v.Float64
		}
		if err := m.Set(i, j, x); err != nil {
			return Run{}, nil, fmt.Errorf("LoadRun(%s): %v: %w", id, err, ErrShape)
		}
	}
	if err := cells.Err(); err != nil {
		return Run{}, nil, fmt.Errorf("LoadRun(%s): %w", id, err)
	}

	return run, m, nil
}

// ListRuns returns stored runs of dataset (all datasets when empty), newest
// first. TestIDs/TrainIDs are not populated.
func (s *SQLite) ListRuns(ctx context.Context, dataset string) ([]Run, error) {
	q := `SELECT id, dataset, created_ns, elapsed_ns, n_rows, n_cols, failed FROM runs`
	var args []any
	if dataset != "" {
		q += ` WHERE dataset = ?`
		args = append(args, dataset)
	}
	q += ` ORDER BY created_ns DESC, id`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("ListRuns: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var created, elapsed int64
		if err := rows.Scan(&r.ID, &r.Dataset, &created, &elapsed, &r.Rows, &r.Cols, &r.Failed); err != nil {
			return nil, fmt.Errorf("ListRuns: %w", err)
		}
		r.Created = time.Unix(0, created)
		r.Elapsed = time.Duration(elapsed)
		out = append(out, r)
	}

	return out, rows.Err()
}
