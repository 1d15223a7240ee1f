package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Run is one recorded generation run.
type Run struct {
	ID             string `json:"id"`
	Seq            int64  `json:"seq"`
	Seed           uint64 `json:"seed"`
	Headers        int    `json:"headers"`
	Sources        int    `json:"sources"`
	HeaderFanIn    int    `json:"header_fan_in"`
	SourceFanIn    int    `json:"source_fan_in"`
	Root           string `json:"root"`
	ManifestDigest string `json:"manifest_digest"`
	CompileActions int    `json:"compile_actions"`
	Files          int64  `json:"files"`
}

// ErrRunNotFound is returned by GetRun for unknown IDs.
var ErrRunNotFound = errors.New("run not found")

const runColumns = `id, seq, seed, headers, sources, header_fan_in, source_fan_in,
	root, manifest_digest, compile_actions, files`

// RecordRun appends run to the ledger. A missing ID is filled with a new
// UUID; Seq is always assigned by the store. The stored run is returned.
func (s *Store) RecordRun(ctx context.Context, run Run) (Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM runs`).Scan(&run.Seq); err != nil {
		return Run{}, fmt.Errorf("record run: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (`+runColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.Seq,
		strconv.FormatUint(run.Seed, 10),
		run.Headers,
		run.Sources,
		run.HeaderFanIn,
		run.SourceFanIn,
		run.Root,
		run.ManifestDigest,
		run.CompileActions,
		run.Files,
	)
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("record run: commit: %w", err)
	}
	return run, nil
}

// GetRun returns the run with the given ID.
func (s *Store) GetRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// ListRuns returns up to limit runs, newest first. limit <= 0 means all.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY seq DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return s.queryRuns(ctx, query, args...)
}

// RunsByDigest returns every run whose manifest had the given digest,
// oldest first.
func (s *Store) RunsByDigest(ctx context.Context, digest string) ([]Run, error) {
	return s.queryRuns(ctx, `SELECT `+runColumns+` FROM runs WHERE manifest_digest = ? ORDER BY seq ASC`, digest)
}

func (s *Store) queryRuns(ctx context.Context, query string, args ...any) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		run  Run
		seed string
	)
	err := row.Scan(
		&run.ID,
		&run.Seq,
		&seed,
		&run.Headers,
		&run.Sources,
		&run.HeaderFanIn,
		&run.SourceFanIn,
		&run.Root,
		&run.ManifestDigest,
		&run.CompileActions,
		&run.Files,
	)
	if err != nil {
		return Run{}, err
	}
	run.Seed, err = strconv.ParseUint(seed, 10, 64)
	if err != nil {
		return Run{}, fmt.Errorf("invalid seed %q: %w", seed, err)
	}
	return run, nil
}
