package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Run is one recorded generate run.
type Run struct {
	ID               string       `json:"id"`
	Seq              int64        `json:"seq"`
	SchemaPath       string       `json:"schema_path"`
	SchemaHash       string       `json:"schema_hash"` // hash of the schema and generation options
	OutputPath       string       `json:"output_path"`
	OutputHash       string       `json:"output_hash"`
	Package          string       `json:"package"`
	MessageCount     int          `json:"message_count"`
	GeneratorVersion string       `json:"generator_version"`
	CreatedAt        time.Time    `json:"created_at"`
	Messages         []RunMessage `json:"messages,omitempty"`
}

// RunMessage is one row of a run's message identifier table.
type RunMessage struct {
	Name      string `json:"name"`
	Frequency string `json:"frequency"`
	Number    uint32 `json:"number"`
}

// RecordRun inserts run and its messages in one transaction. ID, Seq and
// CreatedAt are assigned here; the stored run is returned.
func (s *Store) RecordRun(ctx context.Context, run Run) (Run, error) {
	run.ID = s.ids.Generate()
	run.CreatedAt = s.now().UTC()
	run.MessageCount = len(run.Messages)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM runs`).Scan(&run.Seq); err != nil {
		return Run{}, fmt.Errorf("record run: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, seq, schema_path, schema_hash, output_path, output_hash, package, message_count, generator_version, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.Seq,
		run.SchemaPath,
		run.SchemaHash,
		run.OutputPath,
		run.OutputHash,
		run.Package,
		run.MessageCount,
		run.GeneratorVersion,
		run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}

	for i, m := range run.Messages {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO run_messages (run_id, position, name, frequency, number)
			VALUES (?, ?, ?, ?, ?)
		`, run.ID, i, m.Name, m.Frequency, int64(m.Number))
		if err != nil {
			return Run{}, fmt.Errorf("record run message %s: %w", m.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("record run: commit: %w", err)
	}
	return run, nil
}

const runColumns = `id, seq, schema_path, schema_hash, output_path, output_hash, package, message_count, generator_version, created_at`

func scanRun(row interface{ Scan(...any) error }) (Run, error) {
	var (
		run     Run
		created string
	)
	err := row.Scan(
		&run.ID,
		&run.Seq,
		&run.SchemaPath,
		&run.SchemaHash,
		&run.OutputPath,
		&run.OutputHash,
		&run.Package,
		&run.MessageCount,
		&run.GeneratorVersion,
		&created,
	)
	if err != nil {
		return Run{}, err
	}
	run.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Run{}, fmt.Errorf("parse created_at of run %s: %w", run.ID, err)
	}
	return run, nil
}

// LatestRun returns the most recent run that wrote outputPath, with its
// messages. ok is false when there is none.
func (s *Store) LatestRun(ctx context.Context, outputPath string) (run Run, ok bool, err error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+runColumns+`
		FROM runs
		WHERE output_path = ?
		ORDER BY seq DESC
		LIMIT 1
	`, outputPath)

	run, err = scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, fmt.Errorf("latest run: %w", err)
	}

	run.Messages, err = s.RunMessages(ctx, run.ID)
	if err != nil {
		return Run{}, false, err
	}
	return run, true, nil
}

// ListRuns returns up to limit runs, newest first, without their messages.
// A limit of zero or less returns every run.
//
// Returns an empty slice (not nil) if no runs exist.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+runColumns+`
		FROM runs
		ORDER BY seq DESC
		LIMIT ?
	`, limit)
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

// RunMessages returns the message identifier table of a run in schema
// order.
func (s *Store) RunMessages(ctx context.Context, runID string) ([]RunMessage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, frequency, number
		FROM run_messages
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query run messages: %w", err)
	}
	defer rows.Close()

	messages := []RunMessage{}
	for rows.Next() {
		var (
			m      RunMessage
			number int64
		)
		if err := rows.Scan(&m.Name, &m.Frequency, &number); err != nil {
			return nil, fmt.Errorf("scan run message: %w", err)
		}
		m.Number = uint32(number)
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run messages: %w", err)
	}
	return messages, nil
}
