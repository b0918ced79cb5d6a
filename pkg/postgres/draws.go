package postgres

import (
	"context"
	"fmt"

	"github.com/acampayo/mealdraw/pkg/db"
)

// GetDrawRuns retrieves all draw run records, most recent first
func (d *DB) GetDrawRuns(ctx context.Context) ([]db.DrawRun, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, created_at, seed, people_count, group_count
		FROM draw_run
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query draw runs: %w", err)
	}
	defer rows.Close()

	var runs []db.DrawRun
	for rows.Next() {
		var r db.DrawRun
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Seed, &r.PeopleCount, &r.GroupCount); err != nil {
			return nil, fmt.Errorf("failed to scan draw run: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating draw runs: %w", err)
	}

	return runs, nil
}

// GetAssignments retrieves the assignment records for a draw run, in
// placement order within each group
func (d *DB) GetAssignments(ctx context.Context, runID string) ([]db.Assignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, run_id, group_id, person, position
		FROM assignment
		WHERE run_id = $1
		ORDER BY group_id, position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.Assignment
	for rows.Next() {
		var a db.Assignment
		if err := rows.Scan(&a.ID, &a.RunID, &a.GroupID, &a.Person, &a.Position); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// InsertDrawRun inserts a draw run with its assignments and capacity
// notes in a single transaction
func (d *DB) InsertDrawRun(ctx context.Context, run db.DrawRun, assignments []db.Assignment, notes []db.CapacityNote) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO draw_run (id, created_at, seed, people_count, group_count)
		VALUES ($1, $2, $3, $4, $5)
	`, run.ID, run.CreatedAt, run.Seed, run.PeopleCount, run.GroupCount)
	if err != nil {
		return fmt.Errorf("failed to insert draw run: %w", err)
	}

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO assignment (id, run_id, group_id, person, position)
			VALUES ($1, $2, $3, $4, $5)
		`, a.ID, a.RunID, a.GroupID, a.Person, a.Position)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	for _, n := range notes {
		_, err := tx.Exec(ctx, `
			INSERT INTO capacity_note (id, run_id, group_id, ceiling, overflow)
			VALUES ($1, $2, $3, $4, $5)
		`, n.ID, n.RunID, n.GroupID, n.Ceiling, n.Overflow)
		if err != nil {
			return fmt.Errorf("failed to insert capacity note: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
