package persistdb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Actions recorded in the activity log.
const (
	ActionLogin  = "login"
	ActionLogout = "logout"
	ActionCreate = "create"
	ActionDelete = "delete"
	ActionPurge  = "purge"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type Activity struct {
	ID       string    `json:"id"`
	At       time.Time `json:"at"`
	Username string    `json:"username"`
	Broker   string    `json:"broker"`
	Action   string    `json:"action"`
	Kind     string    `json:"kind,omitempty"`
	Name     string    `json:"name,omitempty"`
	Outcome  string    `json:"outcome"`
	Detail   string    `json:"detail,omitempty"`
}

// Record stores one activity row. ID and At are filled in when empty.
func (d *DB) Record(ctx context.Context, a Activity) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.At.IsZero() {
		a.At = time.Now()
	}

	query := `
		INSERT INTO activity (id, at, username, broker, action, kind, name, outcome, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := d.db.ExecContext(ctx, query,
		a.ID,
		a.At.UnixMilli(),
		a.Username,
		a.Broker,
		a.Action,
		a.Kind,
		a.Name,
		a.Outcome,
		a.Detail,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// List returns activity newest first.
func (d *DB) List(ctx context.Context, limit, offset int) ([]Activity, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, at, username, broker, action, kind, name, outcome, detail
		FROM activity
		ORDER BY at DESC, rowid DESC
		LIMIT ? OFFSET ?;
	`
	rows, err := d.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select activity: %w", err)
	}
	defer rows.Close()

	out := make([]Activity, 0, limit)
	for rows.Next() {
		var (
			a  Activity
			at int64
		)
		if err := rows.Scan(&a.ID, &at, &a.Username, &a.Broker, &a.Action, &a.Kind, &a.Name, &a.Outcome, &a.Detail); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a.At = time.UnixMilli(at)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (d *DB) Count(ctx context.Context) (int, error) {
	var n int
	if err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activity;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count activity: %w", err)
	}
	return n, nil
}

// Prune deletes activity older than cutoff and returns how many rows went away.
func (d *DB) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := d.db.ExecContext(ctx, `DELETE FROM activity WHERE at < ?;`, cutoff.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("prune activity: %w", err)
	}
	return result.RowsAffected()
}
