package store

import (
	"context"
	"fmt"
	"time"
)

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seq, ts, err := r.stamp(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO session_events
			(sequence, timestamp, session_id, action, rooms_completed, points, duration_secs)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		seq, ts, data.SessionID, data.Action, data.RoomsCompleted, data.Points, data.DurationSecs,
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) Sessions(ctx context.Context, opts QueryOpts) ([]SessionEvent, error) {
	clause, args := queryWindow(opts)
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sequence, timestamp, session_id, action, rooms_completed, points, duration_secs
		FROM session_events`+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var events []SessionEvent
	for rows.Next() {
		var e SessionEvent
		var ts int64
		if err := rows.Scan(&e.ID, &e.Sequence, &ts, &e.SessionID, &e.Action,
			&e.RoomsCompleted, &e.Points, &e.DurationSecs); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		e.Timestamp = time.Unix(ts, 0).UTC()
		events = append(events, e)
	}
	return events, rows.Err()
}
