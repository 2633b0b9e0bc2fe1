package store

import (
	"context"
	"fmt"
	"time"
)

func (r *eventRepo) AppendCheckin(ctx context.Context, data CheckinEventData) error {
	seq, ts, err := r.stamp(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO checkin_events
			(sequence, timestamp, mood, energy, stress, sleep, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		seq, ts, data.Mood, data.Energy, data.Stress, data.Sleep, data.Notes,
	)
	if err != nil {
		return fmt.Errorf("save checkin event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestCheckin(ctx context.Context) (*CheckinEvent, error) {
	events, err := r.Checkins(ctx, QueryOpts{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[0], nil
}

func (r *eventRepo) Checkins(ctx context.Context, opts QueryOpts) ([]CheckinEvent, error) {
	clause, args := queryWindow(opts)
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sequence, timestamp, mood, energy, stress, sleep, notes
		FROM checkin_events`+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("query checkin events: %w", err)
	}
	defer rows.Close()

	var events []CheckinEvent
	for rows.Next() {
		var e CheckinEvent
		var ts int64
		if err := rows.Scan(&e.ID, &e.Sequence, &ts, &e.Mood, &e.Energy,
			&e.Stress, &e.Sleep, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan checkin event: %w", err)
		}
		e.Timestamp = time.Unix(ts, 0).UTC()
		events = append(events, e)
	}
	return events, rows.Err()
}
