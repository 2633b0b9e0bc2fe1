package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seq, ts, err := r.stamp(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO answer_events
			(sequence, timestamp, session_id, room_id, question_id, chosen_option, revisions)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		seq, ts, data.SessionID, data.RoomID, data.QuestionID, data.Option, data.Revisions,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}
