package store

import (
	"context"
	"fmt"

	"mathventure/ent"
	"mathventure/ent/attemptevent"
)

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestion(data.Question).
		SetCorrectAnswer(data.CorrectAnswer).
		SetUserAnswer(data.UserAnswer).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		SetDifficulty(data.Difficulty).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionAttempts(ctx context.Context, sessionID string) ([]AttemptRecord, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.SessionID(sessionID)).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session attempts: %w", err)
	}

	records := make([]AttemptRecord, 0, len(events))
	for _, e := range events {
		records = append(records, AttemptRecord{
			Question:      e.Question,
			CorrectAnswer: e.CorrectAnswer,
			UserAnswer:    e.UserAnswer,
			Correct:       e.Correct,
			TimeMs:        e.TimeMs,
			Difficulty:    e.Difficulty,
			Timestamp:     e.Timestamp,
		})
	}
	return records, nil
}
