package store

import (
	"context"
	"fmt"

	"mathventure/ent"
	"mathventure/ent/sessionevent"
)

// eventRepo implements EventRepo on top of the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetPlayer(data.Player).
		SetStartingLevel(data.StartingLevel).
		SetFinalLevel(data.FinalLevel).
		SetPuzzlesServed(data.PuzzlesServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetBestStreak(data.BestStreak).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	records := make([]SessionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionRecord{
			SessionID:      e.SessionID,
			Player:         e.Player,
			StartingLevel:  e.StartingLevel,
			FinalLevel:     e.FinalLevel,
			PuzzlesServed:  e.PuzzlesServed,
			CorrectAnswers: e.CorrectAnswers,
			BestStreak:     e.BestStreak,
			DurationSecs:   e.DurationSecs,
			EndedAt:        e.Timestamp,
		})
	}
	return records, nil
}
