package store

import (
	"context"
	"fmt"

	"mathventure/ent"
	"mathventure/ent/transitionevent"
)

func (r *eventRepo) AppendTransitionEvent(ctx context.Context, data TransitionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TransitionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetFromLevel(data.FromLevel).
		SetToLevel(data.ToLevel).
		SetDecision(data.Decision).
		SetPerformanceScore(data.PerformanceScore).
		SetRecentAccuracy(data.RecentAccuracy).
		SetRecentAvgTimeSecs(data.RecentAvgTime).
		SetReason(data.Reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save transition event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionTransitions(ctx context.Context, sessionID string) ([]TransitionRecord, error) {
	events, err := r.client.TransitionEvent.Query().
		Where(transitionevent.SessionID(sessionID)).
		Order(ent.Asc(transitionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session transitions: %w", err)
	}

	records := make([]TransitionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, TransitionRecord{
			FromLevel: e.FromLevel,
			ToLevel:   e.ToLevel,
			Decision:  e.Decision,
			Reason:    e.Reason,
			Timestamp: e.Timestamp,
		})
	}
	return records, nil
}
