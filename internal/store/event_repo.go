package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/lexiq/lexiq/ent"
	"github.com/lexiq/lexiq/ent/llmrequestevent"
	"github.com/lexiq/lexiq/ent/responseevent"
	"github.com/lexiq/lexiq/ent/sessionevent"
)

// eventRepo implements EventRepo using the ent client and the shared
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
		SetItemsServed(data.ItemsServed).
		SetCorrectCount(data.CorrectCount).
		SetTheta(data.Theta).
		SetStandardError(data.StandardError).
		SetLevel(data.Level).
		SetStopReason(data.StopReason).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendResponseEvent(ctx context.Context, data ResponseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ResponseEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetItemID(data.ItemID).
		SetCorrect(data.Correct).
		SetLatencyMs(data.LatencyMs).
		SetDifficulty(data.Difficulty).
		SetDiscrimination(data.Discrimination).
		SetThetaAfter(data.ThetaAfter).
		SetSeAfter(data.SEAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save response event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionResponses(ctx context.Context, sessionID string) ([]ResponseRecord, error) {
	events, err := r.client.ResponseEvent.Query().
		Where(responseevent.SessionID(sessionID)).
		Order(ent.Asc(responseevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session responses: %w", err)
	}

	records := make([]ResponseRecord, 0, len(events))
	for _, e := range events {
		records = append(records, ResponseRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ResponseEventData: ResponseEventData{
				SessionID:      e.SessionID,
				ItemID:         e.ItemID,
				Correct:        e.Correct,
				LatencyMs:      e.LatencyMs,
				Difficulty:     e.Difficulty,
				Discrimination: e.Discrimination,
				ThetaAfter:     e.ThetaAfter,
				SEAfter:        e.SeAfter,
			},
		})
	}
	return records, nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.ActionIn("completed", "aborted")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	summaries := make([]SessionSummary, 0, len(events))
	for _, e := range events {
		summaries = append(summaries, SessionSummary{
			SessionID:     e.SessionID,
			Action:        e.Action,
			ItemsServed:   e.ItemsServed,
			CorrectCount:  e.CorrectCount,
			Theta:         e.Theta,
			StandardError: e.StandardError,
			Level:         e.Level,
			StopReason:    e.StopReason,
			DurationSecs:  e.DurationSecs,
			Timestamp:     e.Timestamp,
		})
	}
	return summaries, nil
}

func (r *eventRepo) RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm requests: %w", err)
	}

	records := make([]LLMRequestRecord, 0, len(events))
	for _, e := range events {
		records = append(records, LLMRequestRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Provider:     e.Provider,
				Model:        e.Model,
				Purpose:      e.Purpose,
				InputTokens:  e.InputTokens,
				OutputTokens: e.OutputTokens,
				LatencyMs:    e.LatencyMs,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
			},
		})
	}
	return records, nil
}

// LLM usage aggregates fold in Go rather than SQL. The tables are
// small (one row per API call on a single-user machine) and it keeps
// the queries portable.
func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm usage: %w", err)
	}

	byPurpose := make(map[string]*LLMPurposeUsage)
	var order []string
	totalLatency := make(map[string]int64)
	for _, e := range events {
		u, ok := byPurpose[e.Purpose]
		if !ok {
			u = &LLMPurposeUsage{Purpose: e.Purpose}
			byPurpose[e.Purpose] = u
			order = append(order, e.Purpose)
		}
		u.Calls++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		totalLatency[e.Purpose] += e.LatencyMs
	}

	sort.Strings(order)
	usages := make([]LLMPurposeUsage, 0, len(order))
	for _, p := range order {
		u := byPurpose[p]
		if u.Calls > 0 {
			u.AvgLatencyMs = totalLatency[p] / int64(u.Calls)
		}
		usages = append(usages, *u)
	}
	return usages, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm usage: %w", err)
	}

	byModel := make(map[string]*LLMModelUsage)
	var order []string
	for _, e := range events {
		u, ok := byModel[e.Model]
		if !ok {
			u = &LLMModelUsage{Model: e.Model}
			byModel[e.Model] = u
			order = append(order, e.Model)
		}
		u.Calls++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
	}

	sort.Strings(order)
	usages := make([]LLMModelUsage, 0, len(order))
	for _, m := range order {
		usages = append(usages, *byModel[m])
	}
	return usages, nil
}

func (r *eventRepo) ItemAccuracy(ctx context.Context, itemID string) (float64, int, error) {
	events, err := r.client.ResponseEvent.Query().
		Where(responseevent.ItemID(itemID)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query item accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), len(events), nil
}
