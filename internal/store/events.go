package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMEventData captures one LLM API call for the usage log.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEventRecord is a stored usage-log row.
type LLMEventRecord struct {
	ID        int64
	Timestamp time.Time
	LLMEventData
}

// UsageStats aggregates token spend per request purpose.
type UsageStats struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo appends and queries LLM request events.
type EventRepo struct {
	db *sql.DB
}

// AppendLLMRequest records one LLM API call.
func (r *EventRepo) AppendLLMRequest(ctx context.Context, data LLMEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_events
		 (provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		data.Success, data.ErrorMessage)
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}

// Recent returns the newest events, most recent first.
func (r *EventRepo) Recent(ctx context.Context, limit int) ([]LLMEventRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, timestamp, provider, model, purpose,
		        input_tokens, output_tokens, latency_ms, success, error_message
		 FROM llm_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var out []LLMEventRecord
	for rows.Next() {
		var rec LLMEventRecord
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.Provider, &rec.Model, &rec.Purpose,
			&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs, &rec.Success, &rec.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan llm event: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// UsageByPurpose aggregates the usage log per purpose label.
func (r *EventRepo) UsageByPurpose(ctx context.Context) ([]UsageStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT purpose, COUNT(*),
		        SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END),
		        COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0)
		 FROM llm_events GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query llm usage: %w", err)
	}
	defer rows.Close()

	var out []UsageStats
	for rows.Next() {
		var s UsageStats
		if err := rows.Scan(&s.Purpose, &s.Requests, &s.Failures, &s.InputTokens, &s.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan llm usage: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
