package model

import "time"

// RunStats summarizes one pass of the reminder pipeline. It is what the
// stats endpoint reports and what every run logs on completion.
type RunStats struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	// Checked counts candidates returned by the super-window query. Sent,
	// Skipped and Failed partition the candidates: skipped candidates fell
	// outside their precise local-time window, failed ones hit a terminal
	// per-booking condition.
	Checked int `json:"checked"`
	Sent    int `json:"sent"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// Duration is the wall time of the run.
func (s RunStats) Duration() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}
