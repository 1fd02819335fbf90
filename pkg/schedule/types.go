package schedule

import "time"

// Window is the overall project date range.
type Window struct {
	Start time.Time
	End   time.Time
}

// Days returns the whole number of days the window spans.
func (w Window) Days() int {
	return daysBetween(w.Start, w.End)
}

// Task describes one bar before scheduling. Duration holds the
// duration_weeks scalar exactly as written in the config, either a week
// count or the "start2end" sentinel. FixedStart, when set, anchors the
// task instead of the running cursor.
type Task struct {
	Name       string
	Duration   string
	FixedStart *time.Time
}

// Resolved is a task after start/end computation.
type Resolved struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Days  int       `json:"duration_days"`
}

func daysBetween(start, end time.Time) int {
	return int(end.Sub(start) / (24 * time.Hour))
}
