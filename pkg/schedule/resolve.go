// Package schedule computes start and end dates for an ordered list of
// tasks within a project window. Tasks with no fixed start are scheduled
// back to back: each one begins where the previous numeric-duration task
// ended. Span-to-end tasks overlay the window without moving that cursor.
package schedule

import (
	"fmt"
	"time"
)

// longSpanDays is roughly 15 months. Longer projects still resolve, but
// the rendered chart gets crowded, so the caller is warned.
const longSpanDays = 450

// Resolve computes the (start, end) interval for every task, in input
// order. The result always has one entry per task. warn, if non-nil,
// receives non-fatal advisories; it never affects the outcome. The first
// unparsable duration aborts the whole run with an InvalidDurationError.
func Resolve(w Window, tasks []Task, warn func(string)) ([]Resolved, error) {
	if warn != nil {
		if days := w.Days(); days > longSpanDays {
			warn(fmt.Sprintf("project duration is %d days (over 15 months); the chart may look crowded", days))
		}
	}

	resolved := make([]Resolved, 0, len(tasks))
	cursor := w.Start

	for _, t := range tasks {
		d, ok := parseDuration(t.Duration)
		if !ok {
			return nil, &InvalidDurationError{Task: t.Name, Value: t.Duration}
		}

		start := cursor
		if t.FixedStart != nil {
			start = *t.FixedStart
			if warn != nil && (start.Before(w.Start) || start.After(w.End)) {
				warn(fmt.Sprintf("task %q has a start date outside the project window", t.Name))
			}
		}

		var end time.Time
		switch d := d.(type) {
		case SpanToEnd:
			// An unanchored span-to-end task covers the whole window,
			// ignoring wherever the cursor happens to stand. The cursor
			// itself is left alone so the next sequential task continues
			// from before this overlay.
			if t.FixedStart == nil {
				start = w.Start
			}
			end = w.End
		case Weeks:
			end = start.Add(time.Duration(float64(d) * float64(7*24*time.Hour)))
			cursor = end
		}

		resolved = append(resolved, Resolved{
			Name:  t.Name,
			Start: start,
			End:   end,
			Days:  daysBetween(start, end),
		})
	}

	return resolved, nil
}
