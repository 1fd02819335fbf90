package schedule

import (
	"math"
	"strconv"
	"strings"
)

// SpanToEndLiteral is the duration_weeks value that stretches a task
// across the whole project window.
const SpanToEndLiteral = "start2end"

// Duration is the scheduling behavior of a task: either a numeric week
// count or the span-to-end sentinel. The two cases schedule differently
// enough (cursor handling, start override) that they are kept as
// distinct types rather than a flag.
type Duration interface {
	isDuration()
}

// Weeks is a numeric duration. Fractional weeks are allowed.
type Weeks float64

func (Weeks) isDuration() {}

// SpanToEnd marks a task that always ends at the project end date.
type SpanToEnd struct{}

func (SpanToEnd) isDuration() {}

// parseDuration maps a raw duration_weeks scalar to its Duration case.
// Week counts must be finite and non-negative.
func parseDuration(raw string) (Duration, bool) {
	if raw == SpanToEndLiteral {
		return SpanToEnd{}, true
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || f < 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, false
	}
	return Weeks(f), true
}
