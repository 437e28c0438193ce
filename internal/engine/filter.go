package engine

import (
	"time"

	"github.com/raidscope/raidscope/internal/model"
)

// TimeFilter drops lines older than a cutoff during ingestion. A zero
// filter allows everything; lines without a parsable timestamp pass
// through so roster and duty text stays scannable.
type TimeFilter struct {
	Cutoff time.Time
}

func NewTimeFilterLastHours(lastHours float64, now time.Time) TimeFilter {
	if lastHours <= 0 {
		return TimeFilter{}
	}
	return TimeFilter{Cutoff: now.Add(-time.Duration(lastHours * float64(time.Hour)))}
}

func (f TimeFilter) Allow(ln model.Line) bool {
	if f.Cutoff.IsZero() || !ln.TsOK {
		return true
	}
	return !ln.Ts.Before(f.Cutoff)
}

// FilterLines returns the lines the filter allows, in order.
func (f TimeFilter) FilterLines(lines []model.Line) []model.Line {
	if f.Cutoff.IsZero() {
		return lines
	}
	out := make([]model.Line, 0, len(lines))
	for _, ln := range lines {
		if f.Allow(ln) {
			out = append(out, ln)
		}
	}
	return out
}
