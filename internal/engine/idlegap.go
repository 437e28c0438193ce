package engine

import (
	"time"

	"github.com/raidscope/raidscope/internal/model"
	"github.com/raidscope/raidscope/internal/parse"
)

// IdleGapSegmenter partitions the log's active lines into runs split
// wherever the gap between consecutive active timestamps exceeds Gap.
// Active lines are chat lines matching a damage pattern plus
// ability-use lines. With no active lines at all, the whole line set
// degrades to a single encounter.
type IdleGapSegmenter struct {
	Gap     time.Duration
	Matcher parse.DamageMatcher
}

func NewIdleGapSegmenter(gap time.Duration) *IdleGapSegmenter {
	if gap <= 0 {
		gap = DefaultOptions().IdleGap
	}
	return &IdleGapSegmenter{Gap: gap, Matcher: parse.ChatMatcher{}}
}

func (s *IdleGapSegmenter) Segment(lines []model.Line) ([]model.Encounter, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	matcher := s.Matcher
	if matcher == nil {
		matcher = parse.ChatMatcher{}
	}

	var active []int
	for i, ln := range lines {
		if !ln.TsOK {
			continue
		}
		switch ln.Opcode() {
		case model.OpChat:
			if _, ok := matcher.Match(parse.MessageText(ln)); ok {
				active = append(active, i)
			}
		case model.OpAbility, model.OpAbilityAOE:
			active = append(active, i)
		}
	}

	if len(active) == 0 {
		return []model.Encounter{wholeFileEncounter(lines)}, nil
	}

	var out []model.Encounter
	runStart := active[0]
	prev := active[0]
	for _, idx := range active[1:] {
		if lines[idx].Ts.Sub(lines[prev].Ts) > s.Gap {
			out = append(out, spanEncounter(lines, runStart, prev))
			runStart = idx
		}
		prev = idx
	}
	out = append(out, spanEncounter(lines, runStart, prev))
	return out, nil
}

func spanEncounter(lines []model.Line, first, last int) model.Encounter {
	return model.Encounter{
		Start:     lines[first].Ts,
		End:       lines[last].Ts,
		StartLine: first,
		EndLine:   last,
	}
}

// wholeFileEncounter bounds a no-active-content log by the first and
// last timestamps present.
func wholeFileEncounter(lines []model.Line) model.Encounter {
	enc := model.Encounter{StartLine: 0, EndLine: len(lines) - 1}
	for _, ln := range lines {
		if ln.TsOK {
			enc.Start = ln.Ts
			break
		}
	}
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i].TsOK {
			enc.End = lines[i].Ts
			break
		}
	}
	return enc
}
