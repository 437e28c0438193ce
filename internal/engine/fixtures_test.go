package engine

import (
	"testing"
	"time"

	"github.com/raidscope/raidscope/internal/model"
	"github.com/raidscope/raidscope/internal/parse"
)

var fixtureBase = time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)

// ts renders an offset from the fixture base in the log's timestamp
// format.
func ts(offset time.Duration) string {
	return fixtureBase.Add(offset).Format("2006-01-02T15:04:05")
}

func buildLines(t *testing.T, raws []string) []model.Line {
	t.Helper()
	out := make([]model.Line, 0, len(raws))
	for _, raw := range raws {
		ln, ok := parse.Tokenize(raw)
		if !ok {
			t.Fatalf("bad fixture line %q", raw)
		}
		out = append(out, ln)
	}
	return out
}

func chat(offset time.Duration, msg string) string {
	return "00|" + ts(offset) + "|0839||" + msg
}

func ability(offset time.Duration, actorID, actor, skill, targetID, target string) string {
	return "21|" + ts(offset) + "|" + actorID + "|" + actor + "|4001|" + skill + "|" + targetID + "|" + target
}

func effect(offset time.Duration, name, cur, max string) string {
	return "38|" + ts(offset) + "|40001234|" + name + "|00|" + cur + "|" + max
}

// testOpts keeps the discard thresholds out of the way unless a test
// sets them explicitly.
func testOpts() Options {
	o := DefaultOptions()
	o.MinLines = 1
	o.MinDuration = time.Millisecond
	return o
}
