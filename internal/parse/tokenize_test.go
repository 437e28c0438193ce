package parse

import (
	"strings"
	"testing"
	"time"

	"github.com/raidscope/raidscope/internal/model"
)

func TestTokenize_SplitsFields(t *testing.T) {
	ln, ok := Tokenize("00|2024-05-01T20:00:00.0000000|0839||Ifrit hits Aeliana Storm for 1000 damage.")
	if !ok {
		t.Fatalf("expected actionable line")
	}
	if got := ln.Opcode(); got != model.OpChat {
		t.Fatalf("opcode=%q want=%q", got, model.OpChat)
	}
	if len(ln.Fields) != 5 {
		t.Fatalf("fields=%d want=5", len(ln.Fields))
	}
	if !ln.TsOK {
		t.Fatalf("expected parsed timestamp")
	}
	want := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	if !ln.Ts.Equal(want) {
		t.Fatalf("ts=%v want=%v", ln.Ts, want)
	}
	if got := ln.Field(99); got != "" {
		t.Fatalf("out-of-range field=%q want empty", got)
	}
}

func TestTokenize_RejectsShortLines(t *testing.T) {
	for _, raw := range []string{"", "no delimiter here", "\r"} {
		if _, ok := Tokenize(raw); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestTokenize_BadTimestampStillActionable(t *testing.T) {
	ln, ok := Tokenize("00|not-a-time|0839||hello")
	if !ok {
		t.Fatalf("expected actionable line")
	}
	if ln.TsOK {
		t.Fatalf("expected TsOK=false for unparsable timestamp")
	}
}

func TestParseTimestamp_Layouts(t *testing.T) {
	cases := []string{
		"2024-05-01T20:00:00.1234567",
		"2024-05-01T20:00:00",
		"2024-05-01 20:00:00",
		"2024-05-01T20:00:00Z",
	}
	for _, s := range cases {
		if _, ok := ParseTimestamp(s); !ok {
			t.Fatalf("expected %q to parse", s)
		}
	}
	if _, ok := ParseTimestamp("yesterday"); ok {
		t.Fatalf("expected garbage timestamp to fail")
	}
}

func TestTokenizeAll(t *testing.T) {
	in := strings.Join([]string{
		"03|2024-05-01T20:00:00|10FF0001|Aeliana Storm|15|1E|0|51|",
		"",
		"junk without delimiters",
		"00|2024-05-01T20:00:01|0839||Engage!",
	}, "\n")

	lines, err := TokenizeAll(strings.NewReader(in))
	if err != nil {
		t.Fatalf("TokenizeAll: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("lines=%d want=2", len(lines))
	}
	if lines[0].Opcode() != model.OpRoster || lines[1].Opcode() != model.OpChat {
		t.Fatalf("unexpected opcodes: %q %q", lines[0].Opcode(), lines[1].Opcode())
	}
}
