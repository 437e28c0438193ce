package parse

import (
	"fmt"
	"testing"

	"github.com/raidscope/raidscope/internal/model"
)

func rosterLine(t *testing.T, name string) model.Line {
	t.Helper()
	ln, ok := Tokenize(fmt.Sprintf("03|2024-05-01T20:00:00|10FF0001|%s|15|1E|0|51|", name))
	if !ok {
		t.Fatalf("bad roster fixture for %q", name)
	}
	return ln
}

func TestExtractParty_Basic(t *testing.T) {
	lines := []model.Line{
		rosterLine(t, "Aeliana StormExcalibur"),
		rosterLine(t, "Mira LightGilgamesh"),
		rosterLine(t, "Aeliana StormExcalibur"), // duplicate
		rosterLine(t, "Carbuncle"),
		rosterLine(t, "Eos"),
	}
	got := ExtractParty(lines, 0)
	want := []string{"Aeliana Storm", "Mira Light"}
	if len(got) != len(want) {
		t.Fatalf("party=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("party[%d]=%q want=%q", i, got[i], want[i])
		}
	}
}

func TestExtractParty_CapsAtEight(t *testing.T) {
	var lines []model.Line
	for i := 0; i < 10; i++ {
		lines = append(lines, rosterLine(t, fmt.Sprintf("Member %s", string(rune('A'+i))+"lden")))
	}
	got := ExtractParty(lines, 0)
	if len(got) != 8 {
		t.Fatalf("party size=%d want=8", len(got))
	}
}

func TestExtractParty_WindowBound(t *testing.T) {
	lines := []model.Line{
		rosterLine(t, "Aeliana StormExcalibur"),
		rosterLine(t, "Mira LightGilgamesh"),
	}
	got := ExtractParty(lines, 1)
	if len(got) != 1 || got[0] != "Aeliana Storm" {
		t.Fatalf("party=%v want only first member", got)
	}
}

func TestCanonicalName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Aeliana StormExcalibur", "Aeliana Storm"},
		{"Mira LightGilgamesh", "Mira Light"},
		{"Mira Light", "Mira Light"},
		{"Carbuncle", "Carbuncle"},
		{"Zo", ""},
		{"Bad#Name", ""},
		{"  Aeliana StormExcalibur  ", "Aeliana Storm"},
		{"", ""},
	}
	for _, c := range cases {
		if got := CanonicalName(c.in); got != c.want {
			t.Fatalf("CanonicalName(%q)=%q want=%q", c.in, got, c.want)
		}
	}
}
