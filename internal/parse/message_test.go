package parse

import (
	"testing"
)

func TestChatMatcher_HitForm(t *testing.T) {
	hit, ok := ChatMatcher{}.Match("Ifrit hits Aeliana Storm for 2824 damage.")
	if !ok {
		t.Fatalf("expected match")
	}
	if hit.Attacker != "Ifrit" || hit.Target != "Aeliana Storm" || hit.Amount != 2824 {
		t.Fatalf("hit=%+v", hit)
	}
	if hit.Crit || hit.DirectHit {
		t.Fatalf("expected plain hit, got %+v", hit)
	}
}

func TestChatMatcher_TakesForm(t *testing.T) {
	hit, ok := ChatMatcher{}.Match("Critical! Aeliana Storm takes 3200 damage.")
	if !ok {
		t.Fatalf("expected match")
	}
	if hit.Attacker != UnknownAttacker {
		t.Fatalf("attacker=%q want=%q", hit.Attacker, UnknownAttacker)
	}
	if hit.Target != "Aeliana Storm" || hit.Amount != 3200 {
		t.Fatalf("hit=%+v", hit)
	}
	if !hit.Crit || hit.DirectHit {
		t.Fatalf("expected crit only, got %+v", hit)
	}

	hit, ok = ChatMatcher{}.Match("Direct hit! Mira Light takes 1500 damage.")
	if !ok {
		t.Fatalf("expected match")
	}
	if hit.Crit || !hit.DirectHit {
		t.Fatalf("expected direct hit only, got %+v", hit)
	}
}

func TestChatMatcher_Rejects(t *testing.T) {
	cases := []string{
		"",
		"Engage!",
		"Aeliana Storm takes 0 damage.",
		"Ifrit hits  for 100 damage.",
		"You gain the effect of Vulnerability Up.",
	}
	for _, msg := range cases {
		if _, ok := (ChatMatcher{}).Match(msg); ok {
			t.Fatalf("expected %q to be rejected", msg)
		}
	}
}

func TestMessageText(t *testing.T) {
	ln, _ := Tokenize("00|2024-05-01T20:00:00|0839||Ifrit hits Aeliana Storm for 100 damage.")
	if got := MessageText(ln); got != "Ifrit hits Aeliana Storm for 100 damage." {
		t.Fatalf("msg=%q", got)
	}

	// falls back to earlier fields when the canonical one is empty
	ln, _ = Tokenize("00|2024-05-01T20:00:00|some message")
	if got := MessageText(ln); got != "some message" {
		t.Fatalf("msg=%q", got)
	}

	// leading punctuation is stripped
	ln, _ = Tokenize("00|2024-05-01T20:00:00|0839||:: Engage!")
	if got := MessageText(ln); got != "Engage!" {
		t.Fatalf("msg=%q", got)
	}
}
