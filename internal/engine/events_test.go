package engine

import (
	"testing"
	"time"

	"github.com/raidscope/raidscope/internal/parse"
)

func TestExtractEvents_AccumulatesStatistics(t *testing.T) {
	lines := buildLines(t, []string{
		ability(0, "10FF0001", "Aeliana Storm", "Fast Blade", "40001234", "Ifrit"),
		chat(1*time.Second, "Aeliana Storm hits Ifrit for 1200 damage."),
		chat(2*time.Second, "Aeliana Storm hits Ifrit for 800 damage."),
		chat(3*time.Second, "Ifrit hits Aeliana Storm for 2500 damage."),
	})

	d := ExtractEvents(lines, parse.ChatMatcher{})
	if len(d.Events) != 3 {
		t.Fatalf("events=%d want=3", len(d.Events))
	}

	a := d.Actors["Aeliana Storm"]
	if a == nil {
		t.Fatalf("missing actor")
	}
	if a.DamageDealt != 2000 || a.DamageTaken != 2500 || a.HitCount != 1 {
		t.Fatalf("aeliana dealt=%d taken=%d hits=%d", a.DamageDealt, a.DamageTaken, a.HitCount)
	}
	if _, ok := a.Skills["Fast Blade"]; !ok {
		t.Fatalf("expected observed skill")
	}
	if a.ID != "10FF0001" {
		t.Fatalf("id=%q", a.ID)
	}

	boss := d.Actors["Ifrit"]
	if boss == nil || boss.DamageTaken != 2000 || boss.HitCount != 2 {
		t.Fatalf("boss=%+v", boss)
	}
}

func TestExtractEvents_SkillLabelFollowsLastAbility(t *testing.T) {
	lines := buildLines(t, []string{
		ability(0, "10FF0001", "Aeliana Storm", "Fast Blade", "40001234", "Ifrit"),
		chat(1*time.Second, "Aeliana Storm hits Ifrit for 1200 damage."),
		chat(2*time.Second, "Ifrit hits Aeliana Storm for 900 damage."),
	})

	d := ExtractEvents(lines, parse.ChatMatcher{})
	if d.Events[0].Skill != "Fast Blade" {
		t.Fatalf("skill=%q want=Fast Blade", d.Events[0].Skill)
	}
	// no ability seen for the boss, so the generic label applies
	if d.Events[1].Skill != "Attack" {
		t.Fatalf("skill=%q want=Attack", d.Events[1].Skill)
	}
}

func TestExtractEvents_CritAndDirectFlags(t *testing.T) {
	lines := buildLines(t, []string{
		chat(0, "Critical! Aeliana Storm takes 3200 damage."),
	})

	d := ExtractEvents(lines, parse.ChatMatcher{})
	if len(d.Events) != 1 {
		t.Fatalf("events=%d want=1", len(d.Events))
	}
	ev := d.Events[0]
	if !ev.Crit || ev.DirectHit {
		t.Fatalf("flags crit=%v direct=%v", ev.Crit, ev.DirectHit)
	}
	if ev.Attacker != parse.UnknownAttacker {
		t.Fatalf("attacker=%q want=%q", ev.Attacker, parse.UnknownAttacker)
	}
}
