package engine

import (
	"testing"

	"github.com/raidscope/raidscope/internal/jobs"
	"github.com/raidscope/raidscope/internal/model"
)

func testActor(name string, dealt, taken, hits int64, skills ...string) *model.ActorInfo {
	a := model.NewActorInfo(name)
	a.DamageDealt = dealt
	a.DamageTaken = taken
	a.HitCount = hits
	for _, s := range skills {
		a.ObserveSkill(s)
	}
	return a
}

func actorMap(actors ...*model.ActorInfo) map[string]*model.ActorInfo {
	m := make(map[string]*model.ActorInfo, len(actors))
	for _, a := range actors {
		m[a.Name] = a
	}
	return m
}

func TestClassify_PlayersByJobSkills(t *testing.T) {
	actors := actorMap(
		testActor("Aeliana Storm", 50000, 8000, 12, "Fast Blade", "Riot Blade"),
		testActor("Mira Light", 20000, 4000, 6, "Glare III"),
		testActor("Ifrit", 60000, 120000, 40),
	)

	cls := Classify(actors, jobs.DefaultTable())
	if len(cls.Party) != 2 {
		t.Fatalf("party=%d want=2", len(cls.Party))
	}
	a := actors["Aeliana Storm"]
	if a.Class != model.ActorPlayer || a.Job != "PLD" || a.Role != "tank" {
		t.Fatalf("aeliana class=%v job=%q role=%q", a.Class, a.Job, a.Role)
	}
	m := actors["Mira Light"]
	if m.Class != model.ActorPlayer || m.Job != "WHM" || m.Role != "healer" {
		t.Fatalf("mira class=%v job=%q role=%q", m.Class, m.Job, m.Role)
	}
}

func TestClassify_BossByDamageStatistics(t *testing.T) {
	actors := actorMap(
		testActor("Aeliana Storm", 50000, 8000, 12, "Fast Blade"),
		testActor("Infernal Core", 60000, 60000, 20),
		testActor("Infernal Nail", 1000, 10000, 5),
	)

	cls := Classify(actors, jobs.DefaultTable())
	if cls.Boss == nil || cls.Boss.Name != "Infernal Core" {
		t.Fatalf("boss=%v want Infernal Core", cls.Boss)
	}
	if cls.Boss.Class != model.ActorBoss {
		t.Fatalf("boss class=%v", cls.Boss.Class)
	}
	if len(cls.Adds) != 1 || cls.Adds[0].Name != "Infernal Nail" {
		t.Fatalf("adds=%v want Infernal Nail", cls.Adds)
	}
	if cls.Adds[0].Class != model.ActorAdd {
		t.Fatalf("add class=%v", cls.Adds[0].Class)
	}
}

func TestClassify_FallbackPromotion(t *testing.T) {
	// nobody meets the boss thresholds; the most damaged hostile is
	// promoted anyway
	actors := actorMap(
		testActor("Aeliana Storm", 3000, 200, 3, "Fast Blade"),
		testActor("Sewer Rat", 100, 900, 4),
		testActor("Sewer Bat", 50, 400, 2),
	)

	cls := Classify(actors, jobs.DefaultTable())
	if cls.Boss == nil || cls.Boss.Name != "Sewer Rat" {
		t.Fatalf("boss=%v want Sewer Rat", cls.Boss)
	}
	if len(cls.Adds) != 1 || cls.Adds[0].Name != "Sewer Bat" {
		t.Fatalf("adds=%v", cls.Adds)
	}
}

func TestClassify_SingleBossInvariant(t *testing.T) {
	actors := actorMap(
		testActor("Aeliana Storm", 90000, 5000, 10, "Fast Blade"),
		testActor("Twin Head A", 500, 200000, 50),
		testActor("Twin Head B", 400, 150000, 40),
		testActor("Stray Add", 10, 100, 1),
	)

	cls := Classify(actors, jobs.DefaultTable())
	if cls.Boss == nil || cls.Boss.Name != "Twin Head A" {
		t.Fatalf("boss=%v want Twin Head A", cls.Boss)
	}
	if actors["Twin Head B"].Class != model.ActorAdd {
		t.Fatalf("demoted class=%v want add", actors["Twin Head B"].Class)
	}
	if len(cls.Adds) != 2 {
		t.Fatalf("adds=%d want=2", len(cls.Adds))
	}
	// adds ordered by damage taken, descending
	if cls.Adds[0].Name != "Twin Head B" || cls.Adds[1].Name != "Stray Add" {
		t.Fatalf("add order=%v,%v", cls.Adds[0].Name, cls.Adds[1].Name)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	actors := actorMap(
		testActor("Aeliana Storm", 50000, 8000, 12, "Fast Blade"),
		testActor("Infernal Core", 60000, 60000, 20),
		testActor("Infernal Nail", 1000, 10000, 5),
	)

	first := Classify(actors, jobs.DefaultTable())
	second := Classify(actors, jobs.DefaultTable())
	if first.Boss.Name != second.Boss.Name {
		t.Fatalf("boss changed across runs: %q vs %q", first.Boss.Name, second.Boss.Name)
	}
	if len(first.Adds) != len(second.Adds) || len(first.Party) != len(second.Party) {
		t.Fatalf("classification drifted across runs")
	}
}
