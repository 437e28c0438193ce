package jobs

import "testing"

func TestJobForSkill(t *testing.T) {
	tbl := DefaultTable()

	job, ok := tbl.JobForSkill("Fast Blade")
	if !ok || job != "PLD" {
		t.Fatalf("job=%q ok=%v want PLD", job, ok)
	}

	// case-insensitive, whitespace tolerant
	job, ok = tbl.JobForSkill("  fast blade ")
	if !ok || job != "PLD" {
		t.Fatalf("job=%q ok=%v want PLD", job, ok)
	}

	if _, ok := tbl.JobForSkill("Totally Made Up"); ok {
		t.Fatalf("expected unknown skill to miss")
	}
}

func TestRole(t *testing.T) {
	tbl := DefaultTable()

	cases := []struct {
		abbrev string
		want   Role
	}{
		{"PLD", RoleTank},
		{"WHM", RoleHealer},
		{"BLM", RoleDPS},
	}
	for _, c := range cases {
		role, ok := tbl.Role(c.abbrev)
		if !ok || role != c.want {
			t.Fatalf("Role(%q)=%q ok=%v want=%q", c.abbrev, role, ok, c.want)
		}
	}
	if _, ok := tbl.Role("XYZ"); ok {
		t.Fatalf("expected unknown abbrev to miss")
	}
}

func TestDuplicateSkill_FirstRegistrationWins(t *testing.T) {
	tbl := NewTable([]Job{
		{Abbrev: "AAA", Role: RoleDPS, Skills: []Skill{{Name: "Shared Strike"}}},
		{Abbrev: "BBB", Role: RoleDPS, Skills: []Skill{{Name: "Shared Strike"}}},
	})
	job, ok := tbl.JobForSkill("Shared Strike")
	if !ok || job != "AAA" {
		t.Fatalf("job=%q ok=%v want AAA", job, ok)
	}
}

func TestDefaultTable_AllJobsHaveSkills(t *testing.T) {
	tbl := DefaultTable()
	jobs := tbl.Jobs()
	if len(jobs) < 20 {
		t.Fatalf("jobs=%d, table looks incomplete", len(jobs))
	}
	for _, j := range jobs {
		if j.Abbrev == "" || j.Role == "" || len(j.Skills) == 0 {
			t.Fatalf("incomplete job entry: %+v", j)
		}
	}
}
