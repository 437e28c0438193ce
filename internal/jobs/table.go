// Package jobs holds the static job/skill lookup table used to match
// observed skill names to player jobs. The table is built once and
// passed by reference; it is read-only and safe for unlimited
// concurrent readers.
package jobs

import "strings"

type Role string

const (
	RoleTank   Role = "tank"
	RoleHealer Role = "healer"
	RoleDPS    Role = "dps"
)

type Skill struct {
	Name    string
	Potency int
	Type    string // weaponskill, spell, ability
}

type Job struct {
	Abbrev string
	Role   Role
	Skills []Skill
}

type Table struct {
	jobs     []Job
	byAbbrev map[string]*Job
	bySkill  map[string]string // lowercased skill name -> job abbrev
}

func NewTable(defs []Job) *Table {
	t := &Table{
		jobs:     defs,
		byAbbrev: make(map[string]*Job, len(defs)),
		bySkill:  make(map[string]string),
	}
	for i := range t.jobs {
		j := &t.jobs[i]
		t.byAbbrev[j.Abbrev] = j
		for _, sk := range j.Skills {
			key := strings.ToLower(sk.Name)
			// first registration wins on duplicate skill names
			if _, exists := t.bySkill[key]; !exists {
				t.bySkill[key] = j.Abbrev
			}
		}
	}
	return t
}

// JobForSkill matches a skill name case-insensitively and exactly.
func (t *Table) JobForSkill(name string) (string, bool) {
	abbrev, ok := t.bySkill[strings.ToLower(strings.TrimSpace(name))]
	return abbrev, ok
}

func (t *Table) Role(abbrev string) (Role, bool) {
	j, ok := t.byAbbrev[abbrev]
	if !ok {
		return "", false
	}
	return j.Role, true
}

func (t *Table) Jobs() []Job { return t.jobs }
