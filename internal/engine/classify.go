package engine

import (
	"sort"

	"github.com/raidscope/raidscope/internal/jobs"
	"github.com/raidscope/raidscope/internal/model"
)

// Boss decision thresholds over the non-player group statistics.
const (
	bossDamageRatioMin  = 2.0
	bossHitRatioMin     = 1.5
	bossDamageTakenMin  = 10000
	bossDamageTakenHigh = 50000
	bossHighHitRatioMin = 1.2
)

// Classification is the finished per-encounter roster: at most one
// boss, the remaining hostiles ordered by damage taken, and the party
// in name order.
type Classification struct {
	Boss  *model.ActorInfo
	Adds  []*model.ActorInfo
	Party []*model.ActorInfo
}

// Classify assigns every observed actor a class. Players are found by
// matching used skills against the job table; remaining actors are
// split boss/add on damage-statistics heuristics. The pass recomputes
// from the accumulated statistics alone, so re-running it on an
// already-classified map is a no-op.
func Classify(actors map[string]*model.ActorInfo, table *jobs.Table) Classification {
	names := make([]string, 0, len(actors))
	for name := range actors {
		names = append(names, name)
	}
	sort.Strings(names)

	// Player pass: best job by skill-match count.
	var npcs []*model.ActorInfo
	var cls Classification
	for _, name := range names {
		a := actors[name]
		job := bestJobMatch(a, table)
		if job == "" {
			a.Class = model.ActorUnclassified
			a.Job = ""
			a.Role = ""
			npcs = append(npcs, a)
			continue
		}
		a.Class = model.ActorPlayer
		a.Job = job
		if role, ok := table.Role(job); ok {
			a.Role = string(role)
		}
		cls.Party = append(cls.Party, a)
	}

	// NPC pass: group means over the non-player actors.
	var meanTaken, meanHits float64
	if len(npcs) > 0 {
		var taken, hits int64
		for _, a := range npcs {
			taken += a.DamageTaken
			hits += a.HitCount
		}
		meanTaken = float64(taken) / float64(len(npcs))
		meanHits = float64(hits) / float64(len(npcs))
	}

	for _, a := range npcs {
		damageRatio := 0.0
		if meanTaken > 0 {
			damageRatio = float64(a.DamageTaken) / meanTaken
		}
		hitRatio := 0.0
		if meanHits > 0 {
			hitRatio = float64(a.HitCount) / meanHits
		}

		isBoss := (damageRatio >= bossDamageRatioMin && hitRatio >= bossHitRatioMin && a.DamageTaken > bossDamageTakenMin) ||
			(a.DamageTaken > bossDamageTakenHigh && hitRatio >= bossHighHitRatioMin)
		if isBoss {
			a.Class = model.ActorBoss
		} else {
			a.Class = model.ActorAdd
		}
	}

	// Single-boss invariant: keep the highest damage-taken boss, demote
	// the rest.
	for _, a := range npcs {
		if a.Class != model.ActorBoss {
			continue
		}
		if cls.Boss == nil || a.DamageTaken > cls.Boss.DamageTaken {
			if cls.Boss != nil {
				cls.Boss.Class = model.ActorAdd
			}
			cls.Boss = a
		} else {
			a.Class = model.ActorAdd
		}
	}

	// Fallback promotion: no actor met the thresholds, so the most
	// damaged add becomes the boss.
	if cls.Boss == nil {
		var top *model.ActorInfo
		for _, a := range npcs {
			if a.Class != model.ActorAdd {
				continue
			}
			if top == nil || a.DamageTaken > top.DamageTaken {
				top = a
			}
		}
		if top != nil {
			top.Class = model.ActorBoss
			cls.Boss = top
		}
	}

	for _, a := range npcs {
		if a.Class == model.ActorAdd {
			cls.Adds = append(cls.Adds, a)
		}
	}
	sort.SliceStable(cls.Adds, func(i, j int) bool {
		if cls.Adds[i].DamageTaken == cls.Adds[j].DamageTaken {
			return cls.Adds[i].Name < cls.Adds[j].Name
		}
		return cls.Adds[i].DamageTaken > cls.Adds[j].DamageTaken
	})

	return cls
}

func bestJobMatch(a *model.ActorInfo, table *jobs.Table) string {
	counts := make(map[string]int)
	for skill := range a.Skills {
		if job, ok := table.JobForSkill(skill); ok {
			counts[job]++
		}
	}
	best := ""
	bestN := 0
	for job, n := range counts {
		if n > bestN || (n == bestN && (best == "" || job < best)) {
			best = job
			bestN = n
		}
	}
	return best
}

// Record reduces the classification to the storage shape.
func (c Classification) Record() model.RosterRecord {
	rec := model.RosterRecord{
		Adds:         make([]model.ActorSummary, 0, len(c.Adds)),
		PartyMembers: make([]model.ActorSummary, 0, len(c.Party)),
	}
	if c.Boss != nil {
		s := c.Boss.Summary()
		rec.Boss = &s
	}
	for _, a := range c.Adds {
		rec.Adds = append(rec.Adds, a.Summary())
	}
	for _, a := range c.Party {
		rec.PartyMembers = append(rec.PartyMembers, a.Summary())
	}
	return rec
}
