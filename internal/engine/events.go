package engine

import (
	"github.com/raidscope/raidscope/internal/model"
	"github.com/raidscope/raidscope/internal/parse"
)

// EncounterDetail is the full per-encounter extraction: every observed
// actor with accumulated statistics, and every matched damage event.
// Both attacker and target of every event resolve to an ActorInfo
// created within the same scan.
type EncounterDetail struct {
	Actors map[string]*model.ActorInfo
	Events []model.DamageEvent
}

// ExtractEvents scans one encounter's line subrange. Chat lines feed
// damage totals and events; ability-use lines feed each actor's
// distinct-skill set and supply the skill label for subsequent hits,
// which the chat form does not carry itself.
func ExtractEvents(lines []model.Line, matcher parse.DamageMatcher) *EncounterDetail {
	if matcher == nil {
		matcher = parse.ChatMatcher{}
	}
	d := &EncounterDetail{Actors: make(map[string]*model.ActorInfo)}

	ensure := func(name string) *model.ActorInfo {
		a := d.Actors[name]
		if a == nil {
			a = model.NewActorInfo(name)
			d.Actors[name] = a
		}
		return a
	}

	lastSkill := make(map[string]string)

	for _, ln := range lines {
		switch ln.Opcode() {
		case model.OpChat:
			hit, ok := matcher.Match(parse.MessageText(ln))
			if !ok {
				continue
			}
			attacker := ensure(hit.Attacker)
			target := ensure(hit.Target)
			attacker.DamageDealt += hit.Amount
			target.DamageTaken += hit.Amount
			target.HitCount++

			skill := lastSkill[hit.Attacker]
			if skill == "" {
				skill = "Attack"
			}
			d.Events = append(d.Events, model.DamageEvent{
				Ts:        ln.Ts,
				Attacker:  hit.Attacker,
				Target:    hit.Target,
				Skill:     skill,
				Amount:    hit.Amount,
				Crit:      hit.Crit,
				DirectHit: hit.DirectHit,
			})

		case model.OpCast, model.OpCastAOE, model.OpAbility, model.OpAbilityAOE, model.OpStatus:
			actor := ln.Field(3)
			skill := ln.Field(5)
			if actor == "" || skill == "" {
				continue
			}
			a := ensure(actor)
			a.ObserveSkill(skill)
			if id := ln.Field(2); id != "" && a.ID == "" {
				a.ID = id
			}
			lastSkill[actor] = skill
		}
	}
	return d
}
