package model

import "time"

// Output record shapes consumed by the external storage collaborator.

type EncounterRecord struct {
	Start           string   `json:"start"`
	End             string   `json:"end"`
	Boss            string   `json:"boss"`
	Instance        string   `json:"instance"`
	Type            string   `json:"type"`
	LowestBossHP    *int64   `json:"lowestBossHp,omitempty"`
	MaxHP           *int64   `json:"maxHp,omitempty"`
	LowestBossHPPct *float64 `json:"lowestBossHpPct,omitempty"`
}

func (e *Encounter) Record() EncounterRecord {
	rec := EncounterRecord{
		Start:    e.Start.Format(time.RFC3339),
		End:      e.End.Format(time.RFC3339),
		Boss:     e.Boss,
		Instance: e.Instance,
		Type:     e.Termination.String(),
	}
	if e.HPObserved {
		low, max, pct := e.LowestBossHP, e.BossMaxHP, e.LowestBossHPPct
		rec.LowestBossHP = &low
		rec.MaxHP = &max
		rec.LowestBossHPPct = &pct
	}
	return rec
}

type ActorSummary struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
	Job  string `json:"job,omitempty"`
	Role string `json:"role,omitempty"`
}

// RosterRecord is the per-encounter classification output: exactly one
// boss (nil only when the encounter had no NPCs at all), the remaining
// hostiles, and the party.
type RosterRecord struct {
	Boss         *ActorSummary  `json:"boss"`
	Adds         []ActorSummary `json:"adds"`
	PartyMembers []ActorSummary `json:"partyMembers"`
}

type EventRecord struct {
	Ts        string `json:"ts"`
	ActorName string `json:"actorName"`
	Skill     string `json:"skill"`
	Amount    int64  `json:"amount"`
	Crit      bool   `json:"crit"`
	DirectHit bool   `json:"direct_hit"`
}

func (ev DamageEvent) Record() EventRecord {
	return EventRecord{
		Ts:        ev.Ts.Format(time.RFC3339),
		ActorName: ev.Attacker,
		Skill:     ev.Skill,
		Amount:    ev.Amount,
		Crit:      ev.Crit,
		DirectHit: ev.DirectHit,
	}
}

// ActorMetrics carries per-actor derived performance numbers. HPS,
// deaths and uptime are reported as zero placeholders; the parsing
// engine does not compute them.
type ActorMetrics struct {
	DPS    float64 `json:"dps"`
	HPS    float64 `json:"hps"`
	Deaths int     `json:"deaths"`
	Uptime float64 `json:"uptime"`
}
