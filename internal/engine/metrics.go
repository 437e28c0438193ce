package engine

import "github.com/raidscope/raidscope/internal/model"

// ActorDPS computes per-actor DPS for a closed encounter: the sum of
// that actor's damage-event amounts over the encounter duration. HPS,
// deaths and uptime stay zero; the parsing engine does not compute
// them.
func ActorDPS(enc *model.Encounter, events []model.DamageEvent) map[string]model.ActorMetrics {
	dur := enc.DurationSeconds()
	totals := make(map[string]int64)
	for _, ev := range events {
		totals[ev.Attacker] += ev.Amount
	}

	out := make(map[string]model.ActorMetrics, len(totals))
	for name, total := range totals {
		out[name] = model.ActorMetrics{DPS: float64(total) / float64(dur)}
	}
	return out
}
