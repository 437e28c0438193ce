package model

import (
	"math"
	"time"
)

// TerminationType says how an encounter ended.
type TerminationType uint8

const (
	TerminationWipe TerminationType = iota
	TerminationKill
)

func (t TerminationType) String() string {
	if t == TerminationKill {
		return "kill"
	}
	return "wipe"
}

// Encounter is one boss pull: a contiguous line subrange with start/end
// timestamps, resolved boss/instance names and, when telemetry was
// observed, the lowest boss HP seen before the end.
type Encounter struct {
	Start time.Time
	End   time.Time

	// Inclusive indices into the scanned line sequence.
	StartLine int
	EndLine   int

	Boss        string
	Instance    string
	Termination TerminationType

	LowestBossHP    int64
	BossMaxHP       int64
	LowestBossHPPct float64
	HPObserved      bool
}

// DurationSeconds is max(1, round((end-start)/1000)).
func (e *Encounter) DurationSeconds() int64 {
	if e.Start.IsZero() || e.End.IsZero() {
		return 1
	}
	d := e.End.Sub(e.Start).Seconds()
	if d < 0 {
		return 1
	}
	sec := int64(math.Round(d))
	if sec < 1 {
		return 1
	}
	return sec
}

// DamageEvent is one matched damage line, scoped to exactly one
// encounter and immutable after creation.
type DamageEvent struct {
	Ts        time.Time
	Attacker  string
	Target    string
	Skill     string
	Amount    int64
	Crit      bool
	DirectHit bool
}
