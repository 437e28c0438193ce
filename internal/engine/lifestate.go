package engine

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/raidscope/raidscope/internal/model"
	"github.com/raidscope/raidscope/internal/parse"
)

// LifeStateSegmenter is the canonical wipe/kill-aware strategy: it
// tracks each party member's life state across a pull and closes
// encounters on boss kill, full-party wipe, zone transition, or end of
// log. All working state is local to one Segment call.
type LifeStateSegmenter struct {
	Roster   []string
	Local    string
	Boss     string
	Instance string
	Opts     Options
	Matcher  parse.DamageMatcher

	killRe *regexp.Regexp
}

// Only these explicit resurrection actions count as revives; passive
// buff-gain text never does.
var reviveActions = map[string]struct{}{
	"raise":         {},
	"resurrection":  {},
	"ascend":        {},
	"arise":         {},
	"undead rising": {},
}

var (
	reDefeated = regexp.MustCompile(`^(.+?) is defeated\.?$`)
	reZoneEnd  = regexp.MustCompile(`(?i)(zone changed|you have left|is shutting down|has been reset|is no longer sealed)`)
)

const youDefeated = "You are defeated."

func NewLifeStateSegmenter(roster []string, duty parse.DutyMatch, opts Options) (*LifeStateSegmenter, error) {
	if len(roster) == 0 {
		return nil, ErrNoRoster
	}
	s := &LifeStateSegmenter{
		Roster:   roster,
		Local:    roster[0],
		Boss:     duty.Boss,
		Instance: duty.Instance,
		Opts:     opts.withDefaults(),
		Matcher:  parse.ChatMatcher{},
	}
	if s.Boss != "" && s.Boss != parse.UnknownBoss {
		esc := regexp.QuoteMeta(s.Boss)
		s.killRe = regexp.MustCompile(`(?i)(defeats ` + esc + `|` + esc + ` is defeated)`)
	}
	return s, nil
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.IdleGap <= 0 {
		o.IdleGap = def.IdleGap
	}
	if o.PreScanIdleGap <= 0 {
		o.PreScanIdleGap = def.PreScanIdleGap
	}
	if o.PullDebounce <= 0 {
		o.PullDebounce = def.PullDebounce
	}
	if o.WipeGrace <= 0 {
		o.WipeGrace = def.WipeGrace
	}
	if o.MinLines <= 0 {
		o.MinLines = def.MinLines
	}
	if o.MinDuration <= 0 {
		o.MinDuration = def.MinDuration
	}
	if o.ScanWindow <= 0 {
		o.ScanWindow = def.ScanWindow
	}
	return o
}

func (s *LifeStateSegmenter) Segment(lines []model.Line) ([]model.Encounter, error) {
	if len(s.Roster) == 0 {
		return nil, ErrNoRoster
	}

	alive := make(map[string]bool, len(s.Roster))
	resetAlive := func() {
		for _, n := range s.Roster {
			alive[n] = true
		}
	}
	resetAlive()

	var out []model.Encounter
	var cur *model.Encounter
	var lastTerm time.Time
	var wipeAt time.Time
	curLines := 0

	closeCur := func(end time.Time, term model.TerminationType) {
		if cur == nil {
			return
		}
		cur.End = end
		cur.Termination = term
		if cur.HPObserved && cur.BossMaxHP > 0 {
			cur.LowestBossHPPct = float64(cur.LowestBossHP) / float64(cur.BossMaxHP) * 100
		}
		if curLines >= s.Opts.MinLines && end.Sub(cur.Start) >= s.Opts.MinDuration {
			out = append(out, *cur)
		}
		lastTerm = end
		cur = nil
		curLines = 0
		wipeAt = time.Time{}
		resetAlive()
	}

	for i, ln := range lines {
		if len(ln.Fields) < 2 {
			continue
		}
		op := ln.Opcode()

		// A pending wipe closes once the grace period elapses, or once
		// the next timestamp lands beyond it.
		if cur != nil && !wipeAt.IsZero() && ln.TsOK && ln.Ts.Sub(wipeAt) >= s.Opts.WipeGrace {
			closeCur(wipeAt, model.TerminationWipe)
		}

		switch {
		case op == model.OpZone:
			if cur != nil {
				cur.EndLine = i
				end := cur.End
				if ln.TsOK {
					end = ln.Ts
				}
				closeCur(end, model.TerminationWipe)
			}

		case op == model.OpChat:
			msg := parse.MessageText(ln)
			if msg == "" {
				break
			}
			if cur != nil && s.killRe != nil && s.killRe.MatchString(msg) {
				cur.EndLine = i
				end := cur.End
				if ln.TsOK {
					end = ln.Ts
				}
				closeCur(end, model.TerminationKill)
				continue
			}
			if msg == youDefeated {
				alive[s.Local] = false
			} else if m := reDefeated.FindStringSubmatch(msg); m != nil {
				name := strings.TrimSpace(m[1])
				if _, member := alive[name]; member {
					alive[name] = false
				}
			}
			if cur != nil && reZoneEnd.MatchString(msg) {
				cur.EndLine = i
				end := cur.End
				if ln.TsOK {
					end = ln.Ts
				}
				closeCur(end, model.TerminationWipe)
				continue
			}

		case op == model.OpAbility || op == model.OpAbilityAOE:
			if s.isReviveAction(ln.Field(5)) {
				target := resolveMemberName(alive, ln.Field(7))
				if target != "" {
					alive[target] = true
					wipeAt = time.Time{}
				}
			}
			fallthrough
		case op == model.OpCast || op == model.OpCastAOE || op == model.OpStatus || op == model.OpEffect:
			if cur == nil && ln.TsOK {
				actor := resolveMemberName(alive, ln.Field(3))
				if actor != "" && (lastTerm.IsZero() || ln.Ts.Sub(lastTerm) >= s.Opts.PullDebounce) {
					enc := model.Encounter{
						Start:     ln.Ts,
						End:       ln.Ts,
						StartLine: i,
						EndLine:   i,
						Boss:      s.Boss,
						Instance:  s.Instance,
					}
					cur = &enc
					curLines = 0
				}
			}
		}

		if cur != nil && (op == model.OpEffect || op == model.OpHP) {
			s.observeBossHP(cur, ln)
		}

		if cur != nil {
			curLines++
			cur.EndLine = i
			if ln.TsOK {
				cur.End = ln.Ts
			}
			if wipeAt.IsZero() && ln.TsOK && allDead(alive) {
				wipeAt = ln.Ts
			}
		}
	}

	// Trailing encounter: the log ended mid-pull.
	if cur != nil {
		if !wipeAt.IsZero() {
			closeCur(wipeAt, model.TerminationWipe)
		} else {
			closeCur(cur.End, model.TerminationWipe)
		}
	}
	return out, nil
}

func (s *LifeStateSegmenter) isReviveAction(skill string) bool {
	_, ok := reviveActions[strings.ToLower(strings.TrimSpace(skill))]
	return ok
}

// resolveMemberName maps a raw actor/target field to a roster name,
// trying the canonicalized form when the raw one is server-suffixed.
func resolveMemberName(alive map[string]bool, raw string) string {
	if raw == "" {
		return ""
	}
	if _, ok := alive[raw]; ok {
		return raw
	}
	if c := parse.CanonicalName(raw); c != "" {
		if _, ok := alive[c]; ok {
			return c
		}
	}
	return ""
}

func allDead(alive map[string]bool) bool {
	for _, a := range alive {
		if a {
			return false
		}
	}
	return true
}

// observeBossHP collects HP telemetry for lines whose actor name
// contains the boss name; the lowest value seen feeds the HP-remaining
// figure at encounter end (0 implies a clean kill).
func (s *LifeStateSegmenter) observeBossHP(cur *model.Encounter, ln model.Line) {
	if s.Boss == "" || s.Boss == parse.UnknownBoss {
		return
	}
	name := ln.Field(3)
	if name == "" || !strings.Contains(strings.ToLower(name), strings.ToLower(s.Boss)) {
		return
	}
	curHP, err := strconv.ParseInt(strings.TrimSpace(ln.Field(5)), 10, 64)
	if err != nil || curHP < 0 {
		return
	}
	maxHP, err := strconv.ParseInt(strings.TrimSpace(ln.Field(6)), 10, 64)
	if err != nil || maxHP <= 0 {
		return
	}
	if !cur.HPObserved || curHP < cur.LowestBossHP {
		cur.LowestBossHP = curHP
	}
	if maxHP > cur.BossMaxHP {
		cur.BossMaxHP = maxHP
	}
	cur.HPObserved = true
}
