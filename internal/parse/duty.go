package parse

import (
	"regexp"
	"strings"

	"github.com/raidscope/raidscope/internal/model"
)

const (
	UnknownDuty = "Unknown Duty"
	UnknownBoss = "Unknown Boss"
)

// Duty is one static library entry: an instance, its bosses, and the
// keywords/aliases the log text is searched for.
type Duty struct {
	Instance string
	Bosses   []string
	Keywords []string
}

// dutyLibrary is the static keyword library. Lookup only; never
// mutated.
var dutyLibrary = []Duty{
	{
		Instance: "The Bowl of Embers (Extreme)",
		Bosses:   []string{"Ifrit"},
		Keywords: []string{"bowl of embers", "ifrit"},
	},
	{
		Instance: "The Navel (Extreme)",
		Bosses:   []string{"Titan"},
		Keywords: []string{"the navel", "titan"},
	},
	{
		Instance: "The Howling Eye (Extreme)",
		Bosses:   []string{"Garuda"},
		Keywords: []string{"howling eye", "garuda"},
	},
	{
		Instance: "The Second Coil of Bahamut - Turn 4",
		Bosses:   []string{"Nael deus Darnus"},
		Keywords: []string{"second coil", "ragnarok", "nael"},
	},
	{
		Instance: "The Unending Coil of Bahamut (Ultimate)",
		Bosses:   []string{"Twintania", "Nael deus Darnus", "Bahamut Prime"},
		Keywords: []string{"unending coil", "ucob", "twintania", "bahamut prime"},
	},
	{
		Instance: "The Weapon's Refrain (Ultimate)",
		Bosses:   []string{"The Ultima Weapon"},
		Keywords: []string{"weapon's refrain", "uwu", "ultima weapon"},
	},
	{
		Instance: "The Epic of Alexander (Ultimate)",
		Bosses:   []string{"Living Liquid", "Brute Justice", "Alexander Prime", "Perfect Alexander"},
		Keywords: []string{"epic of alexander", "tea", "living liquid", "brute justice"},
	},
	{
		Instance: "Eden's Promise: Eternity (Savage)",
		Bosses:   []string{"The Oracle of Darkness"},
		Keywords: []string{"eden's promise", "eternity", "oracle of darkness"},
	},
	{
		Instance: "Asphodelos: The Fourth Circle (Savage)",
		Bosses:   []string{"Hesperos"},
		Keywords: []string{"asphodelos", "fourth circle", "hesperos"},
	},
	{
		Instance: "Abyssos: The Eighth Circle (Savage)",
		Bosses:   []string{"Hephaistos"},
		Keywords: []string{"abyssos", "eighth circle", "hephaistos"},
	},
	{
		Instance: "Anabaseios: The Twelfth Circle (Savage)",
		Bosses:   []string{"Athena", "Pallas Athena"},
		Keywords: []string{"anabaseios", "twelfth circle", "athena"},
	},
}

// DutyMatch is the resolved instance/boss pair for one log.
type DutyMatch struct {
	Instance string
	Boss     string
}

var (
	reFallbackDefeated = regexp.MustCompile(`(?i)(?:^|[^\w])([A-Z][\w' \-]{2,}?) is defeated`)
	reFallbackHits     = regexp.MustCompile(`(?i)hits ([^|]+?) for \d+ damage`)
)

// MatchDuty scans a line window for the first library entry whose
// keyword, alias, or boss name literally appears, preferring entries
// where both the instance and a specific boss match. When the library
// misses, the boss name is guessed from defeat/hit message patterns;
// when nothing matches, both names stay unknown.
func MatchDuty(lines []model.Line, window int) DutyMatch {
	if window <= 0 {
		window = DefaultScanWindow
	}
	if window > len(lines) {
		window = len(lines)
	}

	var partial *DutyMatch
	for _, duty := range dutyLibrary {
		boss, bossHit := scanForAny(lines[:window], duty.Bosses)
		_, keywordHit := scanForAny(lines[:window], duty.Keywords)
		if bossHit && keywordHit {
			return DutyMatch{Instance: duty.Instance, Boss: boss}
		}
		if partial == nil && (bossHit || keywordHit) {
			m := DutyMatch{Instance: duty.Instance, Boss: duty.Bosses[0]}
			if bossHit {
				m.Boss = boss
			}
			partial = &m
		}
	}
	if partial != nil {
		return *partial
	}

	if boss := fallbackBossName(lines[:window]); boss != "" {
		return DutyMatch{Instance: UnknownDuty, Boss: boss}
	}
	return DutyMatch{Instance: UnknownDuty, Boss: UnknownBoss}
}

func scanForAny(lines []model.Line, needles []string) (string, bool) {
	for _, needle := range needles {
		ln := strings.ToLower(needle)
		for _, line := range lines {
			if strings.Contains(strings.ToLower(line.Raw), ln) {
				return needle, true
			}
		}
	}
	return "", false
}

// fallbackBossName guesses a boss from "<X> is defeated" first, then
// from the most frequently hit target.
func fallbackBossName(lines []model.Line) string {
	hitCounts := make(map[string]int)
	for _, ln := range lines {
		if ln.Opcode() != model.OpChat {
			continue
		}
		msg := MessageText(ln)
		if msg == "" {
			continue
		}
		if m := reFallbackDefeated.FindStringSubmatch(msg); m != nil {
			return strings.TrimSpace(m[1])
		}
		if m := reFallbackHits.FindStringSubmatch(msg); m != nil {
			hitCounts[strings.TrimSpace(m[1])]++
		}
	}

	best := ""
	bestN := 0
	for name, n := range hitCounts {
		if n > bestN || (n == bestN && name < best) {
			best = name
			bestN = n
		}
	}
	return best
}
