package parse

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/raidscope/raidscope/internal/model"
)

// DefaultScanWindow bounds the log prefix scanned for roster and duty
// declarations.
const DefaultScanWindow = 200

const maxPartySize = 8

// Pet aliases show up on roster-declaration lines but are never party
// members.
var petNames = map[string]struct{}{
	"Carbuncle": {},
	"Eos":       {},
	"Selene":    {},
}

var reValidName = regexp.MustCompile(`^[A-Za-z][A-Za-z' \-]*$`)

// ExtractParty scans at most the first window lines for
// roster-declaration lines and returns the canonical party member names
// in insertion order, capped at 8. The first collected name is the
// local player: first-person messages ("you") resolve to it.
func ExtractParty(lines []model.Line, window int) []string {
	if window <= 0 {
		window = DefaultScanWindow
	}
	if window > len(lines) {
		window = len(lines)
	}

	seen := make(map[string]struct{}, maxPartySize)
	var out []string
	for _, ln := range lines[:window] {
		if ln.Opcode() != model.OpRoster {
			continue
		}
		name := CanonicalName(ln.Field(3))
		if name == "" {
			continue
		}
		if _, pet := petNames[name]; pet {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
		if len(out) == maxPartySize {
			break
		}
	}
	return out
}

// CanonicalName strips a trailing server name from the client's
// "NameServer" concatenation by truncating at the third uppercase
// letter. Results shorter than 3 characters, or containing anything
// outside letters, space, apostrophe and hyphen, are rejected.
func CanonicalName(raw string) string {
	raw = strings.TrimSpace(raw)
	upper := 0
	for i, r := range raw {
		if unicode.IsUpper(r) {
			upper++
			if upper == 3 {
				raw = raw[:i]
				break
			}
		}
	}
	raw = strings.TrimSpace(raw)
	if len(raw) < 3 {
		return ""
	}
	if !reValidName.MatchString(raw) {
		return ""
	}
	return raw
}
