package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/raidscope/raidscope/internal/model"
)

// UnknownAttacker labels damage reported in the target-only message
// form, where the log never names the source.
const UnknownAttacker = "Unknown"

// DamageHit is one attacker/target/amount tuple extracted from a
// chat-style combat message.
type DamageHit struct {
	Attacker  string
	Target    string
	Amount    int64
	Crit      bool
	DirectHit bool
}

// DamageMatcher extracts damage tuples from free-text combat messages.
// Isolating the matching rules here lets them be replaced or extended
// without touching the segmenter.
type DamageMatcher interface {
	Match(msg string) (DamageHit, bool)
}

var (
	reLeadJunk = regexp.MustCompile(`^[^\w]+`)
	reHit      = regexp.MustCompile(`(?i)^(.+?) hits (.+?) for (\d+) damage\.?$`)
	reTakes    = regexp.MustCompile(`(?i)^(?:critical! ?|direct hit! ?)*(.+?) takes (\d+) damage\.?$`)
)

// MessageText pulls the message body from a chat/system line: the first
// non-empty of fields 4, 3, 2, with any leading non-word prefix
// stripped.
func MessageText(ln model.Line) string {
	for _, i := range []int{4, 3, 2} {
		if s := strings.TrimSpace(ln.Field(i)); s != "" {
			return reLeadJunk.ReplaceAllString(s, "")
		}
	}
	return ""
}

// ChatMatcher matches the two chat-style damage message forms:
//
//	<attacker> hits <target> for <amount> damage.
//	[critical!|direct hit!] <target> takes <amount> damage.
type ChatMatcher struct{}

func (ChatMatcher) Match(msg string) (DamageHit, bool) {
	if msg == "" {
		return DamageHit{}, false
	}
	lower := strings.ToLower(msg)
	crit := strings.Contains(lower, "critical")
	direct := strings.Contains(lower, "direct hit")

	if m := reHit.FindStringSubmatch(msg); m != nil {
		attacker := strings.TrimSpace(m[1])
		target := strings.TrimSpace(m[2])
		amount, err := strconv.ParseInt(m[3], 10, 64)
		if err != nil || amount <= 0 || attacker == "" || target == "" {
			return DamageHit{}, false
		}
		return DamageHit{Attacker: attacker, Target: target, Amount: amount, Crit: crit, DirectHit: direct}, true
	}

	if m := reTakes.FindStringSubmatch(msg); m != nil {
		target := strings.TrimSpace(m[1])
		amount, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil || amount <= 0 || target == "" {
			return DamageHit{}, false
		}
		return DamageHit{Attacker: UnknownAttacker, Target: target, Amount: amount, Crit: crit, DirectHit: direct}, true
	}

	return DamageHit{}, false
}
