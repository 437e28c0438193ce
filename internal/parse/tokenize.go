package parse

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/raidscope/raidscope/internal/model"
)

// Timestamp layouts seen across client versions. Field 1 is attempted
// against each in order; a line that parses with none of them is
// excluded from boundary and timing decisions but still carries text.
var tsLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Tokenize splits one raw line on '|' into its ordered field list.
// Returns false for lines with fewer than 2 fields; those are not
// actionable and must be skipped by callers.
func Tokenize(raw string) (model.Line, bool) {
	raw = strings.TrimSuffix(raw, "\r")
	if raw == "" {
		return model.Line{}, false
	}
	fields := strings.Split(raw, "|")
	if len(fields) < 2 {
		return model.Line{Raw: raw, Fields: fields}, false
	}
	ln := model.Line{Raw: raw, Fields: fields}
	ln.Ts, ln.TsOK = ParseTimestamp(fields[1])
	return ln, true
}

func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range tsLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// TokenizeAll reads newline-separated raw text and returns every
// actionable line in order.
func TokenizeAll(r io.Reader) ([]model.Line, error) {
	s := bufio.NewScanner(r)
	// allow long lines
	buf := make([]byte, 0, 128*1024)
	s.Buffer(buf, 4*1024*1024)

	var out []model.Line
	for s.Scan() {
		ln, ok := Tokenize(s.Text())
		if !ok {
			continue
		}
		out = append(out, ln)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
