package engine

import (
	"time"

	"github.com/raidscope/raidscope/internal/jobs"
	"github.com/raidscope/raidscope/internal/model"
	"github.com/raidscope/raidscope/internal/parse"
)

// DetailTimeBuffer pads a pre-scanned encounter's line range when it is
// re-scanned for full detail, so edge events just outside the boundary
// timestamps are not lost.
const DetailTimeBuffer = 5 * time.Second

// EncounterReport is one fully processed encounter: boundaries,
// classified roster, damage events, and derived metrics.
type EncounterReport struct {
	Encounter model.Encounter
	Roster    Classification
	Events    []model.DamageEvent
	Metrics   map[string]model.ActorMetrics
}

// Report is the output of one complete engine run over an in-memory
// line sequence.
type Report struct {
	Instance   string
	Boss       string
	Party      []string
	Encounters []EncounterReport
}

// BuildReport runs the whole pipeline front to back: roster extraction,
// duty resolution, wipe/kill-aware segmentation, then per-encounter
// event extraction, classification, and metrics. The only fatal
// condition is an empty roster.
func BuildReport(lines []model.Line, table *jobs.Table, opts Options) (*Report, error) {
	opts = opts.withDefaults()

	roster := parse.ExtractParty(lines, opts.ScanWindow)
	if len(roster) == 0 {
		return nil, ErrNoRoster
	}
	duty := parse.MatchDuty(lines, opts.ScanWindow)

	seg, err := NewLifeStateSegmenter(roster, duty, opts)
	if err != nil {
		return nil, err
	}
	encs, err := seg.Segment(lines)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		Instance:   duty.Instance,
		Boss:       duty.Boss,
		Party:      roster,
		Encounters: make([]EncounterReport, 0, len(encs)),
	}
	for _, enc := range encs {
		sub := lines[enc.StartLine : enc.EndLine+1]
		detail := ExtractEvents(sub, seg.Matcher)
		e := enc
		rep.Encounters = append(rep.Encounters, EncounterReport{
			Encounter: e,
			Roster:    Classify(detail.Actors, table),
			Events:    detail.Events,
			Metrics:   ActorDPS(&e, detail.Events),
		})
	}
	return rep, nil
}

// PreScan is the cheap bulk pass: idle-gap boundaries only, bounded
// memory, no event extraction.
func PreScan(lines []model.Line, opts Options) ([]model.Encounter, error) {
	opts = opts.withDefaults()
	return NewIdleGapSegmenter(opts.PreScanIdleGap).Segment(lines)
}

// BuildEncounterDetail re-scans only one pre-scanned encounter's line
// range (padded by DetailTimeBuffer) and produces its full report.
// This is the second phase of the large-file mode: expensive extraction
// deferred until explicitly requested per encounter.
func BuildEncounterDetail(lines []model.Line, enc model.Encounter, table *jobs.Table, opts Options) EncounterReport {
	opts = opts.withDefaults()

	start, end := enc.StartLine, enc.EndLine
	for start > 0 && lines[start-1].TsOK && enc.Start.Sub(lines[start-1].Ts) <= DetailTimeBuffer {
		start--
	}
	for end < len(lines)-1 && lines[end+1].TsOK && lines[end+1].Ts.Sub(enc.End) <= DetailTimeBuffer {
		end++
	}

	detail := ExtractEvents(lines[start:end+1], parse.ChatMatcher{})
	e := enc
	return EncounterReport{
		Encounter: e,
		Roster:    Classify(detail.Actors, table),
		Events:    detail.Events,
		Metrics:   ActorDPS(&e, detail.Events),
	}
}

// EncounterRecords bundles one encounter's storage-shaped outputs.
type EncounterRecords struct {
	Encounter model.EncounterRecord         `json:"encounter"`
	Roster    model.RosterRecord            `json:"roster"`
	Events    []model.EventRecord           `json:"events"`
	Metrics   map[string]model.ActorMetrics `json:"metrics"`
}

// ReportRecords is the full run rendered for the storage collaborator
// or a live subscriber.
type ReportRecords struct {
	Instance   string             `json:"instance"`
	Boss       string             `json:"boss"`
	Party      []string           `json:"party"`
	Encounters []EncounterRecords `json:"encounters"`
}

func (r *Report) Records() ReportRecords {
	out := ReportRecords{
		Instance:   r.Instance,
		Boss:       r.Boss,
		Party:      r.Party,
		Encounters: make([]EncounterRecords, 0, len(r.Encounters)),
	}
	for i := range r.Encounters {
		er := &r.Encounters[i]
		out.Encounters = append(out.Encounters, EncounterRecords{
			Encounter: er.Encounter.Record(),
			Roster:    er.Roster.Record(),
			Events:    er.EventRecords(),
			Metrics:   er.Metrics,
		})
	}
	return out
}

// EventRecords renders the encounter's events in storage shape.
func (r *EncounterReport) EventRecords() []model.EventRecord {
	out := make([]model.EventRecord, 0, len(r.Events))
	for _, ev := range r.Events {
		out = append(out, ev.Record())
	}
	return out
}
