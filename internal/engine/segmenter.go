package engine

import (
	"errors"
	"time"

	"github.com/raidscope/raidscope/internal/model"
)

// ErrNoRoster is returned when no party member could be detected in the
// scan window. Wipe tracking cannot be established without a roster, so
// this is the one parsing condition that propagates to the caller.
var ErrNoRoster = errors.New("engine: no party roster detected")

// Options carries the tunable thresholds shared by both segmentation
// strategies. The defaults suit typical raid logs; all of them are
// overridable through config.
type Options struct {
	// IdleGap splits active-line runs in per-encounter re-scans.
	IdleGap time.Duration
	// PreScanIdleGap is the coarser split used by bulk pre-scans.
	PreScanIdleGap time.Duration
	// PullDebounce suppresses pull starts this close after a wipe or
	// kill, so trailing cleanup actions do not re-trigger.
	PullDebounce time.Duration
	// WipeGrace is how long the party must stay fully dead before the
	// encounter closes as a wipe.
	WipeGrace time.Duration
	// Encounters shorter than MinLines or MinDuration are discarded.
	MinLines    int
	MinDuration time.Duration
	// ScanWindow bounds the prefix scanned for roster and duty names.
	ScanWindow int
}

func DefaultOptions() Options {
	return Options{
		IdleGap:        8 * time.Second,
		PreScanIdleGap: 30 * time.Second,
		PullDebounce:   10 * time.Second,
		WipeGrace:      3 * time.Second,
		MinLines:       8,
		MinDuration:    8 * time.Second,
		ScanWindow:     200,
	}
}

// Segmenter partitions a tokenized line sequence into encounters. The
// two implementations address two deployment modes: IdleGapSegmenter is
// the cheap bulk pre-scan, LifeStateSegmenter the precise wipe/kill
// aware scan. Both emit the same Encounter shape.
type Segmenter interface {
	Segment(lines []model.Line) ([]model.Encounter, error)
}
