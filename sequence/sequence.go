// SPDX-License-Identifier: EPL-2.0

package sequence

import "github.com/ik5/drumscribe/analysis"

// Kind tells hits from rests.
type Kind string

const (
	KindHit  Kind = "hit"
	KindRest Kind = "rest"
)

// Event is one entry of the transcribed sequence. Features is set for hits
// only and is flattened into the event when marshalled.
type Event struct {
	Kind       Kind    `json:"kind"`
	StartMs    float64 `json:"startMs"`
	DurationMs float64 `json:"durationMs"`
	*analysis.Features
}

func (e Event) IsHit() bool { return e.Kind == KindHit }

// End is StartMs + DurationMs.
func (e Event) End() float64 { return e.StartMs + e.DurationMs }

type Stats struct {
	DetectedHits  int `json:"detectedHitsCount"`
	InsertedRests int `json:"insertedRestsCount"`
}

// Result is the output of one transcription.
type Result struct {
	Events []Event `json:"events"`
	Stats  Stats   `json:"stats"`
}

// Build turns onset candidates into an ordered list of hits and rests.
//
// Each candidate becomes a hit at its quantized time lasting one grid step.
// A leading rest covers [0, first hit) when the first hit starts later than
// restMinMs. Between hits, and after the last hit up to durationMs, a rest
// fills any gap of at least restMinMs. Gaps of zero or less never produce a
// rest. Without candidates the result holds no events at all.
//
// Candidates are expected in time order, as produced by
// analysis.DetectOnsets. Two candidates may land on the same grid point.
func Build(cands []analysis.Candidate, grid Grid, restMinMs, durationMs float64) *Result {
	res := &Result{Events: []Event{}}
	if len(cands) == 0 {
		return res
	}

	step := grid.StepMs()
	rest := func(start, length float64) {
		res.Events = append(res.Events, Event{Kind: KindRest, StartMs: start, DurationMs: length})
		res.Stats.InsertedRests++
	}

	first := grid.Quantize(cands[0].TimeMs)
	if first > restMinMs {
		rest(0, first)
	}

	for i, c := range cands {
		start := grid.Quantize(c.TimeMs)
		features := c.Features
		res.Events = append(res.Events, Event{
			Kind:       KindHit,
			StartMs:    start,
			DurationMs: step,
			Features:   &features,
		})
		res.Stats.DetectedHits++

		end := start + step
		if i+1 < len(cands) {
			if gap := grid.Quantize(cands[i+1].TimeMs) - end; gap > 0 && gap >= restMinMs {
				rest(end, gap)
			}
			continue
		}

		if tail := durationMs - end; tail > 0 && tail >= restMinMs {
			rest(end, tail)
		}
	}

	return res
}
