// SPDX-License-Identifier: EPL-2.0

package drumscribe

import (
	"fmt"

	"github.com/ik5/drumscribe/analysis"
	"github.com/ik5/drumscribe/audio"
	"github.com/ik5/drumscribe/formats/wav"
	"github.com/ik5/drumscribe/sequence"
)

// Result is the transcribed event sequence plus counters.
type Result = sequence.Result

// Transcribe decodes a RIFF/WAVE buffer and transcribes it at the file's own
// sample rate. Multi-channel files are mixed down to mono first.
//
// Container problems are returned as *wav.FormatError. Audio without any
// onset is not an error and yields an empty event list.
func Transcribe(buf []byte, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	wf, err := wav.Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("decoding wav: %w", err)
	}
	cfg.debug("decoded wav",
		"samples", len(wf.Samples),
		"rate", wf.SampleRate,
		"channels", wf.Channels,
		"durationMs", wf.DurationMs(),
	)

	wf, err = audio.MixDown(wf)
	if err != nil {
		return nil, err
	}

	return TranscribeWaveform(wf, cfg)
}

// TranscribeSource drains src, converts it to AnalysisRate mono and
// transcribes the result. src is closed before returning.
func TranscribeSource(src audio.Source, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		src.Close()
		return nil, err
	}

	wf, err := LoadMono(src, AnalysisRate)
	if err != nil {
		return nil, err
	}
	cfg.debug("loaded source", "samples", len(wf.Samples), "rate", wf.SampleRate)

	return TranscribeWaveform(wf, cfg)
}

// TranscribeWaveform runs onset detection and sequencing on a mono waveform.
func TranscribeWaveform(wf *audio.Waveform, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if wf.SampleRate <= 0 {
		return nil, audio.ErrInvalidRate
	}
	if wf.Channels > 1 {
		return nil, fmt.Errorf("%w: want mono, got %d channels", audio.ErrInvalidChannels, wf.Channels)
	}

	frames := analysis.Analyze(wf, analysis.DefaultFrameOptions())
	cfg.debug("analysed frames",
		"frames", frames.Len(),
		"msPerFrame", frames.MsPerFrame,
		"silentFrames", analysis.SilentFrames(frames.Energy, cfg.SilenceRMSThreshold),
	)

	onsets := analysis.DetectOnsets(wf, frames, analysis.OnsetOptions{
		Threshold:       cfg.OnsetThreshold,
		MinInterOnsetMs: cfg.MinInterOnsetMs,
	})
	cfg.debug("detected onsets", "count", len(onsets))

	grid := sequence.Grid{BPM: cfg.BPM, Subdivision: cfg.Subdivision}
	res := sequence.Build(onsets, grid, cfg.RestMinMs, wf.DurationMs())
	cfg.debug("built sequence",
		"gridMs", grid.StepMs(),
		"events", len(res.Events),
		"hits", res.Stats.DetectedHits,
		"rests", res.Stats.InsertedRests,
	)

	return res, nil
}
