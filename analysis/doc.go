// SPDX-License-Identifier: EPL-2.0

// Package analysis finds percussive onsets in a mono waveform.
//
// Analysis runs in two steps. Analyze frames the samples (1024-sample
// window, 256-sample hop by default) and produces a per-frame RMS energy
// curve and a smoothed, normalized onset-strength curve. DetectOnsets then
// peak-picks the onset-strength curve under a threshold and a refractory gap,
// and describes each onset with Features taken from the two frames of audio
// that follow it.
//
//	fr := analysis.Analyze(wf, analysis.DefaultFrameOptions())
//	onsets := analysis.DetectOnsets(wf, fr, analysis.OnsetOptions{
//	    Threshold:       0.15,
//	    MinInterOnsetMs: 100,
//	})
//
// Onset strength is a spectral-flux proxy computed from sample power, and
// BandEnergy splits the feature window by position rather than frequency.
// Both are deliberate approximations; see their doc comments.
//
// Everything here is a pure function of its inputs and safe for concurrent
// use on distinct or shared read-only waveforms.
package analysis
