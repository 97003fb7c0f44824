// SPDX-License-Identifier: EPL-2.0

// Package drumscribe turns recorded percussion into a quantized sequence of
// hit and rest events.
//
// The engine finds percussive onsets in a mono waveform, describes each one
// with a few cheap features (peak amplitude, zero-crossing rate and a
// positional band-energy split), snaps the onsets to a tempo grid and fills
// the gaps between them with rests. The output feeds notation rendering and
// drum classification, both of which live outside this module.
//
// # Quick Start
//
//	buf, _ := os.ReadFile("groove.wav")
//
//	cfg := drumscribe.DefaultConfig()
//	cfg.BPM = 96
//	cfg.Subdivision = 16
//
//	res, err := drumscribe.Transcribe(buf, cfg)
//	if err != nil {
//	    var fe *wav.FormatError
//	    if errors.As(err, &fe) {
//	        // not a usable WAV file
//	    }
//	    return err
//	}
//
//	for _, e := range res.Events {
//	    fmt.Println(e.Kind, e.StartMs, e.DurationMs)
//	}
//
// # Other Formats
//
// Transcribe reads RIFF/WAVE buffers directly. MP3, Ogg Vorbis and AIFF go
// through a decoder from NewRegistry and TranscribeSource, which converts
// the stream to AnalysisRate mono first:
//
//	dec, _ := drumscribe.NewRegistry().ForPath("groove.mp3")
//	src, _ := dec.Decode(f)
//	res, err := drumscribe.TranscribeSource(src, drumscribe.DefaultConfig())
//
// # Pipeline
//
// The stages are exported from their own packages for callers that need the
// intermediate data:
//   - formats/wav parses the container into an audio.Waveform
//   - analysis frames the waveform and peak-picks onsets
//   - sequence quantizes onsets and builds the event list
//
// # Debugging
//
// Config.Debug receives one message per stage with slog-style attributes.
// Passing a slog.Logger's Debug method is enough:
//
//	cfg.Debug = slog.New(slog.NewTextHandler(os.Stderr, nil)).Debug
//
// Transcription is synchronous and keeps no state between calls, so
// concurrent calls with their own buffers are safe.
package drumscribe
