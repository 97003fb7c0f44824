// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio primitives that feed the drum
// transcription engine.
//
// This package contains:
//   - Source interface for streamed audio input
//   - Waveform, a fully decoded block of samples, and WaveformSource to
//     stream one back out
//   - Collect to drain a Source into a Waveform
//   - MonoMixer and MixDown for channel folding
//   - Resample for offline sample rate conversion
//   - Registry for decoder lookup by format key or file extension
//
// # Source Interface
//
// All decoders in formats/ return a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// # Building an analysis waveform
//
// The transcription engine wants mono audio at a fixed rate. The usual chain
// is decode, mix down while streaming, collect, then resample:
//
//	mono := audio.NewMonoMixer(src)
//	wf, err := audio.Collect(mono, 4096)
//	if err != nil {
//	    return err
//	}
//	wf, err = audio.Resample(wf, 44100)
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. Collect treats
// io.EOF as normal termination and wraps any other error.
package audio
