// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding on top
// of github.com/go-audio/aiff.
//
// Supported:
//   - PCM 16-bit and 24-bit
//   - Any channel count and sample rate
//
// Samples are normalized by the full-scale value of the file's bit depth, the
// same way the WAV parser does, so both formats feed identical values into
// the transcription engine.
package aiff
