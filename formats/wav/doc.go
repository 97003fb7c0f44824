// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes uncompressed PCM WAV audio.
//
// # Decoding
//
// Parse turns a complete RIFF/WAVE buffer into an audio.Waveform:
//
//	data, _ := os.ReadFile("take.wav")
//	wf, err := wav.Parse(data)
//	if err != nil {
//	    var fe *wav.FormatError
//	    if errors.As(err, &fe) {
//	        // malformed container, fe.Offset says where
//	    }
//	}
//
// Supported encodings:
//   - PCM 16-bit and 24-bit little-endian (format tag 1, or
//     WAVE_FORMAT_EXTENSIBLE with a PCM sub-format)
//   - Any channel count; samples stay interleaved
//   - Any sample rate
//
// Sub-chunks are walked in order, honouring RIFF word alignment, so LIST,
// fact and other metadata chunks before the audio are skipped. Only the first
// data chunk is decoded.
//
// Decoder wraps Parse for use with an audio.Registry.
//
// # Errors
//
// All parse failures are *FormatError values wrapping one of:
//   - ErrNotWavFile: missing RIFF/WAVE signature
//   - ErrMissingFormat: no usable fmt chunk before the data
//   - ErrUnsupportedFormat: not 16/24-bit PCM
//   - ErrNoDataChunk: the container holds no audio
//   - ErrTruncated: a chunk header or a sample is cut off
//
// A data chunk whose declared size runs past the buffer is accepted as long
// as the bytes present end on a whole sample.
//
// # Encoding
//
// Encode writes 16 or 24-bit PCM through github.com/go-audio/wav:
//
//	f, _ := os.Create("analysis.wav")
//	defer f.Close()
//	err := wav.Encode(f, wf, 16)
package wav
