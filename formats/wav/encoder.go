// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/drumscribe/audio"
	"github.com/ik5/drumscribe/utils"
)

// Encode writes wf as a PCM WAV file of the given bit depth (16 or 24).
// The writer must be seekable because the RIFF sizes are patched on close.
func Encode(w io.WriteSeeker, wf *audio.Waveform, bitDepth int) error {
	if bitDepth != 16 && bitDepth != 24 {
		return fmt.Errorf("%w: got %d", ErrBitDepth, bitDepth)
	}
	if wf.SampleRate <= 0 {
		return audio.ErrInvalidRate
	}

	channels := max(wf.Channels, 1)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  wf.SampleRate,
		},
		Data:           make([]int, len(wf.Samples)),
		SourceBitDepth: bitDepth,
	}
	for i, s := range wf.Samples {
		buf.Data[i] = utils.FloatToPCM(s, bitDepth)
	}

	enc := gowav.NewEncoder(w, wf.SampleRate, bitDepth, channels, formatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}

	return nil
}
