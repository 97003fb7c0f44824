package drumscribe

import (
	"fmt"

	"github.com/ik5/drumscribe/audio"
	"github.com/ik5/drumscribe/formats/aiff"
	"github.com/ik5/drumscribe/formats/mp3"
	"github.com/ik5/drumscribe/formats/vorbis"
	"github.com/ik5/drumscribe/formats/wav"
)

// AnalysisRate is the sample rate decoded sources are converted to before
// analysis.
const AnalysisRate = 44100

// NewRegistry returns a registry holding every decoder shipped with the
// module, keyed by file extension.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// LoadMono reads src to the end and returns it as a mono waveform at rate.
//
// The pipeline is collect, mix down, resample. Mixing first means only one
// channel goes through the interpolator. src is closed in all cases.
func LoadMono(src audio.Source, rate int) (*audio.Waveform, error) {
	defer src.Close()

	if rate <= 0 {
		return nil, audio.ErrInvalidRate
	}
	if src.Channels() <= 0 {
		return nil, audio.ErrInvalidChannels
	}

	wf, err := audio.Collect(audio.NewMonoMixer(src), src.BufSize())
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	wf, err = audio.Resample(wf, rate)
	if err != nil {
		return nil, fmt.Errorf("resampling to %d Hz: %w", rate, err)
	}

	return wf, nil
}
