// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio through
// github.com/hajimehoshi/go-mp3.
//
// The returned audio.Source always reports two interleaved channels, because
// go-mp3 upmixes mono streams. Fold it with audio.NewMonoMixer before handing
// the audio to the transcription engine:
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	wf, err := drumscribe.LoadMono(src, drumscribe.AnalysisRate)
//
// Decoding only; there is no MP3 writer.
package mp3
