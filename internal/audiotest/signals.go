package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Silence returns n zero samples.
func Silence(n int) []float32 {
	return make([]float32, n)
}

// SampleAt converts a millisecond offset into a sample index at rate.
func SampleAt(rate int, ms float64) int {
	return int(math.Round(ms * float64(rate) / 1000))
}

// Impulses returns durationMs of silence at rate with a single-sample spike of
// amplitude amp at each of the given millisecond offsets.
func Impulses(rate int, durationMs float64, amp float32, atMs ...float64) []float32 {
	samples := Silence(SampleAt(rate, durationMs))
	for _, ms := range atMs {
		if i := SampleAt(rate, ms); i >= 0 && i < len(samples) {
			samples[i] = amp
		}
	}
	return samples
}

// Chunk is a raw RIFF sub-chunk used to build odd WAV layouts in tests.
type Chunk struct {
	ID   string
	Body []byte
}

// WAV builds a RIFF/WAVE container holding a canonical fmt chunk followed by
// the extra chunks and finally the data chunk with samples encoded at
// bitsPerSample (16 or 24). Odd-sized chunks get their pad byte.
func WAV(rate, channels, bitsPerSample int, samples []float32, extra ...Chunk) []byte {
	fmtBody := new(bytes.Buffer)
	blockAlign := channels * bitsPerSample / 8
	binary.Write(fmtBody, binary.LittleEndian, uint16(1))
	binary.Write(fmtBody, binary.LittleEndian, uint16(channels))
	binary.Write(fmtBody, binary.LittleEndian, uint32(rate))
	binary.Write(fmtBody, binary.LittleEndian, uint32(rate*blockAlign))
	binary.Write(fmtBody, binary.LittleEndian, uint16(blockAlign))
	binary.Write(fmtBody, binary.LittleEndian, uint16(bitsPerSample))

	chunks := []Chunk{{ID: "fmt ", Body: fmtBody.Bytes()}}
	chunks = append(chunks, extra...)
	chunks = append(chunks, Chunk{ID: "data", Body: PCM(bitsPerSample, samples)})

	return RIFF(chunks...)
}

// RIFF wraps chunks in a RIFF/WAVE header without any validation.
func RIFF(chunks ...Chunk) []byte {
	body := new(bytes.Buffer)
	body.WriteString("WAVE")
	for _, c := range chunks {
		body.WriteString(c.ID)
		binary.Write(body, binary.LittleEndian, uint32(len(c.Body)))
		body.Write(c.Body)
		if len(c.Body)%2 == 1 {
			body.WriteByte(0)
		}
	}

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

// PCM encodes samples as little-endian signed integers of the given width.
func PCM(bitsPerSample int, samples []float32) []byte {
	out := new(bytes.Buffer)
	for _, s := range samples {
		switch bitsPerSample {
		case 24:
			v := int32(math.Round(float64(s) * 8388607))
			out.Write([]byte{byte(v), byte(v >> 8), byte(v >> 16)})
		default:
			v := int16(math.Round(float64(s) * 32767))
			binary.Write(out, binary.LittleEndian, v)
		}
	}
	return out.Bytes()
}
