package wav

import (
	"errors"
	"fmt"
)

var (
	ErrNotWavFile        = errors.New("not a WAV file")
	ErrMissingFormat     = errors.New("missing or short fmt chunk")
	ErrUnsupportedFormat = errors.New("unsupported WAV encoding")
	ErrNoDataChunk       = errors.New("no data chunk found")
	ErrTruncated         = errors.New("truncated WAV data")
	ErrBitDepth          = errors.New("bit depth must be 16 or 24")
)

// FormatError reports a buffer that cannot be read as PCM WAV. Offset is the
// byte position where parsing stopped; Err is one of the sentinel errors
// above and can be matched with errors.Is.
type FormatError struct {
	Offset int
	Err    error
	Detail string
}

func (e *FormatError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("wav: %v at byte %d", e.Err, e.Offset)
	}
	return fmt.Sprintf("wav: %v at byte %d: %s", e.Err, e.Offset, e.Detail)
}

func (e *FormatError) Unwrap() error { return e.Err }

func formatErr(offset int, err error, detail string, args ...any) *FormatError {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &FormatError{Offset: offset, Err: err, Detail: detail}
}
