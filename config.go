// SPDX-License-Identifier: EPL-2.0

package drumscribe

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config tunes one transcription. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	// OnsetThreshold is the normalized onset strength a peak must exceed,
	// in (0,1]. Lower values pick up softer hits.
	OnsetThreshold float64
	// MinInterOnsetMs is the refractory gap between two accepted onsets.
	MinInterOnsetMs float64
	// SilenceRMSThreshold marks frames as silent for debug reporting. It does
	// not gate detection.
	SilenceRMSThreshold float64
	// RestMinMs is the shortest gap turned into a rest event.
	RestMinMs float64
	// BPM is the tempo of the quantization grid.
	BPM float64
	// Subdivision is the grid resolution: 8 for eighth notes, 16 for
	// sixteenth notes.
	Subdivision int

	// Debug receives progress messages with slog-style key/value pairs.
	// slog.Logger.Debug fits directly. Nil disables reporting.
	Debug func(msg string, args ...any)
}

func DefaultConfig() Config {
	return Config{
		OnsetThreshold:      0.15,
		MinInterOnsetMs:     100,
		SilenceRMSThreshold: 0.02,
		RestMinMs:           200,
		BPM:                 120,
		Subdivision:         8,
	}
}

// Validate reports the first out-of-range field, wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case !(c.OnsetThreshold > 0 && c.OnsetThreshold <= 1):
		return fmt.Errorf("%w: onset threshold %v not in (0,1]", ErrInvalidConfig, c.OnsetThreshold)
	case !(c.MinInterOnsetMs >= 0) || math.IsInf(c.MinInterOnsetMs, 0):
		return fmt.Errorf("%w: min inter-onset gap %v ms", ErrInvalidConfig, c.MinInterOnsetMs)
	case !(c.SilenceRMSThreshold >= 0):
		return fmt.Errorf("%w: silence rms threshold %v", ErrInvalidConfig, c.SilenceRMSThreshold)
	case !(c.RestMinMs >= 0) || math.IsInf(c.RestMinMs, 0):
		return fmt.Errorf("%w: rest minimum %v ms", ErrInvalidConfig, c.RestMinMs)
	case !(c.BPM > 0) || math.IsInf(c.BPM, 0):
		return fmt.Errorf("%w: bpm %v must be positive", ErrInvalidConfig, c.BPM)
	case c.Subdivision != 8 && c.Subdivision != 16:
		return fmt.Errorf("%w: subdivision %d must be 8 or 16", ErrInvalidConfig, c.Subdivision)
	}

	return nil
}

func (c Config) debug(msg string, args ...any) {
	if c.Debug != nil {
		c.Debug(msg, args...)
	}
}
