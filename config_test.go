package drumscribe

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}

	want := Config{
		OnsetThreshold:      0.15,
		MinInterOnsetMs:     100,
		SilenceRMSThreshold: 0.02,
		RestMinMs:           200,
		BPM:                 120,
		Subdivision:         8,
	}
	if cfg.Debug != nil {
		t.Error("default Debug should be nil")
	}
	if cfg.OnsetThreshold != want.OnsetThreshold ||
		cfg.MinInterOnsetMs != want.MinInterOnsetMs ||
		cfg.SilenceRMSThreshold != want.SilenceRMSThreshold ||
		cfg.RestMinMs != want.RestMinMs ||
		cfg.BPM != want.BPM ||
		cfg.Subdivision != want.Subdivision {
		t.Errorf("DefaultConfig() = %+v, want %+v", cfg, want)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"threshold one", func(c *Config) { c.OnsetThreshold = 1 }, true},
		{"threshold zero", func(c *Config) { c.OnsetThreshold = 0 }, false},
		{"threshold above one", func(c *Config) { c.OnsetThreshold = 1.01 }, false},
		{"threshold NaN", func(c *Config) { c.OnsetThreshold = math.NaN() }, false},
		{"zero gap", func(c *Config) { c.MinInterOnsetMs = 0 }, true},
		{"negative gap", func(c *Config) { c.MinInterOnsetMs = -1 }, false},
		{"infinite gap", func(c *Config) { c.MinInterOnsetMs = math.Inf(1) }, false},
		{"negative silence", func(c *Config) { c.SilenceRMSThreshold = -0.1 }, false},
		{"zero rest minimum", func(c *Config) { c.RestMinMs = 0 }, true},
		{"negative rest minimum", func(c *Config) { c.RestMinMs = -5 }, false},
		{"zero bpm", func(c *Config) { c.BPM = 0 }, false},
		{"negative bpm", func(c *Config) { c.BPM = -120 }, false},
		{"fractional bpm", func(c *Config) { c.BPM = 92.5 }, true},
		{"sixteenths", func(c *Config) { c.Subdivision = 16 }, true},
		{"quarter notes", func(c *Config) { c.Subdivision = 4 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_DebugNilIsSilent(t *testing.T) {
	t.Parallel()

	// Must not panic.
	DefaultConfig().debug("nothing", "k", 1)

	var got string
	cfg := DefaultConfig()
	cfg.Debug = func(msg string, _ ...any) { got = msg }
	cfg.debug("hello")
	if got != "hello" {
		t.Errorf("Debug received %q, want hello", got)
	}
}
