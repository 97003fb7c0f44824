package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ik5/drumscribe"
)

var (
	debug bool

	// logger is replaced by initLogger once flags are parsed.
	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "drumscribe",
	Short: "Transcribe drum recordings into hits and rests",
	Long: `drumscribe finds percussive onsets in an audio file, snaps them to a
tempo grid and prints the resulting hit/rest sequence as JSON.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every pipeline stage")
}

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}))
	slog.SetDefault(logger)
}

// addConfigFlags binds the engine tunables to fs, using cfg's current values
// as defaults.
func addConfigFlags(fs *pflag.FlagSet, cfg *drumscribe.Config) {
	fs.Float64Var(&cfg.OnsetThreshold, "threshold", cfg.OnsetThreshold, "onset threshold in (0,1]")
	fs.Float64Var(&cfg.MinInterOnsetMs, "min-gap", cfg.MinInterOnsetMs, "minimum time between two hits in ms")
	fs.Float64Var(&cfg.SilenceRMSThreshold, "silence-rms", cfg.SilenceRMSThreshold, "RMS below which a frame counts as silent")
	fs.Float64Var(&cfg.RestMinMs, "rest-min", cfg.RestMinMs, "shortest gap reported as a rest in ms")
	fs.Float64Var(&cfg.BPM, "bpm", cfg.BPM, "tempo of the quantization grid")
	fs.IntVar(&cfg.Subdivision, "subdivision", cfg.Subdivision, "grid resolution, 8 or 16")
}
