package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/drumscribe"
)

var (
	analyzeCfg    = drumscribe.DefaultConfig()
	analyzeOutput string
)

func init() {
	addConfigFlags(analyzeCmd.Flags(), &analyzeCfg)
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "write JSON here instead of stdout")

	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Transcribe an audio file",
	Long: `Decodes a WAV, MP3, Ogg Vorbis or AIFF file (picked by extension),
converts it to 44.1 kHz mono and prints the hit/rest sequence as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := analyzeCfg
		cfg.Debug = logger.With("file", args[0]).Debug

		res, err := analyzeFile(args[0], cfg)
		if err != nil {
			return err
		}

		logger.Info("transcribed",
			"file", args[0],
			"hits", res.Stats.DetectedHits,
			"rests", res.Stats.InsertedRests,
		)

		if analyzeOutput == "" {
			return writeResult(cmd.OutOrStdout(), res)
		}
		return writeResultFile(analyzeOutput, res)
	},
}

// writeResultFile writes res to path and reports a failed Close.
func writeResultFile(path string, res *drumscribe.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := writeResult(f, res); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func analyzeFile(path string, cfg drumscribe.Config) (*drumscribe.Result, error) {
	dec, err := drumscribe.NewRegistry().ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return drumscribe.TranscribeSource(src, cfg)
}

func writeResult(w io.Writer, res *drumscribe.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(res)
}
