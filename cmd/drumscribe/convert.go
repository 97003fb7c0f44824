package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/drumscribe"
	"github.com/ik5/drumscribe/formats/wav"
)

var (
	convertRate int
	convertBits int
)

func init() {
	convertCmd.Flags().IntVar(&convertRate, "rate", drumscribe.AnalysisRate, "output sample rate in Hz")
	convertCmd.Flags().IntVar(&convertBits, "bits", 16, "output bit depth, 16 or 24")

	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out.wav>",
	Short: "Write the mono analysis waveform of a file as PCM WAV",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertFile(args[0], args[1], convertRate, convertBits)
	},
}

func convertFile(inPath, outPath string, rate, bits int) error {
	dec, err := drumscribe.NewRegistry().ForPath(inPath)
	if err != nil {
		return err
	}

	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	src, err := dec.Decode(in)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inPath, err)
	}

	wf, err := drumscribe.LoadMono(src, rate)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}

	if err := wav.Encode(out, wf, bits); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	logger.Info("converted",
		"in", inPath,
		"out", outPath,
		"rate", wf.SampleRate,
		"bits", bits,
		"durationMs", wf.DurationMs(),
	)

	return nil
}
