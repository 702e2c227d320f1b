package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"chapterbook/chapterlist"
	"chapterbook/command/audio"
	"chapterbook/ffprobe"
	"chapterbook/models"
)

var (
	extractOutput     string
	extractStart      string
	extractEnd        string
	extractFormat     string
	extractSampleRate int
	extractChannels   int
	extractDryRun     bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <media file>",
	Short: "Extract the audio track from a media file",
	Long: `Extract pulls the audio track out of a media file with ffmpeg,
optionally limited to a time window. Times use the chapter file form
(H:MM:SS.mmm, or MM:SS). Defaults for sample rate, channels, and format
come from the configuration file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := args[0]

		sampleRate := cfg.Audio.SampleRate
		if extractSampleRate > 0 {
			sampleRate = extractSampleRate
		}
		channels := cfg.Audio.Channels
		if extractChannels > 0 {
			channels = extractChannels
		}
		format := cfg.Audio.Format
		if extractFormat != "" {
			format = extractFormat
		}

		builder := audio.NewExtractBuilder(source, extractOutput)
		builder.SetSampleRate(sampleRate).
			SetChannels(channels).
			SetFormat(format)

		if extractStart != "" {
			tc, ok := models.ParseTimeCode(chapterlist.NormalizeTime(extractStart))
			if !ok {
				return fmt.Errorf("invalid start time %q", extractStart)
			}
			builder.SetStart(tc)
		}
		if extractEnd != "" {
			tc, ok := models.ParseTimeCode(chapterlist.NormalizeTime(extractEnd))
			if !ok {
				return fmt.Errorf("invalid end time %q", extractEnd)
			}
			builder.SetEnd(tc)
		}

		if extractDryRun {
			cmdStr, err := builder.DryRun()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cmdStr)
			return nil
		}

		// Probe for the duration so progress can report a percentage
		if probe, err := ffprobe.Probe(source); err == nil {
			if duration, err := probe.GetDuration(); err == nil {
				builder.SetTotalDuration(duration)
			}
		}

		if cfg.Verbose {
			builder.SetProgressCallback(func(progress *models.ExtractionProgress) {
				fmt.Fprintf(cmd.ErrOrStderr(), "\r%s", progress.FormatSummary())
			})
			defer fmt.Fprintln(cmd.ErrOrStderr())
		}

		if err := builder.Run(); err != nil {
			return err
		}

		if cfg.Verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "\nWrote %s\n", extractOutput)
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output audio file (required)")
	extractCmd.Flags().StringVar(&extractStart, "start", "", "start time (e.g. 0:01:30.000 or 1:30)")
	extractCmd.Flags().StringVar(&extractEnd, "end", "", "end time")
	extractCmd.Flags().StringVar(&extractFormat, "format", "", "output format: s16le or wav (default from config)")
	extractCmd.Flags().IntVar(&extractSampleRate, "sample-rate", 0, "sample rate in Hz (default from config)")
	extractCmd.Flags().IntVar(&extractChannels, "channels", 0, "channel count (default from config)")
	extractCmd.Flags().BoolVar(&extractDryRun, "dry-run", false, "print the ffmpeg command without running it")
	extractCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(extractCmd)
}
