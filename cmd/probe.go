package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"chapterbook/chaptertable"
	"chapterbook/ffprobe"
)

var (
	probeChapters bool
	probeOutput   string
)

var probeCmd = &cobra.Command{
	Use:   "probe <media file>",
	Short: "Inspect a media file and its embedded chapters",
	Long: `Probe runs ffprobe against a media file and reports its duration,
stream layout, and any embedded chapter markers. With --chapters the
markers are emitted in the chapter file format, ready to save next to
the video.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := ffprobe.Probe(args[0])
		if err != nil {
			return err
		}

		if probeChapters {
			entries := result.ChapterEntries()
			if len(entries) == 0 {
				return fmt.Errorf("no chapter markers in %s", args[0])
			}

			table := chaptertable.FromEntries(entries)
			if probeOutput != "" {
				return table.Save(probeOutput)
			}
			return table.Write(cmd.OutOrStdout())
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "File: %s\n", result.Format.Filename)
		fmt.Fprintf(out, "Format: %s\n", result.Format.FormatLongName)

		if duration, err := result.GetDuration(); err == nil {
			fmt.Fprintf(out, "Duration: %.2f seconds\n", duration)
		}

		fmt.Fprintf(out, "Streams: %d video, %d audio\n",
			len(result.GetVideoStreams()), len(result.GetAudioStreams()))
		fmt.Fprintf(out, "Chapters: %d\n", result.GetChapterCount())

		if cfg.Verbose {
			for _, stream := range result.Streams {
				fmt.Fprintf(out, "  stream %d: %s (%s)\n", stream.Index, stream.CodecName, stream.CodecType)
			}
			for _, entry := range result.ChapterEntries() {
				fmt.Fprintf(out, "  chapter %s %s\n", entry.Time, entry.Title)
			}
		}
		return nil
	},
}

func init() {
	probeCmd.Flags().BoolVar(&probeChapters, "chapters", false, "emit embedded chapter markers as a chapter file")
	probeCmd.Flags().StringVarP(&probeOutput, "output", "o", "", "with --chapters, write the chapter file here")
	rootCmd.AddCommand(probeCmd)
}
