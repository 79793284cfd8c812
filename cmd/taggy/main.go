// Command taggy reads, writes and removes audio tags.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/simonhull/taggy"
	"github.com/simonhull/taggy/internal/logging"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose bool
	backup  string
	logger  zerolog.Logger
}

// options maps the global flags onto library options.
func (g *globalFlags) options() []taggy.Option {
	opts := []taggy.Option{taggy.WithLogger(g.logger)}
	if g.backup != "" {
		opts = append(opts, taggy.WithBackup(g.backup))
	}
	return opts
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "taggy",
		Short: "Read and write audio tags",
		Long: `taggy reads and writes audio tags through one format-agnostic model.

Supported containers are MP3 (ID3v2, ID3v1) and FLAC (Vorbis comments).

Examples:
  taggy read song.mp3
  taggy read --mode primary --output json *.flac
  taggy write song.mp3 --primary --title "So What" --artist "Miles Davis" --track 1
  taggy remove song.mp3 --type id3v1`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			g.logger = logging.Setup(g.verbose, cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&g.backup, "backup", "", "Keep the original file with this suffix when writing")

	rootCmd.AddCommand(
		newReadCmd(g),
		newWriteCmd(g),
		newRemoveCmd(g),
		newVersionCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
