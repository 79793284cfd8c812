package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/simonhull/taggy"
)

func newReadCmd(g *globalFlags) *cobra.Command {
	var mode, output string

	cmd := &cobra.Command{
		Use:   "read FILE...",
		Short: "Print the tags of one or more files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := newEncoder(output, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			files, err := readFiles(cmd.Context(), g, mode, args)
			if err != nil {
				return err
			}
			return enc.encode(files)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "all", "Which tags to read: all, primary or any")
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format: yaml or json")
	return cmd
}

func readFiles(ctx context.Context, g *globalFlags, mode string, paths []string) ([]*taggy.TaggyFile, error) {
	var read func(string, ...taggy.Option) (*taggy.TaggyFile, error)
	switch mode {
	case "all":
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		return taggy.ReadMany(ctx, paths...)
	case "primary":
		read = taggy.ReadPrimary
	case "any":
		read = taggy.ReadAny
	default:
		return nil, fmt.Errorf("unknown read mode %q (want all, primary or any)", mode)
	}

	files := make([]*taggy.TaggyFile, 0, len(paths))
	for _, path := range paths {
		file, err := read(path, g.options()...)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}
