package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/taggy"
)

func newRemoveCmd(g *globalFlags) *cobra.Command {
	var tagType string

	cmd := &cobra.Command{
		Use:   "remove FILE",
		Short: "Remove one tag type, or every tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if tagType == "" {
				if err := taggy.RemoveAll(path, g.options()...); err != nil {
					return err
				}
				g.logger.Info().Str("path", path).Msg("removed all tags")
				return nil
			}

			t, ok := taggy.ParseTagType(tagType)
			if !ok {
				return fmt.Errorf("unknown tag type %q", tagType)
			}
			if err := taggy.RemoveTag(path, t, g.options()...); err != nil {
				return err
			}
			g.logger.Info().Str("path", path).Stringer("tag_type", t).Msg("removed tag")
			return nil
		},
	}

	cmd.Flags().StringVar(&tagType, "type", "", "Tag type to remove (default: every tag)")
	return cmd
}
