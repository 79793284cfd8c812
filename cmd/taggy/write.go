package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/taggy"
)

type writeFlags struct {
	tagType    string
	primary    bool
	keepOthers bool
	override   bool
	validate   bool
	merge      bool
	cover      string
	output     string

	title, artist, albumArtist, album string
	genre, composer, comment, date    string
	year, track, trackTotal           int
	disc, discTotal                   int
}

func newWriteCmd(g *globalFlags) *cobra.Command {
	f := &writeFlags{}

	cmd := &cobra.Command{
		Use:   "write FILE",
		Short: "Write a tag to a file",
		Long: `Write builds one tag from the field flags and writes it.

With --primary the tag is written as the container's preferred type and
other tags are dropped unless --keep-others is set. Otherwise the tag is
written as --type (default: the container's primary type), replacing any
tag of that type; --override drops every other tag first.

A tag with no fields set removes the stored tag of that type. With
--merge, fields not given on the command line are kept from the stored
tag of that type.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrite(cmd, g, f, args[0])
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.tagType, "type", "primary", "Tag type: id3v2, id3v1, vorbis or primary")
	fl.BoolVar(&f.primary, "primary", false, "Write as the container's primary tag")
	fl.BoolVar(&f.keepOthers, "keep-others", false, "With --primary, keep the other tags")
	fl.BoolVar(&f.override, "override", false, "Drop every existing tag before writing")
	fl.BoolVar(&f.validate, "validate", false, "Re-read the file after writing to verify it")
	fl.BoolVar(&f.merge, "merge", false, "Keep stored fields that are not given")
	fl.StringVar(&f.cover, "cover", "", "Image file to embed as the front cover")
	fl.StringVarP(&f.output, "output", "o", "yaml", "Output format: yaml or json")

	fl.StringVar(&f.title, "title", "", "Title")
	fl.StringVar(&f.artist, "artist", "", "Artist")
	fl.StringVar(&f.albumArtist, "album-artist", "", "Album artist")
	fl.StringVar(&f.album, "album", "", "Album")
	fl.StringVar(&f.genre, "genre", "", "Genre")
	fl.StringVar(&f.composer, "composer", "", "Composer")
	fl.StringVar(&f.comment, "comment", "", "Comment")
	fl.StringVar(&f.date, "date", "", "Recording date, e.g. 2020-05-01")
	fl.IntVar(&f.year, "year", 0, "Year")
	fl.IntVar(&f.track, "track", 0, "Track number")
	fl.IntVar(&f.trackTotal, "track-total", 0, "Total tracks")
	fl.IntVar(&f.disc, "disc", 0, "Disc number")
	fl.IntVar(&f.discTotal, "disc-total", 0, "Total discs")

	return cmd
}

// tag assembles the tag described by the flags.
func (f *writeFlags) tag() (taggy.Tag, error) {
	tagType, ok := taggy.ParseTagType(f.tagType)
	if !ok {
		return taggy.Tag{}, fmt.Errorf("unknown tag type %q", f.tagType)
	}

	b := taggy.NewTagBuilder().
		WithTagType(tagType).
		WithTitle(f.title).
		WithArtist(f.artist).
		WithAlbumArtist(f.albumArtist).
		WithAlbum(f.album).
		WithGenre(f.genre).
		WithComposer(f.composer).
		WithComment(f.comment).
		WithRecordingDate(f.date).
		WithYear(f.year).
		WithTrack(f.track, f.trackTotal).
		WithDisc(f.disc, f.discTotal)

	if f.cover != "" {
		data, err := os.ReadFile(f.cover)
		if err != nil {
			return taggy.Tag{}, fmt.Errorf("read cover: %w", err)
		}
		b.WithPictures(taggy.Picture{
			Data:     data,
			Type:     taggy.PictureCoverFront,
			MimeType: taggy.MimeTypeFromData(data),
		})
	}

	return b.Build(), nil
}

func runWrite(cmd *cobra.Command, g *globalFlags, f *writeFlags, path string) error {
	enc, err := newEncoder(f.output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	tag, err := f.tag()
	if err != nil {
		return err
	}

	opts := g.options()
	if f.merge {
		if err := mergeStored(path, &tag, f.primary, opts); err != nil {
			return err
		}
	}
	if f.validate {
		opts = append(opts, taggy.WithValidation())
	}

	var file *taggy.TaggyFile
	if f.primary {
		file, err = taggy.WritePrimary(path, tag, f.keepOthers, opts...)
	} else {
		file, err = taggy.WriteAll(path, []taggy.Tag{tag}, f.override, opts...)
	}
	if err != nil {
		return err
	}

	return enc.encode([]*taggy.TaggyFile{file})
}

// mergeStored fills the absent fields of tag from the stored tag it will
// replace.
func mergeStored(path string, tag *taggy.Tag, primary bool, opts []taggy.Option) error {
	file, err := taggy.ReadAll(path, opts...)
	if err != nil {
		return err
	}

	var stored taggy.Tag
	var ok bool
	if primary || tag.Type == taggy.TagTypeFilePrimary {
		stored, ok = file.PrimaryTag()
	} else {
		stored, ok = file.TagOf(tag.Type)
	}
	if ok {
		tag.Merge(stored)
	}
	return nil
}
