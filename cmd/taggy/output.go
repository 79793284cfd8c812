package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/simonhull/taggy"
)

// fileView is the printed form of a TaggyFile.
type fileView struct {
	Path        string          `json:"path" yaml:"path"`
	Format      taggy.Format    `json:"format" yaml:"format"`
	Size        int64           `json:"size" yaml:"size"`
	PrimaryType taggy.TagType   `json:"primary_tag_type" yaml:"primary_tag_type"`
	Properties  propertiesView  `json:"properties" yaml:"properties"`
	Tags        []tagView       `json:"tags" yaml:"tags"`
	Warnings    []taggy.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type propertiesView struct {
	Codec      string `json:"codec,omitempty" yaml:"codec,omitempty"`
	Duration   string `json:"duration" yaml:"duration"`
	SampleRate int    `json:"sample_rate,omitempty" yaml:"sample_rate,omitempty"`
	BitDepth   int    `json:"bit_depth,omitempty" yaml:"bit_depth,omitempty"`
	Channels   int    `json:"channels,omitempty" yaml:"channels,omitempty"`
	Bitrate    int    `json:"bitrate,omitempty" yaml:"bitrate,omitempty"`
	VBR        bool   `json:"vbr,omitempty" yaml:"vbr,omitempty"`
}

// tagView prints pictures as summaries instead of image bytes.
type tagView struct {
	taggy.Tag `yaml:",inline"`
	Artwork   []pictureView `json:"artwork,omitempty" yaml:"artwork,omitempty"`
}

type pictureView struct {
	Type        taggy.PictureType `json:"type" yaml:"type"`
	MimeType    taggy.MimeType    `json:"mime_type,omitempty" yaml:"mime_type,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Size        int               `json:"size" yaml:"size"`
}

func newFileView(f *taggy.TaggyFile) fileView {
	p := f.Properties
	v := fileView{
		Path:        f.Path,
		Format:      f.Format,
		Size:        f.Size,
		PrimaryType: f.PrimaryType,
		Properties: propertiesView{
			Codec:      p.Codec,
			Duration:   p.Duration.String(),
			SampleRate: p.SampleRate,
			BitDepth:   p.BitDepth,
			Channels:   p.Channels,
			Bitrate:    p.Bitrate,
			VBR:        p.VBR,
		},
		Tags:     make([]tagView, 0, len(f.Tags)),
		Warnings: f.Warnings,
	}

	for _, tag := range f.Tags {
		tv := tagView{Tag: tag}
		tv.Pictures = nil
		for _, pic := range tag.Pictures {
			tv.Artwork = append(tv.Artwork, pictureView{
				Type:        pic.Type,
				MimeType:    pic.MimeType,
				Description: pic.Description,
				Size:        len(pic.Data),
			})
		}
		v.Tags = append(v.Tags, tv)
	}
	return v
}

// encoder writes file views as YAML or indented JSON.
type encoder struct {
	format string
	w      io.Writer
}

func newEncoder(format string, w io.Writer) (*encoder, error) {
	switch format {
	case "yaml", "json":
		return &encoder{format: format, w: w}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (want yaml or json)", format)
}

func (e *encoder) encode(files []*taggy.TaggyFile) error {
	views := make([]fileView, 0, len(files))
	for _, f := range files {
		views = append(views, newFileView(f))
	}

	if e.format == "json" {
		enc := json.NewEncoder(e.w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}

	enc := yaml.NewEncoder(e.w)
	enc.SetIndent(2)
	if err := enc.Encode(views); err != nil {
		return err
	}
	return enc.Close()
}
