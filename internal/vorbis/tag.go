package vorbis

import (
	"fmt"

	flac "github.com/go-flac/go-flac"
	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"

	"github.com/simonhull/taggy/internal/types"
)

// Tag is a Vorbis comment block together with the FLAC PICTURE blocks
// that belong to the same tag.
type Tag struct {
	Comments *flacvorbis.MetaDataBlockVorbisComment
	Pictures []*flacpicture.MetadataBlockPicture
}

// New returns a tag with no comments and no pictures.
func New() *Tag {
	return &Tag{Comments: flacvorbis.New()}
}

func (t *Tag) TagType() types.TagType { return types.TagTypeVorbisComments }

// IsEmpty reports whether the tag has no comments and no pictures.
func (t *Tag) IsEmpty() bool {
	return len(t.Comments.Comments) == 0 && len(t.Pictures) == 0
}

// IsTagBlock reports whether a metadata block belongs to a Vorbis tag.
func IsTagBlock(b *flac.MetaDataBlock) bool {
	return b.Type == flac.VorbisComment || b.Type == flac.Picture
}

// AddBlock decodes a VORBIS_COMMENT or PICTURE block into t.
func (t *Tag) AddBlock(b *flac.MetaDataBlock) error {
	switch b.Type {
	case flac.VorbisComment:
		c, err := flacvorbis.ParseFromMetaDataBlock(*b)
		if err != nil {
			return fmt.Errorf("vorbis comment block: %w", err)
		}
		t.Comments = c
	case flac.Picture:
		p, err := flacpicture.ParseFromMetaDataBlock(*b)
		if err != nil {
			return fmt.Errorf("picture block: %w", err)
		}
		t.Pictures = append(t.Pictures, p)
	default:
		return fmt.Errorf("block type %d is not part of a vorbis tag", b.Type)
	}
	return nil
}

// Blocks encodes t as FLAC metadata blocks: the comment block followed by
// one PICTURE block per picture. An empty tag has no blocks.
func (t *Tag) Blocks() []*flac.MetaDataBlock {
	if t.IsEmpty() {
		return nil
	}

	blocks := make([]*flac.MetaDataBlock, 0, 1+len(t.Pictures))
	if len(t.Comments.Comments) > 0 {
		b := t.Comments.Marshal()
		blocks = append(blocks, &b)
	}
	for _, p := range t.Pictures {
		b := p.Marshal()
		blocks = append(blocks, &b)
	}
	return blocks
}
