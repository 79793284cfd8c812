// Package vorbis maps Vorbis comments and FLAC PICTURE blocks to and from
// the unified tag model.
//
// Vorbis comments are UTF-8 strings in "KEY=VALUE" form. Field names are
// case-insensitive; they are written in upper case.
package vorbis

import (
	"fmt"
	"strings"

	"github.com/simonhull/taggy/internal/parsing"
	"github.com/simonhull/taggy/internal/types"
)

// Field names written by the codec.
const (
	fieldTitle       = "TITLE"
	fieldArtist      = "ARTIST"
	fieldAlbumArtist = "ALBUMARTIST"
	fieldAlbum       = "ALBUM"
	fieldGenre       = "GENRE"
	fieldComposer    = "COMPOSER"
	fieldComment     = "COMMENT"
	fieldLyrics      = "LYRICS"
	fieldCopyright   = "COPYRIGHT"
	fieldLanguage    = "LANGUAGE"
	fieldDate        = "DATE"
	fieldYear        = "YEAR"
	fieldTrackNumber = "TRACKNUMBER"
	fieldTrackTotal  = "TRACKTOTAL"
	fieldDiscNumber  = "DISCNUMBER"
	fieldDiscTotal   = "DISCTOTAL"
)

// Alias field names accepted when reading, in priority order after the
// primary name.
var aliases = map[string][]string{
	fieldAlbumArtist: {"ALBUM ARTIST", "ALBUM_ARTIST"},
	fieldComment:     {"DESCRIPTION"},
	fieldLyrics:      {"UNSYNCEDLYRICS"},
	fieldLanguage:    {"LANG"},
	fieldTrackTotal:  {"TOTALTRACKS"},
	fieldDiscTotal:   {"TOTALDISCS"},
}

// SplitComment splits a "KEY=VALUE" comment. The key is upper-cased.
//
// Returns an error if the comment has no '=' separator.
func SplitComment(comment string) (key, value string, err error) {
	eq := strings.IndexByte(comment, '=')
	if eq == -1 {
		return "", "", fmt.Errorf("missing '=' in comment: %s", comment)
	}
	return strings.ToUpper(comment[:eq]), comment[eq+1:], nil
}

// ParseComments maps comments onto the fields of tag.
//
// For each field the first non-empty value of its primary key wins; alias
// keys only fill fields the primary key left absent. Keys outside the
// field set are ignored. Malformed comments are skipped and counted.
func ParseComments(comments []string, tag *types.Tag) (skipped int) {
	fields := make(map[string]string, len(comments))
	for _, c := range comments {
		key, value, err := SplitComment(c)
		if err != nil {
			skipped++
			continue
		}
		if _, seen := fields[key]; !seen && value != "" {
			fields[key] = value
		}
	}

	get := func(key string) string {
		if v, ok := fields[key]; ok {
			return v
		}
		for _, alias := range aliases[key] {
			if v, ok := fields[alias]; ok {
				return v
			}
		}
		return ""
	}

	tag.Title = get(fieldTitle)
	tag.Artist = get(fieldArtist)
	tag.AlbumArtist = get(fieldAlbumArtist)
	tag.Album = get(fieldAlbum)
	tag.Genre = get(fieldGenre)
	tag.Composer = get(fieldComposer)
	tag.Comment = get(fieldComment)
	tag.Lyrics = get(fieldLyrics)
	tag.Copyright = get(fieldCopyright)
	tag.Language = get(fieldLanguage)
	tag.RecordingDate = get(fieldDate)
	tag.Year = parsing.Year(get(fieldYear))

	// TRACKNUMBER may carry "n/total"; an explicit total field wins.
	var total int
	tag.TrackNumber, total = parsing.NumberPair(get(fieldTrackNumber))
	tag.TrackTotal = parsing.Number(get(fieldTrackTotal))
	if tag.TrackTotal == 0 {
		tag.TrackTotal = total
	}

	tag.DiscNumber, total = parsing.NumberPair(get(fieldDiscNumber))
	tag.DiscTotal = parsing.Number(get(fieldDiscTotal))
	if tag.DiscTotal == 0 {
		tag.DiscTotal = total
	}

	return skipped
}
