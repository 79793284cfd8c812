// Package taggy reads and writes audio tags through one format-agnostic
// model.
//
// Every native tag (ID3v2, ID3v1, Vorbis comments) is converted into a Tag
// with the same fields, and a file's tags are returned together in a
// TaggyFile along with its audio Properties. Writes go the other way: the
// Tag is converted into the native tag of its type and the container is
// rewritten.
//
// # Quick Start
//
// Reading every tag in a file:
//
//	file, err := taggy.ReadAll("song.flac")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, tag := range file.Tags {
//		fmt.Printf("%s: %s - %s\n", tag.Type, tag.Artist, tag.Title)
//	}
//
// Writing the file's preferred tag:
//
//	tag := taggy.NewTagBuilder().
//		WithTitle("Hello").
//		WithArtist("World").
//		WithTrack(3, 12).
//		Build()
//	file, err := taggy.WritePrimary("song.mp3", tag, false)
//
// # Supported Formats
//
//   - MP3: ID3v2 (primary, written as v2.4) and ID3v1
//   - FLAC: Vorbis comments with PICTURE blocks
//
// # Tag Types
//
// TagTypeFilePrimary is a write-time placeholder for "whatever the
// container prefers". It is resolved before the tag reaches the file and
// never appears on a tag read back.
//
// Writing a Tag with no fields set removes the stored tag of that type:
// an empty native tag is persisted as no tag at all. RemoveAll and
// RemoveTag are built on this.
//
// # Error Handling
//
// Operations return typed errors, matched with errors.As:
//
//   - *NotFoundError: the file could not be opened
//   - *ParseError: the container or its tags could not be interpreted
//   - *SaveError: changes could not be written back
//
// A tag the container cannot host is not an error. It is skipped, logged
// and recorded in TaggyFile.Warnings:
//
//	for _, w := range file.Warnings {
//		log.Printf("warning: %s", w)
//	}
//
// # Logging
//
// Warnings and debug events go to the global zerolog logger unless
// WithLogger is given.
package taggy
