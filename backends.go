package taggy

import (
	_ "github.com/simonhull/taggy/internal/flac" // Register FLAC backend and Vorbis codec
	_ "github.com/simonhull/taggy/internal/mp3"  // Register MP3 backend and ID3 codecs
)
