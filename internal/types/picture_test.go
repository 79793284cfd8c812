package types

import (
	"testing"
)

func TestPicture_IsEmpty(t *testing.T) {
	if !(Picture{Type: PictureCoverFront, MimeType: MimePNG}).IsEmpty() {
		t.Error("picture without data should be empty")
	}
	if (Picture{Data: []byte{0}}).IsEmpty() {
		t.Error("picture with data should not be empty")
	}
}

func TestPicture_Equal(t *testing.T) {
	base := Picture{
		Data:        []byte{1, 2, 3},
		Description: "cover",
		Type:        PictureCoverFront,
		MimeType:    MimePNG,
		Width:       600,
		Height:      600,
	}

	tests := []struct {
		name   string
		mutate func(*Picture)
		want   bool
	}{
		{"identical", func(*Picture) {}, true},
		{"type", func(p *Picture) { p.Type = PictureCoverBack }, false},
		{"mime", func(p *Picture) { p.MimeType = MimeJPEG }, false},
		{"description", func(p *Picture) { p.Description = "" }, false},
		{"width", func(p *Picture) { p.Width = 300 }, false},
		{"data", func(p *Picture) { p.Data = []byte{1, 2, 4} }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			other := base.Clone()
			tc.mutate(&other)
			if got := base.Equal(other); got != tc.want {
				t.Errorf("Equal() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPicture_Clone(t *testing.T) {
	orig := Picture{Data: []byte{1, 2, 3}}
	clone := orig.Clone()
	clone.Data[0] = 9
	if orig.Data[0] != 1 {
		t.Error("Clone() should copy image data")
	}
}

func TestPicture_String(t *testing.T) {
	tests := []struct {
		name string
		pic  Picture
		want string
	}{
		{
			name: "with dimensions",
			pic:  Picture{Type: PictureCoverFront, MimeType: MimeJPEG, Width: 1200, Height: 1200, Data: make([]byte, 2048)},
			want: "Front cover (1200x1200 JPEG, 2KB)",
		},
		{
			name: "unknown mime",
			pic:  Picture{Type: PictureOther, Data: make([]byte, 10)},
			want: "Other (Image, 10B)",
		},
		{
			name: "megabytes",
			pic:  Picture{Type: PictureBandLogo, MimeType: MimePNG, Data: make([]byte, 3*1024*1024/2)},
			want: "Band logotype (PNG, 1.5MB)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.pic.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPictureType_String(t *testing.T) {
	tests := []struct {
		pt   PictureType
		want string
	}{
		{PictureOther, "Other"},
		{PictureCoverFront, "Front cover"},
		{PictureCoverBack, "Back cover"},
		{PicturePublisherLogo, "Publisher logotype"},
		{PictureType(200), "PictureType(200)"},
	}

	for _, tc := range tests {
		if got := tc.pt.String(); got != tc.want {
			t.Errorf("PictureType(%d).String() = %q, want %q", byte(tc.pt), got, tc.want)
		}
	}
}

func TestParseMimeType(t *testing.T) {
	tests := []struct {
		in   string
		want MimeType
	}{
		{"image/png", MimePNG},
		{"image/jpeg", MimeJPEG},
		{"image/jpg", MimeJPEG},
		{"JPG", MimeJPEG},
		{"image/tiff", MimeTIFF},
		{"image/bmp", MimeBMP},
		{"image/gif", MimeGIF},
		{"", MimeNone},
		{"image/webp", MimeNone},
	}

	for _, tc := range tests {
		if got := ParseMimeType(tc.in); got != tc.want {
			t.Errorf("ParseMimeType(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMimeType_RoundTrip(t *testing.T) {
	for _, m := range []MimeType{MimePNG, MimeJPEG, MimeTIFF, MimeBMP, MimeGIF} {
		if got := ParseMimeType(m.String()); got != m {
			t.Errorf("ParseMimeType(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if MimeNone.String() != "" {
		t.Errorf("MimeNone.String() = %q, want empty", MimeNone.String())
	}
}

func TestMimeTypeFromData(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want MimeType
	}{
		{"png", []byte("\x89PNG\r\n\x1a\n\x00\x00"), MimePNG},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, MimeJPEG},
		{"gif87", []byte("GIF87a...."), MimeGIF},
		{"gif89", []byte("GIF89a...."), MimeGIF},
		{"bmp", []byte("BM\x00\x00"), MimeBMP},
		{"tiff le", []byte("II*\x00"), MimeTIFF},
		{"tiff be", []byte("MM\x00*"), MimeTIFF},
		{"unknown", []byte("RIFF"), MimeNone},
		{"short", []byte{0xFF}, MimeNone},
		{"nil", nil, MimeNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MimeTypeFromData(tc.data); got != tc.want {
				t.Errorf("MimeTypeFromData() = %v, want %v", got, tc.want)
			}
		})
	}
}
