package registry

import (
	"errors"
	"io"
	"testing"

	"github.com/simonhull/taggy/internal/atomicfile"
	"github.com/simonhull/taggy/internal/types"
)

// Types far outside the real enumeration so tests never collide with
// codecs or backends registered by other packages.
const (
	mockTagType  = types.TagType(900)
	mockTagType2 = types.TagType(901)
	mockFormat   = types.Format(900)
)

type mockNative struct {
	tagType types.TagType
	title   string
}

func (m *mockNative) TagType() types.TagType { return m.tagType }
func (m *mockNative) IsEmpty() bool { return m.title == "" }

type mockCodec struct {
	tagType types.TagType
}

func (c mockCodec) ToNative(tag types.Tag) NativeTag {
	return &mockNative{tagType: c.tagType, title: tag.Title}
}

func (c mockCodec) FromNative(native NativeTag) (types.Tag, error) {
	m, ok := native.(*mockNative)
	if !ok {
		return types.Tag{}, errors.New("not a mock tag")
	}
	return types.Tag{Type: c.tagType, Title: m.title}, nil
}

type mockBackend struct {
	name string
}

func (b *mockBackend) Open(io.ReaderAt, int64, string) (Container, error) { return nil, nil }
func (b *mockBackend) PrimaryTagType() types.TagType { return mockTagType }
func (b *mockBackend) SupportedTagTypes() []types.TagType {
	return []types.TagType{mockTagType, mockTagType2}
}

// Compile-time check that the Container interface stays implementable.
var _ Container = (*mockContainer)(nil)

type mockContainer struct{}

func (mockContainer) Format() types.Format { return mockFormat }
func (mockContainer) Properties() types.Properties { return types.Properties{} }
func (mockContainer) Warnings() []types.Warning { return nil }
func (mockContainer) Tags() []NativeTag { return nil }
func (mockContainer) Clear() {}
func (mockContainer) InsertTag(NativeTag) bool { return false }
func (mockContainer) Remove(types.TagType) (NativeTag, bool) { return nil, false }
func (mockContainer) Save(atomicfile.Options) error { return nil }

func TestToNative_FromNative(t *testing.T) {
	RegisterCodec(mockTagType, mockCodec{tagType: mockTagType})

	native, err := ToNative(types.Tag{Type: mockTagType, Title: "So What"})
	if err != nil {
		t.Fatalf("ToNative() error = %v", err)
	}
	if native.TagType() != mockTagType {
		t.Errorf("TagType() = %v, want %v", native.TagType(), mockTagType)
	}
	if native.IsEmpty() {
		t.Error("native tag with title should not be empty")
	}

	tag, err := FromNative(native)
	if err != nil {
		t.Fatalf("FromNative() error = %v", err)
	}
	if tag.Title != "So What" || tag.Type != mockTagType {
		t.Errorf("FromNative() = %+v", tag)
	}
}

func TestToNative_NoCodec(t *testing.T) {
	_, err := ToNative(types.Tag{Type: types.TagType(950)})

	var unsupported *types.UnsupportedTagTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("ToNative() error = %v, want *UnsupportedTagTypeError", err)
	}
	if unsupported.TagType != types.TagType(950) {
		t.Errorf("TagType = %v, want 950", unsupported.TagType)
	}
}

func TestFromNative_NoCodec(t *testing.T) {
	_, err := FromNative(&mockNative{tagType: types.TagType(951)})

	var unsupported *types.UnsupportedTagTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("FromNative() error = %v, want *UnsupportedTagTypeError", err)
	}
}

func TestRegisterCodec_Overwrites(t *testing.T) {
	RegisterCodec(mockTagType2, mockCodec{tagType: mockTagType})
	RegisterCodec(mockTagType2, mockCodec{tagType: mockTagType2})

	c, ok := GetCodec(mockTagType2).(mockCodec)
	if !ok {
		t.Fatal("GetCodec() returned wrong codec type")
	}
	if c.tagType != mockTagType2 {
		t.Errorf("codec tag type = %v, want %v (should be overwritten)", c.tagType, mockTagType2)
	}
}

func TestBackendLookups(t *testing.T) {
	RegisterBackend(mockFormat, &mockBackend{name: "mock"})

	b, ok := GetBackend(mockFormat).(*mockBackend)
	if !ok || b.name != "mock" {
		t.Fatalf("GetBackend() = %v", GetBackend(mockFormat))
	}

	if got := PrimaryTagTypeOf(mockFormat); got != mockTagType {
		t.Errorf("PrimaryTagTypeOf() = %v, want %v", got, mockTagType)
	}

	supported := SupportedTagTypesOf(mockFormat)
	if len(supported) != 2 || supported[0] != mockTagType || supported[1] != mockTagType2 {
		t.Errorf("SupportedTagTypesOf() = %v", supported)
	}
}

func TestBackendLookups_Unregistered(t *testing.T) {
	format := types.Format(998)

	if GetBackend(format) != nil {
		t.Error("GetBackend() should return nil for unregistered format")
	}
	if got := PrimaryTagTypeOf(format); got != types.TagTypeFilePrimary {
		t.Errorf("PrimaryTagTypeOf() = %v, want FilePrimary", got)
	}
	if got := SupportedTagTypesOf(format); got != nil {
		t.Errorf("SupportedTagTypesOf() = %v, want nil", got)
	}
}
