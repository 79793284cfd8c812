package binary

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"
)

func TestSafeReader_ReadAt_Success(t *testing.T) {
	data := []byte{0xFF, 0xFB, 0x90, 0x00}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "test.mp3")

	buf := make([]byte, 2)
	if err := sr.ReadAt(buf, 0, "frame sync"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf[0] != 0xFF || buf[1] != 0xFB {
		t.Errorf("expected [0xFF, 0xFB], got [0x%02x, 0x%02x]", buf[0], buf[1])
	}
}

func TestSafeReader_ReadAt_OutOfBounds(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "test.mp3")

	tests := []struct {
		name string
		off  int64
		n    int
	}{
		{"past end", 10, 2},
		{"negative", -1, 2},
		{"straddles end", 3, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := sr.ReadAt(make([]byte, tc.n), tc.off, "ID3v1 trailer")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			msg := err.Error()
			if !strings.Contains(msg, "test.mp3") {
				t.Errorf("error should contain filename: %v", msg)
			}
			if !strings.Contains(msg, "ID3v1 trailer") {
				t.Errorf("error should contain context: %v", msg)
			}
		})
	}
}

func TestSafeReader_ReadBytes(t *testing.T) {
	data := []byte("xxxTAGyyy")
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "test.mp3")

	got, err := sr.ReadBytes(3, 3, "magic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "TAG" {
		t.Errorf("ReadBytes() = %q, want TAG", got)
	}
	if sr.Size() != int64(len(data)) {
		t.Errorf("Size() = %d, want %d", sr.Size(), len(data))
	}
}

func TestRead(t *testing.T) {
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, 0x123456789ABCDEF0)
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "test.mp3")

	u8, err := Read[uint8](sr, 0, "uint8")
	if err != nil || u8 != 0x12 {
		t.Errorf("Read[uint8] = 0x%02x, %v", u8, err)
	}
	u16, err := Read[uint16](sr, 0, "uint16")
	if err != nil || u16 != 0x1234 {
		t.Errorf("Read[uint16] = 0x%04x, %v", u16, err)
	}
	u32, err := Read[uint32](sr, 4, "uint32")
	if err != nil || u32 != 0x9ABCDEF0 {
		t.Errorf("Read[uint32] = 0x%08x, %v", u32, err)
	}
	u64, err := Read[uint64](sr, 0, "uint64")
	if err != nil || u64 != 0x123456789ABCDEF0 {
		t.Errorf("Read[uint64] = 0x%016x, %v", u64, err)
	}

	if _, err := Read[uint32](sr, 6, "uint32"); err == nil {
		t.Error("Read[uint32] past end should fail")
	}
}

func TestSynchsafe(t *testing.T) {
	tests := []struct {
		in   []byte
		want uint32
	}{
		{[]byte{0x00, 0x00, 0x00, 0x00}, 0},
		{[]byte{0x00, 0x00, 0x00, 0x7F}, 127},
		{[]byte{0x00, 0x00, 0x01, 0x00}, 128},
		{[]byte{0x00, 0x00, 0x02, 0x01}, 257},
		{[]byte{0x7F, 0x7F, 0x7F, 0x7F}, 1<<28 - 1},
		{[]byte{0x01}, 0},
	}

	for _, tc := range tests {
		if got := Synchsafe(tc.in); got != tc.want {
			t.Errorf("Synchsafe(%x) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func BenchmarkRead_Uint32(b *testing.B) {
	data := make([]byte, 1024*1024)
	for i := 0; i < len(data); i += 4 {
		binary.BigEndian.PutUint32(data[i:], uint32(i))
	}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "bench.mp3")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		offset := int64((i % (len(data) / 4)) * 4)
		_, _ = Read[uint32](sr, offset, "benchmark")
	}
}
