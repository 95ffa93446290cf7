package image

import (
	"errors"
	"testing"
)

func TestNewImageBufErrors(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		format        Format
		stride        int
		wantErr       error
	}{
		{"zero width", 0, 1, FormatARGB32, 0, ErrInvalidDimensions},
		{"negative height", 1, -1, FormatARGB32, 4, ErrInvalidDimensions},
		{"unknown format", 1, 1, formatCount, 4, ErrInvalidFormat},
		{"short stride", 3, 1, FormatARGB32Premul, 11, ErrInvalidStride},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewImageBufWithStride(tt.width, tt.height, tt.format, tt.stride); !errors.Is(err, tt.wantErr) {
				t.Errorf("NewImageBufWithStride() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestImageBufWordLayout(t *testing.T) {
	b, err := NewImageBufWithStride(3, 2, FormatARGB32Premul, 16)
	if err != nil {
		t.Fatal(err)
	}
	b.SetWord(2, 1, 0x11223344)

	off := b.PixelOffset(2, 1)
	if off != 24 {
		t.Fatalf("PixelOffset(2, 1) = %d, want 24", off)
	}
	got := b.Data()[off : off+4]
	want := []byte{0x44, 0x33, 0x22, 0x11}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bytes = % x, want % x (B, G, R, A)", got, want)
		}
	}
	if b.Word(2, 1) != 0x11223344 {
		t.Errorf("Word(2, 1) = %#08x", b.Word(2, 1))
	}
	if b.Word(3, 0) != 0 || b.PixelOffset(-1, 0) != -1 {
		t.Error("out-of-range access should read as empty")
	}
}

func TestImageBufFillKeepsPadding(t *testing.T) {
	b, _ := NewImageBufWithStride(1, 2, FormatARGB32, 8)
	b.Data()[4] = 0xAA
	b.Fill(0xFF010203)

	if b.Word(0, 1) != 0xFF010203 {
		t.Errorf("Word(0, 1) = %#08x", b.Word(0, 1))
	}
	if b.Data()[4] != 0xAA {
		t.Error("Fill wrote into row padding")
	}
	if len(b.RowBytes(0)) != 4 || b.RowBytes(2) != nil {
		t.Error("RowBytes should exclude padding and reject rows out of range")
	}
}

func TestFromRaw(t *testing.T) {
	data := make([]byte, 12)
	b, err := FromRaw(data, 1, 2, FormatARGB32, 8)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	b.SetWord(0, 1, 0xFFFFFFFF)
	if data[8] != 0xFF {
		t.Error("FromRaw should share the caller's data")
	}
	if _, err := FromRaw(data[:11], 1, 2, FormatARGB32, 8); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("short data error = %v, want ErrDataTooSmall", err)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		f       Format
		name    string
		premul  bool
		word    bool
		rowOf3 int
	}{
		{FormatRGBA8, "RGBA8", false, false, 12},
		{FormatRGBAPremul, "RGBAPremul", true, false, 12},
		{FormatARGB32, "ARGB32", false, true, 12},
		{FormatARGB32Premul, "ARGB32Premul", true, true, 12},
		{formatCount, "Unknown", false, false, 0},
	}
	for _, tt := range tests {
		if tt.f.String() != tt.name || tt.f.IsPremultiplied() != tt.premul ||
			tt.f.IsWord() != tt.word || tt.f.RowBytes(3) != tt.rowOf3 {
			t.Errorf("Format %d: got (%s, %v, %v, %d)", tt.f, tt.f.String(), tt.f.IsPremultiplied(), tt.f.IsWord(), tt.f.RowBytes(3))
		}
	}
}
