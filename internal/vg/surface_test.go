package vg

import (
	"errors"
	"testing"
)

func TestNewSurfaceErrors(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		stride        int
		wantErr       error
	}{
		{"zero width", 0, 10, 0, ErrInvalidDimensions},
		{"negative height", 10, -1, 40, ErrInvalidDimensions},
		{"too large", MaxDimension + 1, 1, (MaxDimension + 1) * 4, ErrInvalidDimensions},
		{"short stride", 10, 10, 39, ErrInvalidStride},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSurfaceStride(tt.width, tt.height, tt.stride)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewSurfaceStride() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSurfaceStride(t *testing.T) {
	s, err := NewSurfaceStride(3, 2, 16)
	if err != nil {
		t.Fatalf("NewSurfaceStride() error = %v", err)
	}
	if s.Stride() != 16 || len(s.Data()) != 32 {
		t.Fatalf("Stride() = %d, len(Data()) = %d, want 16 and 32", s.Stride(), len(s.Data()))
	}

	s.SetPixel(2, 1, 0x11223344)
	off := 16 + 8
	got := []byte{s.Data()[off], s.Data()[off+1], s.Data()[off+2], s.Data()[off+3]}
	want := []byte{0x44, 0x33, 0x22, 0x11}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bytes = % x, want % x", got, want)
		}
	}
	if s.Pixel(2, 1) != 0x11223344 {
		t.Errorf("Pixel(2, 1) = %#08x, want 0x11223344", s.Pixel(2, 1))
	}
}

func TestNewSurfaceForData(t *testing.T) {
	data := make([]byte, 8)
	s, err := NewSurfaceForData(data, 2, 1, 8, false)
	if err != nil {
		t.Fatalf("NewSurfaceForData() error = %v", err)
	}
	s.SetPixel(1, 0, 0xFF00FF00)
	if data[5] != 0xFF {
		t.Errorf("data[5] = %#x, want writes to reach caller data", data[5])
	}
	if s.Premultiplied() {
		t.Error("straight data reported as premultiplied")
	}
	if _, err := NewSurfaceForData(data[:7], 2, 1, 8, false); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("short data error = %v, want ErrDataTooSmall", err)
	}
	if _, err := NewSurfaceForData(data, 2, 1, 7, true); !errors.Is(err, ErrInvalidStride) {
		t.Errorf("short stride error = %v, want ErrInvalidStride", err)
	}
}

func TestSurfaceClearAndDestroy(t *testing.T) {
	s, _ := NewSurface(2, 2)
	s.Clear(Color{R: 1, A: 0.5})
	if got := s.Pixel(1, 1); got != 0x80800000 {
		t.Errorf("Pixel after Clear = %#08x, want 0x80800000", got)
	}

	s.Destroy()
	s.SetPixel(0, 0, 0xFFFFFFFF)
	s.Clear(Color{A: 1})
	if s.Width() != 0 || s.Data() != nil || s.Pixel(0, 0) != 0 {
		t.Error("destroyed surface should read as empty")
	}
}

func TestColorRoundTrip(t *testing.T) {
	for v := range 256 {
		b := uint8(v)
		r, g, bl, a := RGBA(b, 255-b, b/2, b).Bytes()
		if r != b || g != 255-b || bl != b/2 || a != b {
			t.Fatalf("RGBA(%d...).Bytes() = %d %d %d %d", v, r, g, bl, a)
		}
	}
}
