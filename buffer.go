package vgbridge

// DataBuffer is the software backend's RenderBuffer. It holds its own copy
// of the data it was made from.
type DataBuffer struct {
	kind BufferKind
	u16  []uint16
	u32  []uint32
	f32  []float32
}

var _ RenderBuffer = (*DataBuffer)(nil)

func newBufferU16(data []uint16) *DataBuffer {
	return &DataBuffer{kind: BufferUint16, u16: append([]uint16(nil), data...)}
}

func newBufferU32(data []uint32) *DataBuffer {
	return &DataBuffer{kind: BufferUint32, u32: append([]uint32(nil), data...)}
}

func newBufferF32(data []float32) *DataBuffer {
	return &DataBuffer{kind: BufferFloat32, f32: append([]float32(nil), data...)}
}

// Kind returns the element type.
func (b *DataBuffer) Kind() BufferKind { return b.kind }

// Count returns the number of elements.
func (b *DataBuffer) Count() int {
	switch b.kind {
	case BufferUint16:
		return len(b.u16)
	case BufferUint32:
		return len(b.u32)
	default:
		return len(b.f32)
	}
}

// Uint16s returns the elements of a BufferUint16 buffer, nil otherwise.
func (b *DataBuffer) Uint16s() []uint16 { return b.u16 }

// Uint32s returns the elements of a BufferUint32 buffer, nil otherwise.
func (b *DataBuffer) Uint32s() []uint32 { return b.u32 }

// Float32s returns the elements of a BufferFloat32 buffer, nil otherwise.
func (b *DataBuffer) Float32s() []float32 { return b.f32 }
