package geometry

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// VertexAttrib describes one attribute within an interleaved vertex buffer.
type VertexAttrib struct {
	Count      int32
	Type       uint32
	Normalized bool
}

func glTypeSize(xtype uint32) int32 {
	switch xtype {
	case gl.UNSIGNED_BYTE:
		return 1
	default: // FLOAT, UNSIGNED_INT
		return 4
	}
}

// VertexBufferLayout is an ordered list of attributes describing how one
// vertex is laid out. Attribute indices follow push order.
type VertexBufferLayout struct {
	attribs []VertexAttrib
	stride  int32
}

// PushFloat appends a float attribute of count components.
func (l *VertexBufferLayout) PushFloat(count int32) {
	l.attribs = append(l.attribs, VertexAttrib{Count: count, Type: gl.FLOAT})
	l.stride += count * glTypeSize(gl.FLOAT)
}

func (l *VertexBufferLayout) Attribs() []VertexAttrib {
	return l.attribs
}

func (l *VertexBufferLayout) Stride() int32 {
	return l.stride
}
