package geometry

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// VertexArray wraps a GL vertex array object.
type VertexArray struct {
	id uint32
}

func NewVertexArray() *VertexArray {
	va := &VertexArray{}
	gl.GenVertexArrays(1, &va.id)
	return va
}

// AddBuffer binds vb into the array and configures one attribute pointer per
// layout entry, interleaved at the layout's stride.
func (va *VertexArray) AddBuffer(vb *VertexBuffer, layout *VertexBufferLayout) {
	va.Bind()
	vb.Bind()
	var offset uintptr
	for i, attrib := range layout.Attribs() {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointerWithOffset(uint32(i), attrib.Count, attrib.Type, attrib.Normalized, layout.Stride(), offset)
		offset += uintptr(attrib.Count * glTypeSize(attrib.Type))
	}
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.id)
}

func (va *VertexArray) Unbind() {
	gl.BindVertexArray(0)
}

func (va *VertexArray) Delete() {
	gl.DeleteVertexArrays(1, &va.id)
}
