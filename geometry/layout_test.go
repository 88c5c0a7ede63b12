package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutStride(t *testing.T) {
	layout := &VertexBufferLayout{}
	assert.Equal(t, int32(0), layout.Stride())

	layout.PushFloat(2)
	assert.Equal(t, int32(8), layout.Stride())

	layout.PushFloat(3)
	assert.Equal(t, int32(20), layout.Stride())
	assert.Len(t, layout.Attribs(), 2)
	assert.Equal(t, int32(2), layout.Attribs()[0].Count)
	assert.Equal(t, int32(3), layout.Attribs()[1].Count)
}
