package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	options "github.com/eico6/glquad/options"
)

func TestColorChannelOscillates(t *testing.T) {
	c := colorChannel{step: 0.05}

	// Rising phase: +0.05 per frame until the value crosses 1.0.
	frames := 0
	for c.value <= 1.0 {
		c.advance()
		frames++
		assert.Less(t, frames, 100, "color channel never reached the upper bound")
	}

	// The next advance flips the step and the value starts falling.
	peak := c.value
	c.advance()
	assert.Equal(t, float32(-0.01), c.step)
	assert.Less(t, c.value, peak)

	// Falling phase: -0.01 per frame until the value crosses 0.0.
	frames = 0
	for c.value >= 0.0 {
		c.advance()
		frames++
		assert.Less(t, frames, 300, "color channel never reached the lower bound")
	}

	// Symmetric turnaround at the bottom.
	trough := c.value
	c.advance()
	assert.Equal(t, float32(0.01), c.step)
	assert.Greater(t, c.value, trough)
}

func TestColorChannelStepUnchangedInRange(t *testing.T) {
	c := colorChannel{value: 0.5, step: 0.05}
	c.advance()
	assert.Equal(t, float32(0.05), c.step)
	assert.InDelta(t, 0.55, c.value, 1e-6)
}

func TestFlipRows(t *testing.T) {
	// 2x3 image, each row filled with its own byte value.
	const width, height = 2, 3
	pixels := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width*4; x++ {
			pixels[y*width*4+x] = byte(y)
		}
	}

	flipRows(pixels, width, height)

	for y := 0; y < height; y++ {
		want := byte(height - 1 - y)
		for x := 0; x < width*4; x++ {
			assert.Equal(t, want, pixels[y*width*4+x], "row %d", y)
		}
	}
}

func TestFlipRowsSingleRow(t *testing.T) {
	pixels := []byte{1, 2, 3, 4}
	flipRows(pixels, 1, 1)
	assert.Equal(t, []byte{1, 2, 3, 4}, pixels)
}

func TestRecordArgs(t *testing.T) {
	width, height, fps := 1280, 720, 30
	opts := &options.Options{Width: &width, Height: &height, FPS: &fps}

	inputArgs, outputArgs := recordArgs(opts)
	assert.Equal(t, "rawvideo", inputArgs["f"])
	assert.Equal(t, "rgba", inputArgs["pix_fmt"])
	assert.Equal(t, "1280x720", inputArgs["s"])
	assert.Equal(t, 30, inputArgs["r"])
	assert.Equal(t, "libx264", outputArgs["c:v"])
	assert.Equal(t, "yuv420p", outputArgs["pix_fmt"])
}
