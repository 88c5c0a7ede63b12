package renderer

import (
	"fmt"
	"io"
	"log"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	options "github.com/eico6/glquad/options"
)

// Frame represents a single rendered frame's data, ready for encoding.
type Frame struct {
	Pixels []byte
	PTS    int64
}

const frameChanDepth = 3

// OffscreenRenderer owns the FBO the record mode draws into.
type OffscreenRenderer struct {
	fbo       uint32
	textureID uint32
	width     int
	height    int
}

func NewOffscreenRenderer(width, height int) (*OffscreenRenderer, error) {
	or := &OffscreenRenderer{width: width, height: height}

	gl.GenFramebuffers(1, &or.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
	gl.GenTextures(1, &or.textureID)
	gl.BindTexture(gl.TEXTURE_2D, or.textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, or.textureID, 0)
	if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return nil, fmt.Errorf("offscreen fbo is not complete")
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	return or, nil
}

func (or *OffscreenRenderer) Destroy() {
	gl.DeleteFramebuffers(1, &or.fbo)
	gl.DeleteTextures(1, &or.textureID)
}

// readPixels pulls the FBO contents as tightly packed RGBA, flipped to
// top-down row order the way rawvideo expects.
func (or *OffscreenRenderer) readPixels() []byte {
	pixels := make([]byte, or.width*or.height*4)
	gl.ReadPixels(0, 0, int32(or.width), int32(or.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	flipRows(pixels, or.width, or.height)
	return pixels
}

// flipRows reverses the row order of an RGBA image in place. GL reads back
// bottom-up; encoders want top-down.
func flipRows(pixels []byte, width, height int) {
	stride := width * 4
	tmp := make([]byte, stride)
	for y := 0; y < height/2; y++ {
		top := pixels[y*stride : (y+1)*stride]
		bottom := pixels[(height-1-y)*stride : (height-y)*stride]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

func recordArgs(opts *options.Options) (inputArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"f":       "rawvideo",
		"pix_fmt": "rgba",
		"s":       fmt.Sprintf("%dx%d", *opts.Width, *opts.Height),
		"r":       *opts.FPS,
	}
	outputArgs = ffmpeg.KwArgs{
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
		"r":       *opts.FPS,
	}
	return
}

// runEncoder is the consumer. It pipes raw frames into FFmpeg until
// frameChan closes, then reports FFmpeg's exit status on doneChan.
func (s *Session) runEncoder(opts *options.Options, frameChan <-chan *Frame, doneChan chan<- error) {
	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := recordArgs(opts)

	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(*opts.OutputFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()

	if *opts.FFMPEGPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(*opts.FFMPEGPath)
	}

	errc := make(chan error, 1)
	go func() {
		errc <- ffmpegCmd.Run()
	}()

	for frame := range frameChan {
		if _, err := pipeWriter.Write(frame.Pixels); err != nil {
			log.Printf("Error writing frame %d to pipe: %v", frame.PTS, err)
			break
		}
	}

	pipeWriter.Close()
	doneChan <- <-errc
}

// RunOffscreen renders opts.Duration seconds of the scene at a fixed frame
// rate into opts.OutputFile. Frames are produced here and consumed by the
// encoder goroutine.
func (s *Session) RunOffscreen(opts *options.Options) error {
	or, err := NewOffscreenRenderer(*opts.Width, *opts.Height)
	if err != nil {
		return fmt.Errorf("failed to create offscreen renderer: %w", err)
	}
	defer or.Destroy()

	frameChan := make(chan *Frame, frameChanDepth)
	doneChan := make(chan error, 1)
	go s.runEncoder(opts, frameChan, doneChan)

	totalFrames := int(*opts.Duration * float64(*opts.FPS))
	for i := 0; i < totalFrames; i++ {
		gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
		gl.Viewport(0, 0, int32(or.width), int32(or.height))
		gl.Clear(gl.COLOR_BUFFER_BIT)

		s.RenderFrame()

		pixels := or.readPixels()
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

		frameChan <- &Frame{Pixels: pixels, PTS: int64(i)}
	}

	close(frameChan)
	return <-doneChan
}
