package renderer

import (
	"fmt"
	"log"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/eico6/glquad/geometry"
	"github.com/eico6/glquad/graphics"
	"github.com/eico6/glquad/shader"
)

// Quad in normalized device coordinates, two floats per vertex.
var quadPositions = []float32{
	-0.5, -0.5, // 0
	0.5, -0.5, // 1
	0.5, 0.5, // 2
	-0.5, 0.5, // 3
}

var quadIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
}

// colorChannel steps the animated red channel once per frame, bouncing
// between 0 and 1. The bound check runs before the step is applied, so the
// value may overshoot by one step before turning around.
type colorChannel struct {
	value float32
	step  float32
}

func (c *colorChannel) advance() {
	if c.value > 1.0 {
		c.step = -0.01
	}
	if c.value < 0.0 {
		c.step = 0.01
	}
	c.value += c.step
}

var glInitOnce sync.Once

// Session owns the shader program, the cached color uniform location, the
// quad's buffer objects and the animated color state for one context's
// lifetime. All methods must run on the thread the context is current on.
type Session struct {
	context  graphics.Context
	program  *shader.Program
	colorLoc int32
	va       *geometry.VertexArray
	vb       *geometry.VertexBuffer
	ib       *geometry.IndexBuffer
	color    colorChannel
}

// NewSession makes ctx current and initializes the GL bindings.
func NewSession(ctx graphics.Context) (*Session, error) {
	s := &Session{
		context: ctx,
		color:   colorChannel{step: 0.05},
	}

	s.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}

	return s, nil
}

// InitScene uploads the quad geometry, builds the shader program from the
// combined source file at shaderPath and resolves the color uniform. A
// missing file or an unresolvable uniform aborts setup.
func (s *Session) InitScene(shaderPath string) error {
	src, err := shader.ParseFile(shaderPath)
	if err != nil {
		return err
	}

	s.vb = geometry.NewVertexBuffer(quadPositions)
	layout := &geometry.VertexBufferLayout{}
	layout.PushFloat(2)
	s.va = geometry.NewVertexArray()
	s.va.AddBuffer(s.vb, layout)

	s.ib = geometry.NewIndexBuffer(quadIndices)

	s.program = shader.NewProgram(src.Vertex, src.Fragment)
	s.program.Use()

	loc, err := s.program.UniformLocation("u_Color")
	if err != nil {
		return fmt.Errorf("failed to resolve color uniform: %w", err)
	}
	s.colorLoc = loc
	gl.Uniform4f(s.colorLoc, 0.0, 0.3, 0.8, 1.0)

	// Leave a clean slate; RenderFrame binds what it needs.
	s.va.Unbind()
	gl.UseProgram(0)
	s.vb.Unbind()
	s.ib.Unbind()

	checkGL("InitScene")
	return nil
}

// Program exposes the built program so callers can inspect link state.
func (s *Session) Program() *shader.Program {
	return s.program
}

// RenderFrame binds the program and the quad, issues the one indexed draw
// call and steps the color animation.
func (s *Session) RenderFrame() {
	s.program.Use()
	gl.Uniform4f(s.colorLoc, s.color.value, 0.3, 0.8, 1.0)

	s.va.Bind()
	s.ib.Bind()
	gl.DrawElementsWithOffset(gl.TRIANGLES, s.ib.Count(), gl.UNSIGNED_INT, 0)

	s.color.advance()
	checkGL("RenderFrame")
}

// Run drives the interactive loop until the window is closed.
func (s *Session) Run() {
	startTime := s.context.Time()
	frames := 0

	for !s.context.ShouldClose() {
		fbWidth, fbHeight := s.context.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		gl.Clear(gl.COLOR_BUFFER_BIT)

		s.RenderFrame()

		s.context.EndFrame()
		frames++
	}

	elapsed := s.context.Time() - startTime
	if elapsed > 0 {
		log.Printf("Rendered %d frames in %.1fs (%.1f fps)", frames, elapsed, float64(frames)/elapsed)
	}
}

// Shutdown releases the GL objects the session owns. The context itself is
// shut down by the caller that created it.
func (s *Session) Shutdown() {
	if s.program != nil {
		s.program.Delete()
	}
	if s.va != nil {
		s.va.Delete()
	}
	if s.vb != nil {
		s.vb.Delete()
	}
	if s.ib != nil {
		s.ib.Delete()
	}
}
