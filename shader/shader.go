package shader

import (
	"fmt"
	"log"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

func (s Stage) glType() uint32 {
	if s == StageVertex {
		return gl.VERTEX_SHADER
	}
	return gl.FRAGMENT_SHADER
}

// Compile builds a single shader unit of the given stage. On failure it logs
// the driver's diagnostic, deletes the unit and returns the zero sentinel so
// the caller can keep going and collect diagnostics for both stages in one
// run.
func Compile(source string, stage Stage) uint32 {
	id := gl.CreateShader(stage.glType())
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
		logMsg := make([]byte, logLength)
		if logLength > 0 {
			gl.GetShaderInfoLog(id, logLength, nil, &logMsg[0])
		}
		log.Printf("failed to compile %s shader: %s", stage, logMsg)
		gl.DeleteShader(id)
		return 0
	}

	return id
}

// Program is a linked shader program plus its cached uniform locations.
//
// Link and validate results are recorded, not enforced: a driver may tolerate
// a broken link, and the draw path keeps going either way. Callers that care
// check Linked and InfoLog themselves.
type Program struct {
	id        uint32
	linked    bool
	validated bool
	infoLog   string
	uniforms  map[string]int32
}

// NewProgram compiles both stage sources and links them into one program.
// A stage that fails to compile comes back as the zero sentinel and is
// attached anyway; the link then fails with its own diagnostic instead of
// the whole build stopping at the first broken stage.
func NewProgram(vertexSrc, fragmentSrc string) *Program {
	program := gl.CreateProgram()
	vs := Compile(vertexSrc, StageVertex)
	fs := Compile(fragmentSrc, StageFragment)

	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	gl.ValidateProgram(program)

	p := &Program{
		id:       program,
		uniforms: make(map[string]int32),
	}

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	p.linked = status != gl.FALSE
	gl.GetProgramiv(program, gl.VALIDATE_STATUS, &status)
	p.validated = status != gl.FALSE
	if !p.linked || !p.validated {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			logMsg := make([]byte, logLength)
			gl.GetProgramInfoLog(program, logLength, nil, &logMsg[0])
			p.infoLog = string(logMsg)
		}
		log.Printf("program %d linked=%v validated=%v: %s", program, p.linked, p.validated, p.infoLog)
	}

	// The units are compiled into the program now. Deleting without
	// detaching keeps the driver's copy of the source around for debuggers
	// until the program itself is deleted.
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	return p
}

func (p *Program) ID() uint32      { return p.id }
func (p *Program) Linked() bool    { return p.linked }
func (p *Program) Validated() bool { return p.validated }
func (p *Program) InfoLog() string { return p.infoLog }

func (p *Program) Use() {
	gl.UseProgram(p.id)
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.id)
}

// UniformLocation resolves the named uniform and caches the location so the
// per-frame path never repeats the lookup. A missing uniform means the host
// and the program disagree about their interface; the session cannot render,
// so this is an error rather than a -1 passthrough.
func (p *Program) UniformLocation(name string) (int32, error) {
	if loc, ok := p.uniforms[name]; ok {
		return loc, nil
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	if loc == -1 {
		return -1, fmt.Errorf("uniform %q not found on program %d", name, p.id)
	}
	p.uniforms[name] = loc
	return loc, nil
}
