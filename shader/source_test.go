package shader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSourceSplitsSections(t *testing.T) {
	src := "#shader vertex\nA\n#shader fragment\nB\n"
	pair, err := ParseSource(strings.NewReader(src))
	assert.NoError(t, err)
	assert.Equal(t, "A\n", pair.Vertex)
	assert.Equal(t, "B\n", pair.Fragment)
}

func TestParseSourcePreservesLineOrder(t *testing.T) {
	src := strings.Join([]string{
		"#shader vertex",
		"layout(location = 0) in vec4 position;",
		"void main()",
		"{",
		"    gl_Position = position;",
		"}",
		"#shader fragment",
		"out vec4 color;",
		"void main()",
		"{",
		"    color = vec4(1.0);",
		"}",
	}, "\n")

	pair, err := ParseSource(strings.NewReader(src))
	assert.NoError(t, err)

	wantVertex := "layout(location = 0) in vec4 position;\nvoid main()\n{\n    gl_Position = position;\n}\n"
	wantFragment := "out vec4 color;\nvoid main()\n{\n    color = vec4(1.0);\n}\n"
	assert.Equal(t, wantVertex, pair.Vertex)
	assert.Equal(t, wantFragment, pair.Fragment)
}

func TestParseSourceNoMarkers(t *testing.T) {
	pair, err := ParseSource(strings.NewReader("void main() {}\n"))
	assert.NoError(t, err)
	assert.Equal(t, "", pair.Vertex)
	assert.Equal(t, "", pair.Fragment)
}

func TestParseSourceEmptyInput(t *testing.T) {
	pair, err := ParseSource(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Equal(t, "", pair.Vertex)
	assert.Equal(t, "", pair.Fragment)
}

func TestParseSourceDropsLeadingLines(t *testing.T) {
	src := "stray comment\nanother stray\n#shader vertex\nA\n"
	pair, err := ParseSource(strings.NewReader(src))
	assert.NoError(t, err)
	assert.Equal(t, "A\n", pair.Vertex)
	assert.Equal(t, "", pair.Fragment)
	assert.NotContains(t, pair.Vertex, "stray")
}

func TestParseSourceUnknownKeywordKeepsStage(t *testing.T) {
	src := "#shader vertex\nA\n#shader geometry\nB\n"
	pair, err := ParseSource(strings.NewReader(src))
	assert.NoError(t, err)
	// The unrecognized marker is dropped but the active stage stays vertex.
	assert.Equal(t, "A\nB\n", pair.Vertex)
	assert.Equal(t, "", pair.Fragment)
}

func TestParseSourceRevisitsSection(t *testing.T) {
	src := "#shader vertex\nA\n#shader fragment\nB\n#shader vertex\nC\n"
	pair, err := ParseSource(strings.NewReader(src))
	assert.NoError(t, err)
	assert.Equal(t, "A\nC\n", pair.Vertex)
	assert.Equal(t, "B\n", pair.Fragment)
}

func TestParseSourceAppendsTrailingNewline(t *testing.T) {
	// The final line carries no newline in the input but gets one on output.
	src := "#shader fragment\nB"
	pair, err := ParseSource(strings.NewReader(src))
	assert.NoError(t, err)
	assert.Equal(t, "B\n", pair.Fragment)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basic.shader")
	err := os.WriteFile(path, []byte("#shader vertex\nA\n#shader fragment\nB\n"), 0o644)
	assert.NoError(t, err)

	pair, err := ParseFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "A\n", pair.Vertex)
	assert.Equal(t, "B\n", pair.Fragment)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.shader"))
	assert.Error(t, err)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "vertex", StageVertex.String())
	assert.Equal(t, "fragment", StageFragment.String())
	assert.Equal(t, "none", StageNone.String())
}
