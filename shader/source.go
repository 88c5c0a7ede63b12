package shader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Stage identifies a shader stage within a combined source file.
type Stage int

const (
	StageNone Stage = iota
	StageVertex
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "none"
	}
}

// SourcePair holds the two stage sources split out of one combined file.
type SourcePair struct {
	Vertex   string
	Fragment string
}

const markerToken = "#shader"

// ParseSource splits a combined shader source into its vertex and fragment
// parts. A line containing "#shader" switches the active stage according to
// the keyword found on the same line; the marker line itself is dropped. A
// marker with an unknown keyword leaves the active stage unchanged. Lines
// seen before any marker collect in a bucket that is never read back.
//
// Neither output is checked for emptiness here; an empty stage surfaces
// later as a compile failure.
func ParseSource(r io.Reader) (SourcePair, error) {
	sections := map[Stage]*strings.Builder{
		StageNone:     {},
		StageVertex:   {},
		StageFragment: {},
	}
	current := StageNone

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, markerToken) {
			switch {
			case strings.Contains(line, "vertex"):
				current = StageVertex
			case strings.Contains(line, "fragment"):
				current = StageFragment
			}
			continue
		}
		sections[current].WriteString(line)
		sections[current].WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return SourcePair{}, fmt.Errorf("reading shader source: %w", err)
	}

	return SourcePair{
		Vertex:   sections[StageVertex].String(),
		Fragment: sections[StageFragment].String(),
	}, nil
}

// ParseFile reads and splits the combined shader file at path. A missing or
// unreadable file is a configuration error: nothing downstream can run
// without source text, so the caller is expected to abort setup.
func ParseFile(path string) (SourcePair, error) {
	f, err := os.Open(path)
	if err != nil {
		return SourcePair{}, fmt.Errorf("open shader file %q: %w", path, err)
	}
	defer f.Close()
	return ParseSource(f)
}
