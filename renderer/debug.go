package renderer

import (
	"log"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

var debugChecks bool

// EnableDebugChecks turns on GL error draining after setup and after every
// frame. Off by default: gl.GetError forces a driver round-trip.
func EnableDebugChecks() {
	debugChecks = true
}

func checkGL(site string) {
	if !debugChecks {
		return
	}
	for {
		e := gl.GetError()
		if e == gl.NO_ERROR {
			return
		}
		log.Printf("gl error 0x%04x at %s", e, site)
	}
}
