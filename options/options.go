package options

// Options holds the parsed command-line configuration. Fields point at the
// flag values registered in cmd/main.go.
type Options struct {
	ShaderFile *string
	Width      *int
	Height     *int
	Debug      *bool
	// Recording options
	Record     *bool
	Duration   *float64
	FPS        *int
	OutputFile *string
	FFMPEGPath *string
}
