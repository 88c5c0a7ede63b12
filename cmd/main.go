package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/eico6/glquad/glfwcontext"
	options "github.com/eico6/glquad/options"
	renderer "github.com/eico6/glquad/renderer"
)

func init() {
	// GLFW event handling and all GL calls must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	opts := &options.Options{
		ShaderFile: flag.String("shader", "res/shaders/basic.shader", "Path to the combined shader source file"),
		Width:      flag.Int("width", 960, "Width of the window or the recorded output"),
		Height:     flag.Int("height", 540, "Height of the window or the recorded output"),
		Debug:      flag.Bool("debug", false, "Drain and log the GL error queue every frame"),
		Record:     flag.Bool("record", false, "Render offscreen to a video file instead of a window"),
		Duration:   flag.Float64("duration", 10.0, "Duration to record in seconds"),
		FPS:        flag.Int("fps", 60, "Frames per second for recording"),
		OutputFile: flag.String("output", "output.mp4", "Output file name for recording"),
		FFMPEGPath: flag.String("ffmpeg", "", "Path to ffmpeg executable"),
	}
	flag.Parse()

	if err := glfwcontext.InitGraphics(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfwcontext.TerminateGraphics()

	// When recording, the window stays hidden.
	ctx, err := glfwcontext.New(opts, !*opts.Record)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer ctx.Shutdown()

	if *opts.Debug {
		renderer.EnableDebugChecks()
	}

	session, err := renderer.NewSession(ctx)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer session.Shutdown()

	if err := session.InitScene(*opts.ShaderFile); err != nil {
		log.Fatalf("Failed to initialize scene: %v", err)
	}

	if *opts.Record {
		log.Println("Starting offscreen render loop...")
		if err := session.RunOffscreen(opts); err != nil {
			log.Fatalf("Offscreen rendering failed: %v", err)
		}
		log.Printf("Successfully rendered to %s", *opts.OutputFile)
	} else {
		log.Println("Starting interactive render loop...")
		session.Run()
	}
}
