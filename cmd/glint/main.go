package main

import (
	"flag"
	"log"
	"log/slog"
	"runtime"

	"github.com/mbue/glint/app"
)

func init() {
	// the OpenGL context and the glfw event queue are bound to the main
	// OS thread
	runtime.LockOSThread()
}

func main() {
	var opts app.Options

	flag.IntVar(&opts.WindowWidth, "width", 0, "window width in pixels")
	flag.IntVar(&opts.WindowHeight, "height", 0, "window height in pixels")
	flag.StringVar(&opts.WindowTitle, "title", "", "window title")
	flag.BoolVar(&opts.Profile, "profile", false, "write a cpu profile")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if err := app.Run(opts); err != nil {
		log.Fatalln(err)
	}
}
