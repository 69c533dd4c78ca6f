package main

import (
	"os"
	"runtime"

	"first-rect/internal/app"
)

func init() {
	// GLFW and the GL context must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(app.Run(app.DefaultOptions()))
}
