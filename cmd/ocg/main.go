package main

import (
	"github.com/OpenCanvasLab/OpenCanvasGizmo/cmd/ocg/cmd"
)

func main() {
	cmd.Execute()
}
