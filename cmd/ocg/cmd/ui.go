package cmd

import (
	"fmt"
	"os"

	"gioui.org/app"
	"github.com/spf13/cobra"

	appui "github.com/OpenCanvasLab/OpenCanvasGizmo/internal/ui"
	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/scene"
	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/scenefile"
)

var uiCmd = &cobra.Command{
	Use:   "ui [scene_file]",
	Short: "Launch the interactive canvas",
	Long: `Launch the canvas editor. Objects can be selected, moved, resized and
rotated with the pointer; scroll zooms and the secondary button pans.

Without a scene file a small demo scene is loaded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var doc *scenefile.Document
		if len(args) == 1 {
			var err error
			doc, err = loadDocument(args[0])
			if err != nil {
				return err
			}
		} else {
			doc = demoDocument()
		}

		go func() {
			a := appui.New(nil, doc)
			if err := a.Run(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			os.Exit(0)
		}()
		app.Main()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func demoDocument() *scenefile.Document {
	doc := &scenefile.Document{Name: "demo", Scene: scene.New()}
	for _, o := range []*scene.Object{
		{ID: "slab", X: -120, Y: 40, Width: 240, Height: 80},
		{ID: "card", X: -40, Y: 140, Width: 80, Height: 60, Rotation: 30, ZIndex: 1},
		{ID: "chip", X: 80, Y: -20, Width: 50, Height: 50, ZIndex: 2},
	} {
		if err := doc.Scene.Add(o); err != nil {
			panic(err)
		}
	}
	return doc
}
