// Package ui implements the interactive canvas application on gio.
package ui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"gioui.org/app"
	gfont "gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/scenefile"
	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/transform"
)

// App drives the canvas editor window.
type App struct {
	window *app.Window
	ops    op.Ops

	gvTheme  *theme.Theme
	darkMode bool

	canvasIcon *widget.Icon

	canvas *Canvas

	darkModeSwitch  widget.Bool
	debugZoneSwitch widget.Bool

	zoomMenu    *menu.DropdownMenu
	zoomMenuBtn widget.Clickable

	logs          []string
	logText       string
	logSelectable widget.Selectable
	logList       widget.List

	monoShaper *text.Shaper
}

// New creates the canvas editor app around a loaded scene document.
func New(w *app.Window, doc *scenefile.Document) *App {
	if w == nil {
		w = new(app.Window)
	}
	title := "Canvas Gizmo"
	if doc.Name != "" {
		title = fmt.Sprintf("Canvas Gizmo - %s", doc.Name)
	}
	w.Option(app.Title(title), app.Size(unit.Dp(1100), unit.Dp(760)))

	gv := theme.NewTheme("", nil, true)
	a := &App{
		window:  w,
		gvTheme: gv,
	}

	monoFaces := filterMonoFaces()
	if len(monoFaces) > 0 {
		a.monoShaper = text.NewShaper(text.WithCollection(monoFaces), text.NoSystemFonts())
	}
	if icon, err := widget.NewIcon(icons.ImageCropSquare); err == nil {
		a.canvasIcon = icon
	}

	cfg := transform.DefaultConfig()
	a.canvas = NewCanvas(doc, cfg, a.Logf)

	if conf, err := LoadConfig(); err == nil {
		a.darkMode = conf.DarkMode
		a.canvas.SetDebugZones(conf.DebugZones)
		a.debugZoneSwitch.Value = conf.DebugZones
	}
	a.darkModeSwitch.Value = a.darkMode

	a.logList.Axis = layout.Vertical
	a.logList.ScrollToEnd = true
	a.logSelectable.WrapPolicy = text.WrapGraphemes

	a.buildZoomMenu()

	a.applyPalette()
	a.Logf("[BOOT] Canvas initialized with %d objects", doc.Scene.Len())
	a.Logf("[INFO] Drag to move, handles to resize, corner bands to rotate")
	a.Logf("[INFO] Hold shift to lock aspect ratio or snap rotation")
	return a
}

// Run blocks processing window events until the window closes.
func (a *App) Run() error {
	for {
		e := a.window.Event()
		switch ev := e.(type) {
		case app.DestroyEvent:
			a.saveConfig()
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.FillShape(gtx.Ops, a.gvTheme.Palette.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(a.layoutToolbar),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.canvas.Layout(gtx)
		}),
		layout.Rigid(a.layoutLogPane),
		layout.Rigid(a.layoutStatusBar),
	)
}

func (a *App) layoutToolbar(gtx layout.Context) layout.Dimensions {
	inset := layout.Inset{Left: unit.Dp(16), Right: unit.Dp(16), Top: unit.Dp(8), Bottom: unit.Dp(8)}
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		if a.darkModeSwitch.Update(gtx) {
			a.setDarkMode(a.darkModeSwitch.Value)
		}
		if a.debugZoneSwitch.Update(gtx) {
			a.canvas.SetDebugZones(a.debugZoneSwitch.Value)
			a.Logf("[INFO] Debug zones %v", a.debugZoneSwitch.Value)
			a.invalidate()
		}

		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.canvasIcon == nil {
					return layout.Dimensions{}
				}
				iconSize := gtx.Dp(unit.Dp(22))
				gtx.Constraints.Min.X = iconSize
				gtx.Constraints.Max.X = iconSize
				return a.canvasIcon.Layout(gtx, a.gvTheme.Palette.ContrastBg)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(material.H6(a.gvTheme.Theme, "Canvas Gizmo").Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions { return layout.Dimensions{} }),
			layout.Rigid(a.layoutZoomMenu),
			layout.Rigid(layout.Spacer{Width: unit.Dp(20)}.Layout),
			layout.Rigid(material.Switch(a.gvTheme.Theme, &a.debugZoneSwitch, "Debug zones").Layout),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
			layout.Rigid(material.Body2(a.gvTheme.Theme, "Zones").Layout),
			layout.Rigid(layout.Spacer{Width: unit.Dp(20)}.Layout),
			layout.Rigid(material.Switch(a.gvTheme.Theme, &a.darkModeSwitch, "Dark mode").Layout),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
			layout.Rigid(material.Body2(a.gvTheme.Theme, "Dark").Layout),
		)
	})
}

var zoomPresets = []struct {
	label string
	level float64
}{
	{"50%", 5},
	{"100%", 6},
	{"200%", 7},
	{"400%", 8},
}

func (a *App) buildZoomMenu() {
	opts := make([]menu.MenuOption, 0, len(zoomPresets))
	for i := range zoomPresets {
		preset := zoomPresets[i]
		opts = append(opts, menu.MenuOption{
			OnClicked: func() error {
				a.canvas.SetZoomLevel(preset.level)
				a.Logf("[INFO] Zoom set to %s", preset.label)
				a.invalidate()
				return nil
			},
			Layout: func(gtx menu.C, th *theme.Theme) menu.D {
				lbl := material.Body1(th.Theme, preset.label)
				if a.canvas.View().ZoomLevel == preset.level {
					lbl.Color = th.Palette.ContrastBg
				}
				return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, lbl.Layout)
			},
		})
	}
	drop := menu.NewDropdownMenu([][]menu.MenuOption{opts})
	drop.MaxWidth = unit.Dp(140)
	a.zoomMenu = drop
}

func (a *App) layoutZoomMenu(gtx layout.Context) layout.Dimensions {
	if a.zoomMenuBtn.Clicked(gtx) {
		a.zoomMenu.ToggleVisibility(gtx)
	}
	dims := material.Button(a.gvTheme.Theme, &a.zoomMenuBtn, "Zoom").Layout(gtx)
	a.zoomMenu.Layout(gtx, a.gvTheme)
	return dims
}

func (a *App) layoutLogPane(gtx layout.Context) layout.Dimensions {
	h := gtx.Dp(unit.Dp(120))
	gtx.Constraints.Min.Y = h
	gtx.Constraints.Max.Y = h

	paint.FillShape(gtx.Ops, a.gvTheme.Bg2, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.Inset{Left: unit.Dp(16), Right: unit.Dp(16), Top: unit.Dp(6), Bottom: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min = gtx.Constraints.Max
		return a.logList.Layout(gtx, 1, func(gtx layout.Context, _ int) layout.Dimensions {
			label := material.Body2(a.gvTheme.Theme, a.logText)
			label.State = &a.logSelectable
			label.WrapPolicy = text.WrapGraphemes
			label.Alignment = text.Start
			label.Font.Typeface = gfont.Typeface("Go Mono")
			if a.monoShaper != nil {
				label.Shaper = a.monoShaper
			}
			label.Color = a.opaqueFg()
			return label.Layout(gtx)
		})
	})
}

func (a *App) layoutStatusBar(gtx layout.Context) layout.Dimensions {
	inset := layout.Inset{Left: unit.Dp(16), Right: unit.Dp(16), Top: unit.Dp(6), Bottom: unit.Dp(6)}
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		vs := a.canvas.View()
		sel := a.canvas.Document().Scene.SelectedIDs()
		left := fmt.Sprintf("zoom %.2g (x%.3g)  state: %s", vs.ZoomLevel, vs.Scale(), a.canvas.Controller().State())
		right := "nothing selected"
		if len(sel) > 0 {
			right = "selected: " + strings.Join(sel, ", ")
		}
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(material.Body2(a.gvTheme.Theme, left).Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions { return layout.Dimensions{} }),
			layout.Rigid(material.Body2(a.gvTheme.Theme, right).Layout),
		)
	})
}

func (a *App) applyPalette() {
	if a.gvTheme == nil {
		return
	}
	if a.darkMode {
		a.gvTheme.WithPalette(theme.Palette{
			Bg:         color.NRGBA{R: 18, G: 20, B: 26, A: 255},
			Fg:         color.NRGBA{R: 233, G: 236, B: 245, A: 255},
			ContrastBg: color.NRGBA{R: 120, G: 150, B: 255, A: 255},
			ContrastFg: color.NRGBA{R: 12, G: 16, B: 24, A: 255},
			Bg2:        color.NRGBA{R: 34, G: 40, B: 50, A: 255},
		})
	} else {
		a.gvTheme.WithPalette(theme.Palette{
			Bg:         color.NRGBA{R: 245, G: 247, B: 253, A: 255},
			Fg:         color.NRGBA{R: 34, G: 37, B: 49, A: 255},
			ContrastBg: color.NRGBA{R: 80, G: 120, B: 255, A: 255},
			ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			Bg2:        color.NRGBA{R: 225, G: 230, B: 244, A: 255},
		})
	}
}

func (a *App) setDarkMode(enabled bool) {
	if a.darkMode == enabled {
		return
	}
	a.darkMode = enabled
	a.darkModeSwitch.Value = enabled
	a.applyPalette()
	if enabled {
		a.Logf("[INFO] Theme switched to dark mode")
	} else {
		a.Logf("[INFO] Theme switched to light mode")
	}
	a.invalidate()
}

func (a *App) saveConfig() {
	conf := &AppConfig{
		DarkMode:   a.darkMode,
		DebugZones: a.debugZoneSwitch.Value,
	}
	if err := SaveConfig(conf); err != nil {
		a.Logf("[ERROR] Failed to save config: %v", err)
	}
}

func (a *App) invalidate() {
	if a.window != nil {
		a.window.Invalidate()
	}
}

func (a *App) Logf(format string, args ...any) {
	prefix := time.Now().Format(time.Stamp)
	entry := fmt.Sprintf("[%s] %s", prefix, fmt.Sprintf(format, args...))
	a.logs = append(a.logs, entry)
	a.logText = strings.Join(a.logs, "\n")
	a.logSelectable.SetText(a.logText)
	a.invalidate()
}

func (a *App) opaqueFg() color.NRGBA {
	fg := a.gvTheme.Palette.Fg
	fg.A = 0xFF
	return fg
}

func filterMonoFaces() []gfont.FontFace {
	var mono []gfont.FontFace
	for _, face := range gofont.Collection() {
		if face.Font.Typeface == gfont.Typeface("Go Mono") {
			mono = append(mono, face)
		}
	}
	return mono
}
