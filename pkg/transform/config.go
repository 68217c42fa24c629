package transform

import "github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/scene"

// Config holds the interaction tolerances and feature toggles supplied
// by the host. All pixel values are screen pixels; the engine converts
// them through the view mapper so they stay constant under zoom.
type Config struct {
	// ResizeZonePx is the hit radius around corners and edges that
	// classifies as a resize.
	ResizeZonePx float64
	// RotateZonePx is the outer corner radius that classifies as a
	// rotate; the rotate band is (ResizeZonePx, RotateZonePx].
	RotateZonePx float64
	// SnapRotationDeg is the snap step applied to rotation while the
	// aspect/snap modifier is held.
	SnapRotationDeg float64
	// MinWidth and MinHeight floor the object dimensions during resize.
	MinWidth  float64
	MinHeight float64
	// BorderWidthPx is the selection border thickness for overlays.
	BorderWidthPx float64
	// HandleSizePx is the on-screen edge length of a handle square.
	HandleSizePx float64

	EnableMove   bool
	EnableResize bool
	EnableRotate bool

	// AspectRatioLocked mirrors the host's live modifier state (e.g.
	// shift held). It locks aspect during resize and snaps rotation.
	AspectRatioLocked bool
}

// DefaultConfig returns the stock interaction tolerances.
func DefaultConfig() Config {
	return Config{
		ResizeZonePx:    12,
		RotateZonePx:    24,
		SnapRotationDeg: 15,
		MinWidth:        scene.MinDimension,
		MinHeight:       scene.MinDimension,
		BorderWidthPx:   2,
		HandleSizePx:    8,
		EnableMove:      true,
		EnableResize:    true,
		EnableRotate:    true,
	}
}
