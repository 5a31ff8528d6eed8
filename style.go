package propui

import (
	"errors"
	"sync"
)

// Spacing constants for consistent layout.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2 // Extra small
	SpaceSM   float32 = 4 // Small (default item spacing)
	SpaceMD   float32 = 8 // Medium (default padding)
	SpaceLG   float32 = 12
)

// ColorRole names a semantic color in the palette.
type ColorRole int

const (
	ColorText ColorRole = iota
	ColorTextDisabled
	ColorPanelBg
	ColorFrameBg
	ColorFrameBgHovered
	ColorFrameBgActive
	ColorBorder
	ColorCheckMark
	ColorSliderTrack
	ColorSliderFill
	ColorSliderThumb
	ColorSliderThumbActive
	ColorButton
	ColorButtonHovered
	ColorButtonActive
	ColorHeader
	ColorHeaderHovered
	ColorArrow
	ColorPopupBg
	ColorSelection
	ColorRowHovered
	colorRoleCount
)

var colorRoleNames = [colorRoleCount]string{
	ColorText:              "text",
	ColorTextDisabled:      "text_disabled",
	ColorPanelBg:           "panel_bg",
	ColorFrameBg:           "frame_bg",
	ColorFrameBgHovered:    "frame_bg_hovered",
	ColorFrameBgActive:     "frame_bg_active",
	ColorBorder:            "border",
	ColorCheckMark:         "check_mark",
	ColorSliderTrack:       "slider_track",
	ColorSliderFill:        "slider_fill",
	ColorSliderThumb:       "slider_thumb",
	ColorSliderThumbActive: "slider_thumb_active",
	ColorButton:            "button",
	ColorButtonHovered:     "button_hovered",
	ColorButtonActive:      "button_active",
	ColorHeader:            "header",
	ColorHeaderHovered:     "header_hovered",
	ColorArrow:             "arrow",
	ColorPopupBg:           "popup_bg",
	ColorSelection:         "selection",
	ColorRowHovered:        "row_hovered",
}

// String returns the snake_case name used in config files.
func (r ColorRole) String() string {
	if r < 0 || r >= colorRoleCount {
		return "unknown"
	}
	return colorRoleNames[r]
}

// ColorRoleByName looks a role up by its config name.
func ColorRoleByName(name string) (ColorRole, bool) {
	for i, n := range colorRoleNames {
		if n == name {
			return ColorRole(i), true
		}
	}
	return 0, false
}

// Palette maps every role to a packed RGBA color.
type Palette [colorRoleCount]uint32

// DefaultPalette returns the built-in dark palette.
func DefaultPalette() Palette {
	return Palette{
		ColorText:              ColorWhite,
		ColorTextDisabled:      RGBA(128, 128, 128, 255),
		ColorPanelBg:           RGBA(20, 20, 20, 230),
		ColorFrameBg:           RGBA(30, 30, 30, 255),
		ColorFrameBgHovered:    RGBA(40, 40, 50, 255),
		ColorFrameBgActive:     RGBA(50, 50, 65, 255),
		ColorBorder:            RGBA(100, 100, 100, 255),
		ColorCheckMark:         RGBA(0, 180, 230, 255),
		ColorSliderTrack:       RGBA(40, 40, 40, 255),
		ColorSliderFill:        RGBA(50, 100, 150, 255),
		ColorSliderThumb:       RGBA(100, 100, 100, 255),
		ColorSliderThumbActive: RGBA(140, 140, 140, 255),
		ColorButton:            RGBA(50, 50, 50, 255),
		ColorButtonHovered:     RGBA(70, 70, 70, 255),
		ColorButtonActive:      RGBA(90, 90, 90, 255),
		ColorHeader:            RGBA(40, 40, 45, 255),
		ColorHeaderHovered:     RGBA(60, 80, 100, 255),
		ColorArrow:             RGBA(180, 180, 180, 255),
		ColorPopupBg:           RGBA(20, 20, 25, 255),
		ColorSelection:         RGBA(50, 100, 150, 255),
		ColorRowHovered:        RGBA(60, 60, 60, 255),
	}
}

// ErrPaletteSealed is returned by ConfigurePalette once the palette has been read.
var ErrPaletteSealed = errors.New("propui: palette already initialized")

// The palette is process-wide and read-only after first use. Access is
// single-threaded like the rest of the toolkit; sync.Once only guards the
// lazy initialisation itself.
var (
	paletteOnce    sync.Once
	palette        Palette
	paletteSource  = DefaultPalette
	paletteMu      sync.Mutex
	paletteStarted bool
)

// ConfigurePalette replaces the palette that will be installed on first use.
// It fails with ErrPaletteSealed if any color has already been read.
func ConfigurePalette(p Palette) error {
	paletteMu.Lock()
	defer paletteMu.Unlock()
	if paletteStarted {
		return ErrPaletteSealed
	}
	paletteSource = func() Palette { return p }
	return nil
}

// StyleColor returns the color for a role, initializing the palette on first call.
func StyleColor(role ColorRole) uint32 {
	paletteOnce.Do(func() {
		paletteMu.Lock()
		paletteStarted = true
		src := paletteSource
		paletteMu.Unlock()
		palette = src()
	})
	if role < 0 || role >= colorRoleCount {
		return ColorTransparent
	}
	return palette[role]
}

// Metrics are the static sizes shared by all widgets.
type Metrics struct {
	ItemSpacing   float32 // gap between siblings in containers
	FramePadding  float32 // inner padding of framed controls
	Rounding      float32 // corner radius of framed controls
	BorderSize    float32
	CheckboxSize  float32
	TrackWidth    float32 // default slider track width
	TrackHeight   float32
	MinThumbSize  float32 // smallest integer-slider thumb
	FloatThumb    float32 // thumb width of continuous sliders
	ArrowSize     float32
	ComboWidth    float32
	PopupRowExtra float32 // vertical padding added to each combo row
	IndentWidth   float32 // indentation of collapsing container content
}

// DefaultMetrics are the sizes used by the Arbiter.
var DefaultMetrics = Metrics{
	ItemSpacing:   SpaceSM,
	FramePadding:  SpaceSM,
	Rounding:      3,
	BorderSize:    1,
	CheckboxSize:  13,
	TrackWidth:    150,
	TrackHeight:   13,
	MinThumbSize:  6,
	FloatThumb:    10,
	ArrowSize:     8,
	ComboWidth:    150,
	PopupRowExtra: SpaceXS,
	IndentWidth:   SpaceLG,
}
