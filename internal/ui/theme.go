package ui

import "image/color"

// Colors: light lavender theme with blue/purple accents.
var (
	ColorBackground    = color.RGBA{R: 0xF3, G: 0xF1, B: 0xFB, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0xF5, G: 0xF3, B: 0xFF, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF} // wheel A blue
	ColorPrimaryDark   = color.RGBA{R: 0x25, G: 0x63, B: 0xEB, A: 0xFF}
	ColorAccent        = color.RGBA{R: 0xA8, G: 0x55, B: 0xF7, A: 0xFF} // wheel B purple
	ColorLens          = color.RGBA{R: 0xEF, G: 0xF6, B: 0xFF, A: 0xFF}
	ColorText          = color.RGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x4B, G: 0x55, B: 0x63, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0x63, G: 0x66, B: 0xF1, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorOverlayText   = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorWarning       = color.RGBA{R: 0xD9, G: 0x77, B: 0x06, A: 0xFF}
	ColorSuccess       = color.RGBA{R: 0x16, G: 0xA3, B: 0x4A, A: 0xFF}
	ColorDisabled      = color.RGBA{R: 0xD1, G: 0xD5, B: 0xDB, A: 0xFF}
	ColorSpark         = color.RGBA{R: 0xFA, G: 0xCC, B: 0x15, A: 0xFF}
)

// Layout constants
const (
	ScreenWidth  = 1280
	ScreenHeight = 800

	SectionPadding = 40
	SectionGap     = 24

	PickerWidth  = 320
	PickerGap    = 64
	PickerLabelH = 36
	PickerBorder = 3
	FadeRows     = 1.5 // fade mask height in rows

	ButtonWidth  = 260
	ButtonHeight = 64

	FontSizeTitle   = 36
	FontSizeHeading = 24
	FontSizeBody    = 18
	FontSizeSmall   = 14
	FontSizeCaption = 12

	// PickerFontSize is the label size at scale 1; rows scale it by
	// wheel.Appearance.
	PickerFontSize = 22
)
