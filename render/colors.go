package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for the board and chrome
var (
	RgbBackground  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbCardBack    = tcell.NewRGBColor(100, 150, 255) // Face-down card
	RgbCardFace    = tcell.NewRGBColor(255, 215, 0)   // Revealed note name
	RgbCardMatched = tcell.NewRGBColor(0, 130, 0)     // Resolved pair, dimmed
	RgbCardVoided  = tcell.NewRGBColor(255, 0, 0)     // Flip limit offender
	RgbCursor      = tcell.NewRGBColor(255, 165, 0)   // Orange cursor cell

	RgbPips     = tcell.NewRGBColor(180, 180, 180) // Flip-count pips
	RgbPipsWarn = tcell.NewRGBColor(255, 80, 80)   // One flip short of the limit

	// Status bar
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text on badges
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbBestScore  = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbMuted      = tcell.NewRGBColor(255, 80, 80)   // Mute warning

	// State badge backgrounds
	RgbBadgePlay  = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbBadgePause = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbBadgeOver  = tcell.NewRGBColor(200, 50, 50)   // Red
	RgbBadgeDone  = tcell.NewRGBColor(144, 238, 144) // Light grass green

	// Overlays
	RgbOverlayTitle = tcell.NewRGBColor(255, 255, 255) // White
	RgbOverlayText  = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	RgbDebugText = tcell.NewRGBColor(0, 200, 200) // Vibrant cyan counters
)
