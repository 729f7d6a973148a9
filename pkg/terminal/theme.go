package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/tinymachines/wopr/pkg/protocol"
)

// Phosphor CRT palette. Everything on black, green dominant.
var (
	ColorWoprText   = tcell.NewRGBColor(0, 255, 135)   // Mint green - machine output
	ColorUserText   = tcell.NewRGBColor(50, 255, 50)   // Bright green - echoed input
	ColorSystemText = tcell.NewRGBColor(255, 255, 128) // Pale yellow - banners, status
	ColorErrorText  = tcell.NewRGBColor(255, 99, 71)   // Tomato - terminated links
	ColorPromptText = tcell.NewRGBColor(0, 255, 135)   // Matches machine output
	ColorBackground = tcell.ColorBlack
)

// Style presets combining colors with the shared background
var (
	StyleDefault = tcell.StyleDefault.Background(ColorBackground)

	StyleWoprText   = StyleDefault.Foreground(ColorWoprText)
	StyleUserText   = StyleDefault.Foreground(ColorUserText).Bold(true)
	StyleSystemText = StyleDefault.Foreground(ColorSystemText)
	StyleErrorText  = StyleDefault.Foreground(ColorErrorText).Bold(true)
	StylePrompt     = StyleDefault.Foreground(ColorPromptText).Bold(true)
	StyleCursor     = StyleDefault.Foreground(ColorBackground).Background(ColorWoprText)
)

// StyleFor maps a message type to its display style.
func StyleFor(messageType string) tcell.Style {
	switch messageType {
	case protocol.TypeWopr:
		return StyleWoprText
	case protocol.TypeUser:
		return StyleUserText
	case protocol.TypeSystem:
		return StyleSystemText
	case protocol.TypeError:
		return StyleErrorText
	default:
		return StyleWoprText
	}
}
