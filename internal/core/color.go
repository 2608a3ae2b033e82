package core

import "fmt"

// Color is a 24-bit RGB color for a screen cell.
// The zero value means "terminal default" rather than black.
type Color struct {
	R, G, B uint8
	set     bool
}

// ColorDefault leaves the terminal's own color in place.
var ColorDefault = Color{}

// RGB builds a concrete color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return !c.set
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
