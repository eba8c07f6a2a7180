package config

import "github.com/gookit/color"

// Color constants for logging prefixes
const (
	ColorGreen = color.FgGreen
	ColorCyan  = color.FgCyan
)
