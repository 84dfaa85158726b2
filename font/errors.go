package font

import "errors"

// Sentinel errors for font package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrFontNotFound is returned when a system font cannot be located.
	ErrFontNotFound = errors.New("font: font not found")

	// ErrAtlasFull is returned when a glyph does not fit in an atlas
	// that has already reached its maximum size.
	ErrAtlasFull = errors.New("font: atlas is full")
)

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "font: invalid config." + e.Field + ": " + e.Reason
}
