package font

import xfont "golang.org/x/image/font"

// Hinting specifies font hinting mode.
type Hinting int

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota
	// HintingVertical applies vertical hinting only.
	HintingVertical
	// HintingFull applies full hinting.
	HintingFull
)

// String returns the string representation of the hinting mode.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return "Unknown"
	}
}

func (h Hinting) ximage() xfont.Hinting {
	switch h {
	case HintingVertical:
		return xfont.HintingVertical
	case HintingFull:
		return xfont.HintingFull
	default:
		return xfont.HintingNone
	}
}

// KerningMode selects where pair kerning comes from.
type KerningMode int

const (
	// KerningNone disables kerning.
	KerningNone KerningMode = iota
	// KerningTable reads the legacy 'kern' table only.
	KerningTable
	// KerningGPOS shapes each pair with HarfBuzz, honoring GPOS pair
	// adjustments, and falls back to the 'kern' table when the pair
	// cannot be shaped as two glyphs.
	KerningGPOS
)

// String returns the string representation of the kerning mode.
func (k KerningMode) String() string {
	switch k {
	case KerningNone:
		return "None"
	case KerningTable:
		return "Table"
	case KerningGPOS:
		return "GPOS"
	default:
		return "Unknown"
	}
}

// Config holds font loading configuration.
type Config struct {
	// Hinting is applied when rasterizing glyphs and computing advances.
	// Default: HintingFull
	Hinting Hinting

	// Kerning selects the kerning source.
	// Default: KerningGPOS
	Kerning KerningMode

	// DPI converts character sizes to pixels. At 72 a character size
	// is a pixel size.
	// Default: 72
	DPI float64

	// InitialAtlasSize is the width and height of a new glyph atlas.
	// Must be a power of 2. Default: 128
	InitialAtlasSize int

	// MaxAtlasSize caps atlas growth. Must be a power of 2 and at
	// least InitialAtlasSize. Default: 4096
	MaxAtlasSize int
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Hinting:          HintingFull,
		Kerning:          KerningGPOS,
		DPI:              72,
		InitialAtlasSize: 128,
		MaxAtlasSize:     4096,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Hinting < HintingNone || c.Hinting > HintingFull {
		return &ConfigError{Field: "Hinting", Reason: "unknown mode"}
	}
	if c.Kerning < KerningNone || c.Kerning > KerningGPOS {
		return &ConfigError{Field: "Kerning", Reason: "unknown mode"}
	}
	if c.DPI <= 0 {
		return &ConfigError{Field: "DPI", Reason: "must be positive"}
	}
	if c.InitialAtlasSize < 16 {
		return &ConfigError{Field: "InitialAtlasSize", Reason: "must be at least 16"}
	}
	if c.InitialAtlasSize&(c.InitialAtlasSize-1) != 0 {
		return &ConfigError{Field: "InitialAtlasSize", Reason: "must be power of 2"}
	}
	if c.MaxAtlasSize&(c.MaxAtlasSize-1) != 0 {
		return &ConfigError{Field: "MaxAtlasSize", Reason: "must be power of 2"}
	}
	if c.MaxAtlasSize < c.InitialAtlasSize {
		return &ConfigError{Field: "MaxAtlasSize", Reason: "must be at least InitialAtlasSize"}
	}
	if c.MaxAtlasSize > 16384 {
		return &ConfigError{Field: "MaxAtlasSize", Reason: "must be at most 16384"}
	}
	return nil
}

// Option configures font loading.
type Option func(*Config)

// WithHinting sets the hinting mode.
func WithHinting(h Hinting) Option {
	return func(c *Config) {
		c.Hinting = h
	}
}

// WithKerning sets the kerning source.
func WithKerning(k KerningMode) Option {
	return func(c *Config) {
		c.Kerning = k
	}
}

// WithDPI sets the resolution used to convert character sizes to pixels.
func WithDPI(dpi float64) Option {
	return func(c *Config) {
		c.DPI = dpi
	}
}

// WithInitialAtlasSize sets the size of newly created atlases.
func WithInitialAtlasSize(size int) Option {
	return func(c *Config) {
		c.InitialAtlasSize = size
	}
}

// WithMaxAtlasSize sets the size atlases may grow to.
func WithMaxAtlasSize(size int) Option {
	return func(c *Config) {
		c.MaxAtlasSize = size
	}
}
