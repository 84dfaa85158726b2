package textmesh

// Option configures a Text during creation.
//
// Example:
//
//	txt := textmesh.NewText(fnt, "Hello", 24,
//	    textmesh.WithStyle(textmesh.Bold|textmesh.Underlined),
//	    textmesh.WithOutline(textmesh.Black, 2),
//	)
type Option func(*textOptions)

// textOptions holds optional configuration for Text creation.
type textOptions struct {
	style            Style
	fillColor        Color
	outlineColor     Color
	outlineThickness float32
	letterSpacing    float32
	lineSpacing      float32
	alignment        LineAlignment
	position         Point
	hasPosition      bool
}

// defaultOptions returns the default text options: regular white text,
// natural spacing, left aligned, no outline.
func defaultOptions() textOptions {
	return textOptions{
		style:         Regular,
		fillColor:     White,
		outlineColor:  Black,
		letterSpacing: 1,
		lineSpacing:   1,
		alignment:     AlignLeft,
	}
}

// WithStyle sets the initial style flags.
func WithStyle(s Style) Option {
	return func(o *textOptions) {
		o.style = s
	}
}

// WithFillColor sets the initial fill color.
func WithFillColor(c Color) Option {
	return func(o *textOptions) {
		o.fillColor = c
	}
}

// WithOutline sets the initial outline color and thickness.
func WithOutline(c Color, thickness float32) Option {
	return func(o *textOptions) {
		o.outlineColor = c
		o.outlineThickness = thickness
	}
}

// WithLetterSpacing sets the initial letter spacing factor.
func WithLetterSpacing(factor float32) Option {
	return func(o *textOptions) {
		o.letterSpacing = factor
	}
}

// WithLineSpacing sets the initial line spacing factor.
func WithLineSpacing(factor float32) Option {
	return func(o *textOptions) {
		o.lineSpacing = factor
	}
}

// WithAlignment sets the initial line alignment.
func WithAlignment(a LineAlignment) Option {
	return func(o *textOptions) {
		o.alignment = a
	}
}

// WithPosition sets the initial position of the Text.
func WithPosition(p Point) Option {
	return func(o *textOptions) {
		o.position = p
		o.hasPosition = true
	}
}
