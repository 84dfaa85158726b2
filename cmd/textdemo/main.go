// Command textdemo lays out a string with textmesh and renders it to a PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/textmesh"
	"github.com/gogpu/textmesh/font"
	"github.com/gogpu/textmesh/render"
)

func main() {
	var (
		width     = flag.Int("width", 800, "image width")
		height    = flag.Int("height", 200, "image height")
		output    = flag.String("output", "text.png", "output file")
		atlasOut  = flag.String("atlas", "", "also save the glyph atlas to this file")
		text      = flag.String("text", "Hello, textmesh!", "text to draw")
		file      = flag.String("file", "", "read the text from this file instead of -text")
		encoding  = flag.String("encoding", "utf-8", "encoding of -file (latin1, windows-1252, utf-16, ...)")
		fontPath  = flag.String("font", "", "TrueType/OpenType file to load")
		system    = flag.String("system-font", "", "installed font to look up by name")
		size      = flag.Uint("size", 48, "character size in pixels")
		styles    = flag.String("style", "", "comma separated: bold,italic,underline,strike")
		align     = flag.String("align", "left", "line alignment: left, center, right")
		fill      = flag.String("fill", "#ffffff", "fill color")
		outline   = flag.String("outline", "#000000", "outline color")
		thickness = flag.Float64("thickness", 0, "outline thickness in pixels")
		bg        = flag.String("bg", "#203040", "background color")
		rotate    = flag.Float64("rotate", 0, "rotation in degrees")
		verbose   = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	if *verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		textmesh.SetLogger(logger)
		font.SetLogger(logger)
		render.SetLogger(logger)
	}

	content := *text
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("Failed to read text: %v", err)
		}
		content, err = textmesh.DecodeString(data, *encoding)
		if err != nil {
			log.Fatalf("Failed to decode text: %v", err)
		}
	}

	fnt, err := loadFont(*fontPath, *system)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	style, err := parseStyle(*styles)
	if err != nil {
		log.Fatal(err)
	}
	alignment, err := parseAlign(*align)
	if err != nil {
		log.Fatal(err)
	}

	txt := textmesh.NewText(fnt, content, *size,
		textmesh.WithStyle(style),
		textmesh.WithAlignment(alignment),
		textmesh.WithFillColor(textmesh.Hex(*fill)),
		textmesh.WithOutline(textmesh.Hex(*outline), float32(*thickness)),
	)

	// Center the text on the canvas.
	bounds := txt.LocalBounds()
	txt.SetOrigin(bounds.Center())
	txt.SetPosition(textmesh.Pt(float32(*width)/2, float32(*height)/2))
	txt.SetRotation(float32(*rotate))

	target := render.NewPixmapTarget(*width, *height)
	target.Clear(textmesh.Hex(*bg))
	txt.Draw(target, textmesh.DefaultRenderStates())

	if err := target.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Text saved to %s (%dx%d, %d vertices)\n", *output, *width, *height, len(txt.Vertices()))

	if *atlasOut != "" {
		if err := saveAtlas(fnt.Atlas(*size), *atlasOut); err != nil {
			log.Fatalf("Failed to save atlas: %v", err)
		}
		log.Printf("Atlas saved to %s\n", *atlasOut)
	}
}

func loadFont(path, system string) (*font.Font, error) {
	switch {
	case path != "":
		return font.Load(path)
	case system != "":
		return font.FindSystem(system)
	default:
		return font.Default()
	}
}

func parseStyle(s string) (textmesh.Style, error) {
	style := textmesh.Regular
	for _, name := range strings.Split(s, ",") {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "":
		case "bold":
			style |= textmesh.Bold
		case "italic":
			style |= textmesh.Italic
		case "underline", "underlined":
			style |= textmesh.Underlined
		case "strike", "strikethrough":
			style |= textmesh.StrikeThrough
		default:
			return 0, fmt.Errorf("unknown style %q", name)
		}
	}
	return style, nil
}

func parseAlign(s string) (textmesh.LineAlignment, error) {
	switch strings.ToLower(s) {
	case "left":
		return textmesh.AlignLeft, nil
	case "center":
		return textmesh.AlignCenter, nil
	case "right":
		return textmesh.AlignRight, nil
	}
	return 0, fmt.Errorf("unknown alignment %q", s)
}

func saveAtlas(a *font.Atlas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, a.Image()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
