// Package textmesh turns strings into textured triangle geometry for
// GPU or software rendering.
//
// # Overview
//
// A [Text] combines content, a [Font], a character size and style
// attributes. On demand it produces two triangle lists, the fill and
// an optional outline, together with the local bounding rectangle.
// Vertices sample the font's glyph atlas with pixel texture coordinates.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/textmesh"
//	    "github.com/gogpu/textmesh/font"
//	    "github.com/gogpu/textmesh/render"
//	)
//
//	fnt, _ := font.Default()
//	txt := textmesh.NewText(fnt, "Hello\nWorld", 32,
//	    textmesh.WithStyle(textmesh.Bold|textmesh.Underlined),
//	    textmesh.WithAlignment(textmesh.AlignCenter),
//	)
//	txt.SetPosition(textmesh.Pt(20, 20))
//
//	target := render.NewPixmapTarget(400, 200)
//	txt.Draw(target, textmesh.DefaultRenderStates())
//	_ = target.SavePNG("hello.png")
//
// # Caching
//
// Geometry is rebuilt lazily. Setters mark the Text dirty and the next
// query rebuilds it; color changes recolor the cached vertices in place.
// The cache is also invalidated when the atlas texture for the current
// character size has been reallocated, detected through [Texture.ID].
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - The first line's baseline sits at y = character size
//   - Rotation angles are in degrees, clockwise on screen
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to receive debug
// records about geometry rebuilds.
package textmesh
