package textmesh

// Vertex is a single textured, colored vertex. Texture coordinates are
// in atlas pixels, not normalized.
type Vertex struct {
	Position  Point
	Color     Color
	TexCoords Point
}

// verticesPerQuad is the number of vertices emitted per quad: two
// triangles, no shared indexing.
const verticesPerQuad = 6

// recolor overwrites the color of every vertex in place.
func recolor(vertices []Vertex, c Color) {
	for i := range vertices {
		vertices[i].Color = c
	}
}
