package textmesh

// RenderStates carries the state used to draw a vertex list.
type RenderStates struct {
	// Transform maps local coordinates to the target's coordinates.
	Transform Matrix

	// Texture is the atlas sampled with each vertex's TexCoords.
	// Nil means untextured.
	Texture Texture
}

// DefaultRenderStates returns states with an identity transform and no
// texture.
func DefaultRenderStates() RenderStates {
	return RenderStates{Transform: Identity()}
}

// RenderTarget receives triangle lists. Every three consecutive
// vertices form one triangle.
type RenderTarget interface {
	DrawVertices(vertices []Vertex, states RenderStates)
}

// Drawable is an object that can draw itself to a RenderTarget.
type Drawable interface {
	Draw(target RenderTarget, states RenderStates)
}
