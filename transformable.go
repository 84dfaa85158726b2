package textmesh

import "math"

// Transformable holds a position, rotation, scale and origin and derives
// an affine transform from them. It is embedded by [Text]; the zero
// value is not ready for use, call [NewTransformable] or embed through
// NewText.
//
// The origin is the local point that position, rotation and scale are
// relative to. The transform is recomputed lazily after a change.
type Transformable struct {
	origin   Point
	position Point
	rotation float32 // degrees, in [0, 360)
	scale    Point

	transform      Matrix
	inverse        Matrix
	transformDirty bool
	inverseDirty   bool
}

// NewTransformable returns a Transformable at the origin with unit scale.
func NewTransformable() Transformable {
	return Transformable{
		scale:          Point{X: 1, Y: 1},
		transform:      Identity(),
		inverse:        Identity(),
		transformDirty: false,
		inverseDirty:   false,
	}
}

// SetPosition sets the position of the object.
func (t *Transformable) SetPosition(p Point) {
	t.position = p
	t.invalidate()
}

// Position returns the position of the object.
func (t *Transformable) Position() Point { return t.position }

// Move offsets the position by delta.
func (t *Transformable) Move(delta Point) {
	t.SetPosition(t.position.Add(delta))
}

// SetRotation sets the rotation in degrees. The stored angle is
// normalized to [0, 360).
func (t *Transformable) SetRotation(degrees float32) {
	r := float32(math.Mod(float64(degrees), 360))
	if r < 0 {
		r += 360
	}
	t.rotation = r
	t.invalidate()
}

// Rotation returns the rotation in degrees, in [0, 360).
func (t *Transformable) Rotation() float32 { return t.rotation }

// Rotate adds angle degrees to the current rotation.
func (t *Transformable) Rotate(degrees float32) {
	t.SetRotation(t.rotation + degrees)
}

// SetScale sets the scale factors.
func (t *Transformable) SetScale(s Point) {
	t.scale = s
	t.invalidate()
}

// ScaleFactors returns the current scale factors.
func (t *Transformable) ScaleFactors() Point { return t.scale }

// Scale multiplies the current scale factors by f.
func (t *Transformable) Scale(f Point) {
	t.SetScale(Point{X: t.scale.X * f.X, Y: t.scale.Y * f.Y})
}

// SetOrigin sets the local origin of the transform.
func (t *Transformable) SetOrigin(o Point) {
	t.origin = o
	t.invalidate()
}

// Origin returns the local origin.
func (t *Transformable) Origin() Point { return t.origin }

// Transform returns the combined transform of the object.
func (t *Transformable) Transform() Matrix {
	if t.transformDirty {
		rad := -float64(t.rotation) * math.Pi / 180
		cos := float32(math.Cos(rad))
		sin := float32(math.Sin(rad))
		sxc := t.scale.X * cos
		syc := t.scale.Y * cos
		sxs := t.scale.X * sin
		sys := t.scale.Y * sin
		tx := -t.origin.X*sxc - t.origin.Y*sys + t.position.X
		ty := t.origin.X*sxs - t.origin.Y*syc + t.position.Y

		t.transform = Matrix{
			A: sxc, B: sys, C: tx,
			D: -sxs, E: syc, F: ty,
		}
		t.transformDirty = false
	}
	return t.transform
}

// InverseTransform returns the inverse of [Transformable.Transform].
func (t *Transformable) InverseTransform() Matrix {
	if t.inverseDirty {
		t.inverse = t.Transform().Invert()
		t.inverseDirty = false
	}
	return t.inverse
}

func (t *Transformable) invalidate() {
	t.transformDirty = true
	t.inverseDirty = true
}
