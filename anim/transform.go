package anim

// Transform is the output of an animation at a point in time: a matrix and an
// alpha multiplier in [0, 1].
//
// The zero value is not the identity; call Clear or use IdentityTransform.
type Transform struct {
	Matrix Matrix
	Alpha  float64
}

// IdentityTransform returns a transform that changes nothing.
func IdentityTransform() Transform {
	return Transform{Matrix: IdentityMatrix(), Alpha: 1}
}

// Clear resets t to the identity.
func (t *Transform) Clear() {
	t.Matrix = IdentityMatrix()
	t.Alpha = 1
}

// Compose folds o into t. Alphas multiply and o's matrix is applied after
// t's, so composing A then B maps a point through A first.
func (t *Transform) Compose(o *Transform) {
	t.Alpha *= o.Alpha
	t.Matrix = o.Matrix.Mul(t.Matrix)
}

// IsIdentity reports whether t leaves both geometry and alpha untouched.
func (t *Transform) IsIdentity() bool {
	return t.Alpha == 1 && t.Matrix.IsIdentity()
}
