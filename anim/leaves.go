package anim

import "time"

// Alpha fades between two alpha values.
type Alpha struct {
	Base
	From, To float64
}

// NewAlpha returns an animation from alpha from to alpha to.
func NewAlpha(from, to float64) *Alpha {
	return &Alpha{Base: newBase(), From: from, To: to}
}

func (a *Alpha) Transformation(elapsed time.Duration, out *Transform) bool {
	t, ok := a.Progress(elapsed)
	if !ok {
		return false
	}
	out.Alpha = lerp(a.From, a.To, t)
	return true
}

func (a *Alpha) HasAlpha() bool                       { return true }
func (a *Alpha) WillChangeTransformationMatrix() bool { return false }

// Translate moves the object between two offsets.
type Translate struct {
	Base
	FromX, ToX, FromY, ToY Dimension

	fromX, toX, fromY, toY float64
}

// NewTranslate returns a translation. Absolute dimensions take effect
// immediately; relative ones need Initialize.
func NewTranslate(fromX, toX, fromY, toY Dimension) *Translate {
	a := &Translate{Base: newBase(), FromX: fromX, ToX: toX, FromY: fromY, ToY: toY}
	a.Initialize(0, 0, 0, 0)
	return a
}

func (a *Translate) Initialize(width, height, parentWidth, parentHeight int) {
	a.Base.Initialize(width, height, parentWidth, parentHeight)
	a.fromX = a.FromX.Resolve(width, parentWidth)
	a.toX = a.ToX.Resolve(width, parentWidth)
	a.fromY = a.FromY.Resolve(height, parentHeight)
	a.toY = a.ToY.Resolve(height, parentHeight)
}

func (a *Translate) Transformation(elapsed time.Duration, out *Transform) bool {
	t, ok := a.Progress(elapsed)
	if !ok {
		return false
	}
	out.Matrix = TranslateMatrix(lerp(a.fromX, a.toX, t), lerp(a.fromY, a.toY, t))
	return true
}

// Scale scales the object about a pivot.
type Scale struct {
	Base
	FromX, ToX, FromY, ToY float64
	PivotX, PivotY         Dimension

	pivotX, pivotY float64
}

// NewScale returns a scale animation about the given pivot.
func NewScale(fromX, toX, fromY, toY float64, pivotX, pivotY Dimension) *Scale {
	a := &Scale{Base: newBase(), FromX: fromX, ToX: toX, FromY: fromY, ToY: toY, PivotX: pivotX, PivotY: pivotY}
	a.Initialize(0, 0, 0, 0)
	return a
}

func (a *Scale) Initialize(width, height, parentWidth, parentHeight int) {
	a.Base.Initialize(width, height, parentWidth, parentHeight)
	a.pivotX = a.PivotX.Resolve(width, parentWidth)
	a.pivotY = a.PivotY.Resolve(height, parentHeight)
}

func (a *Scale) Transformation(elapsed time.Duration, out *Transform) bool {
	t, ok := a.Progress(elapsed)
	if !ok {
		return false
	}
	out.Matrix = ScaleMatrix(lerp(a.FromX, a.ToX, t), lerp(a.FromY, a.ToY, t), a.pivotX, a.pivotY)
	return true
}

// Rotate turns the object about a pivot. Angles are in degrees.
type Rotate struct {
	Base
	From, To       float64
	PivotX, PivotY Dimension

	pivotX, pivotY float64
}

// NewRotate returns a rotation about the given pivot.
func NewRotate(from, to float64, pivotX, pivotY Dimension) *Rotate {
	a := &Rotate{Base: newBase(), From: from, To: to, PivotX: pivotX, PivotY: pivotY}
	a.Initialize(0, 0, 0, 0)
	return a
}

func (a *Rotate) Initialize(width, height, parentWidth, parentHeight int) {
	a.Base.Initialize(width, height, parentWidth, parentHeight)
	a.pivotX = a.PivotX.Resolve(width, parentWidth)
	a.pivotY = a.PivotY.Resolve(height, parentHeight)
}

func (a *Rotate) Transformation(elapsed time.Duration, out *Transform) bool {
	t, ok := a.Progress(elapsed)
	if !ok {
		return false
	}
	out.Matrix = RotateMatrix(lerp(a.From, a.To, t), a.pivotX, a.pivotY)
	return true
}
