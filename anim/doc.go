// Package anim provides time-driven 2D animations that can be grouped and
// nested.
//
// # Core Components
//
//   - [Animation]: the contract shared by single animations and groups. An
//     animation maps an elapsed time to a [Transform] and reports whether it
//     is active at that time.
//
//   - [Alpha], [Translate], [Scale], [Rotate]: leaf animations built on
//     [Base], which owns start offset, duration, fill and repeat handling.
//
//   - [Set]: a composite animation. Its children are evaluated at the same
//     elapsed time and their transforms are concatenated in the order the
//     children were added. Duration, repeat mode and fill settings given to
//     the set override the children's own values.
//
//   - [Node], [Inflate], [Load]: declarative construction from YAML markup.
//
// # Basic Usage
//
//	set := anim.NewSet(false)
//	set.AddAnimation(anim.NewTranslate(anim.Abs(0), anim.ParentFraction(1), anim.Abs(0), anim.Abs(0)))
//	set.AddAnimation(anim.NewAlpha(0, 1))
//	set.SetDuration(400 * time.Millisecond)
//	set.Initialize(10, 1, 500, 1)
//
//	var t anim.Transform
//	if set.Transformation(elapsed, &t) {
//	    x, _ := t.Matrix.Apply(0, 0)
//	    _ = x
//	}
//
// Everything in this package is a pure function of its inputs; no clock is
// read. Animations are not safe for concurrent mutation and evaluation.
package anim
