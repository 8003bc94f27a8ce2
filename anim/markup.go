package anim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Node is one element of animation markup. In YAML every key other than
// "kind" and "children" is an attribute:
//
//	kind: set
//	shareInterpolator: true
//	duration: 400
//	children:
//	  - kind: translate
//	    toXDelta: 100%p
//	  - kind: alpha
//	    fromAlpha: 0
//	    toAlpha: 1
type Node struct {
	Kind     string
	Attrs    map[string]string
	Children []*Node
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Node) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var shape struct {
		Kind     string  `yaml:"kind"`
		Children []*Node `yaml:"children"`
	}
	if err := unmarshal(&shape); err != nil {
		return err
	}
	var raw map[string]interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	n.Kind = shape.Kind
	n.Children = shape.Children
	n.Attrs = make(map[string]string, len(raw))
	for k, v := range raw {
		if k == "kind" || k == "children" {
			continue
		}
		n.Attrs[k] = fmt.Sprint(v)
	}
	return nil
}

var leafKinds = map[string]func(r *attrReader) Animation{
	"alpha": func(r *attrReader) Animation {
		return NewAlpha(r.float("fromAlpha", 1), r.float("toAlpha", 1))
	},
	"translate": func(r *attrReader) Animation {
		return NewTranslate(
			r.dimension("fromXDelta", Abs(0)), r.dimension("toXDelta", Abs(0)),
			r.dimension("fromYDelta", Abs(0)), r.dimension("toYDelta", Abs(0)),
		)
	},
	"scale": func(r *attrReader) Animation {
		return NewScale(
			r.float("fromXScale", 1), r.float("toXScale", 1),
			r.float("fromYScale", 1), r.float("toYScale", 1),
			r.dimension("pivotX", Abs(0)), r.dimension("pivotY", Abs(0)),
		)
	},
	"rotate": func(r *attrReader) Animation {
		return NewRotate(
			r.float("fromDegrees", 0), r.float("toDegrees", 0),
			r.dimension("pivotX", Abs(0)), r.dimension("pivotY", Abs(0)),
		)
	},
}

// Inflate builds the animation described by n. Children of a set are added
// in document order.
func Inflate(n *Node) (Animation, error) {
	if n == nil {
		return nil, &AttrError{Kind: "node", Err: fmt.Errorf("%w: empty node", ErrUnknownKind)}
	}
	if n.Kind == "set" {
		return inflateSet(n)
	}

	build, ok := leafKinds[n.Kind]
	if !ok {
		return nil, &AttrError{Kind: n.Kind, Err: ErrUnknownKind}
	}
	if len(n.Children) > 0 {
		return nil, &AttrError{Kind: n.Kind, Attr: "children", Err: fmt.Errorf("%w: only sets have children", ErrBadValue)}
	}

	r := newAttrReader(n.Kind, n.Attrs)
	cfg := parseLeafConfig(r)
	a := build(r)
	if err := r.done(); err != nil {
		return nil, err
	}
	cfg.apply(a)
	return a, nil
}

func inflateSet(n *Node) (*Set, error) {
	cfg, err := ParseSetConfig(n.Attrs)
	if err != nil {
		return nil, err
	}
	children := make([]Animation, 0, len(n.Children))
	for _, c := range n.Children {
		a, err := Inflate(c)
		if err != nil {
			return nil, err
		}
		children = append(children, a)
	}

	s := cfg.NewSet()
	for _, a := range children {
		s.AddAnimation(a)
	}
	return s, nil
}

// Load decodes YAML markup and inflates it.
func Load(data []byte) (Animation, error) {
	var n Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("anim: decode markup: %w", err)
	}
	return Inflate(&n)
}

// LoadFile reads and inflates a YAML markup file.
func LoadFile(path string) (Animation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("anim: read markup: %w", err)
	}
	return Load(data)
}
