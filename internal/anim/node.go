package anim

// Prop identifies an animatable property of a Target.
type Prop int

const (
	PropX Prop = iota
	PropY
	PropScale
	PropAlpha
)

func (p Prop) String() string {
	switch p {
	case PropX:
		return "x"
	case PropY:
		return "y"
	case PropScale:
		return "scale"
	case PropAlpha:
		return "alpha"
	}
	return "unknown"
}

// Props is a set of property values.
type Props map[Prop]float64

// Target is a render-target handle the Engine writes to. The engine never
// inspects what is behind it.
type Target interface {
	Prop(p Prop) float64
	SetProp(p Prop, v float64)
}

// Node is the Target implementation used by the UI: a translation, uniform
// scale and opacity applied when the owning element is drawn.
type Node struct {
	X, Y  float64
	Scale float64
	Alpha float64
}

// NewNode returns a node at rest: no offset, full scale, fully opaque.
func NewNode() *Node {
	return &Node{Scale: 1, Alpha: 1}
}

func (n *Node) Prop(p Prop) float64 {
	switch p {
	case PropX:
		return n.X
	case PropY:
		return n.Y
	case PropScale:
		return n.Scale
	case PropAlpha:
		return n.Alpha
	}
	return 0
}

func (n *Node) SetProp(p Prop, v float64) {
	switch p {
	case PropX:
		n.X = v
	case PropY:
		n.Y = v
	case PropScale:
		n.Scale = v
	case PropAlpha:
		n.Alpha = v
	}
}

// Reset puts the node back at rest.
func (n *Node) Reset() {
	*n = Node{Scale: 1, Alpha: 1}
}

// isNil reports whether t is absent, including a typed nil *Node.
func isNil(t Target) bool {
	if t == nil {
		return true
	}
	if n, ok := t.(*Node); ok && n == nil {
		return true
	}
	return false
}
