package device

import (
	"drag/events"
	"drag/transform"
	"sort"
	"strings"
)

// Node is an in-memory Element. It computes transform styles the way a
// browser does: any transform list is reported as matrix() or matrix3d(),
// and an invalid one as "none".
type Node struct {
	*events.Target
	offset  Point
	styles  map[string]string
	classes map[string]bool
}

func NewNode(parent *events.Target) *Node {
	return &Node{
		Target:  events.NewTarget(parent),
		styles:  map[string]string{},
		classes: map[string]bool{},
	}
}

func (n *Node) Offset() Point {
	return n.offset
}

func (n *Node) SetOffset(p Point) {
	n.offset = p
}

func (n *Node) Style(property string) string {
	return n.styles[property]
}

func (n *Node) SetStyle(property, value string) {
	n.styles[property] = value
}

func (n *Node) ComputedStyle(property string) string {
	value := n.styles[property]
	if !transform.IsProperty(property) {
		return value
	}
	if transform.IsNone(value) {
		return "none"
	}
	m, err := transform.Parse(value)
	if err != nil {
		return "none"
	}
	return m.String()
}

// Translation is the rendered translation of the standard transform property.
func (n *Node) Translation() Point {
	m, err := transform.Parse(n.styles["transform"])
	if err != nil {
		return Point{}
	}
	x, y := m.Translation()
	return Point{X: x, Y: y}
}

// Position is where the node is drawn: its offset moved by its translation.
func (n *Node) Position() Point {
	return n.offset.Add(n.Translation())
}

func (n *Node) AddClass(name string) {
	n.classes[name] = true
}

func (n *Node) RemoveClass(name string) {
	delete(n.classes, name)
}

func (n *Node) HasClass(name string) bool {
	return n.classes[name]
}

func (n *Node) ClassName() string {
	names := make([]string, 0, len(n.classes))
	for name := range n.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}
