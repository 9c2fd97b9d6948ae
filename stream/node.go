package stream

import (
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/tweentx/tween"
)

// Node is an in-memory scene object that tweens can animate.
type Node struct {
	mu       sync.RWMutex
	position tween.Vector3
	scale    tween.Vector3
	color    colorful.Color
	detached bool
}

// NewNode creates a Node at the origin with unit scale.
func NewNode() *Node {
	n := new(Node)
	n.scale = tween.One
	n.color = colorful.Color{R: 1, G: 1, B: 1}
	return n
}

func (n *Node) Position() tween.Vector3 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.position
}

func (n *Node) SetPosition(v tween.Vector3) {
	n.mu.Lock()
	n.position = v
	n.mu.Unlock()
}

func (n *Node) Scale() tween.Vector3 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.scale
}

func (n *Node) SetScale(v tween.Vector3) {
	n.mu.Lock()
	n.scale = v
	n.mu.Unlock()
}

func (n *Node) Color() colorful.Color {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.color
}

func (n *Node) SetColor(c colorful.Color) {
	n.mu.Lock()
	n.color = c
	n.mu.Unlock()
}

// Detach stops tweens applying values until Attach is called.
func (n *Node) Detach() {
	n.mu.Lock()
	n.detached = true
	n.mu.Unlock()
}

func (n *Node) Attach() {
	n.mu.Lock()
	n.detached = false
	n.mu.Unlock()
}

func (n *Node) Ready() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return !n.detached
}

// Snapshot captures the node's current state.
func (n *Node) Snapshot() Frame {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return Frame{Position: n.position, Scale: n.scale, Color: n.color}
}
