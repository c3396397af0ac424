package mover

import (
	"errors"
	"fmt"

	"github.com/iburimskiy/quad-path-mover/internal/render"
)

var (
	ErrProgressMismatch = errors.New("progress does not match chain")
	ErrChainBusy        = errors.New("chain is animating")
)

// Chain is a fixed row of nodes with a cursor and a traversal direction.
// Only the node under the cursor animates; when it completes a unit the
// cursor moves on, turning around at either end.
type Chain struct {
	nodes     []Node
	current   int
	direction int
}

func NewChain(count, stepsPerUnit int) *Chain {
	if count < 1 {
		count = 1
	}
	c := &Chain{
		nodes:     make([]Node, count),
		direction: 1,
	}
	for i := range c.nodes {
		c.nodes[i] = newNode(i, count, stepsPerUnit)
	}
	return c
}

func (c *Chain) Len() int         { return len(c.nodes) }
func (c *Chain) Current() int     { return c.current }
func (c *Chain) Direction() int   { return c.direction }
func (c *Chain) Node(i int) *Node { return &c.nodes[i] }

// Idle reports whether the node under the cursor is at rest.
func (c *Chain) Idle() bool { return c.nodes[c.current].state.Idle() }

// StartUpdating arms the current node. False while it is already moving.
func (c *Chain) StartUpdating() bool {
	return c.nodes[c.current].StartUpdating()
}

// Update advances the current node by one step. On the step that
// completes the node it moves the cursor and reports true.
func (c *Chain) Update() bool {
	if !c.nodes[c.current].Update() {
		return false
	}
	next, end := c.nodes[c.current].Next(c.direction)
	if end {
		c.direction = -c.direction
	}
	c.current = next
	return true
}

// Draw paints the current node and every node before it.
func (c *Chain) Draw(s render.Surface, l Layout, st Style) {
	for i := c.current; i >= 0; i-- {
		c.nodes[i].Draw(s, l, st)
	}
}

// Progress is the committed position of a chain at rest.
type Progress struct {
	Current   int       `yaml:"current"`
	Direction int       `yaml:"direction"`
	Committed []float64 `yaml:"committed"`
}

// Snapshot captures the committed scales, cursor and direction. An
// in-flight node is recorded at its committed value.
func (c *Chain) Snapshot() Progress {
	p := Progress{
		Current:   c.current,
		Direction: c.direction,
		Committed: make([]float64, len(c.nodes)),
	}
	for i := range c.nodes {
		p.Committed[i] = c.nodes[i].state.PrevScale()
	}
	return p
}

// Restore applies p to an idle chain of the same length.
func (c *Chain) Restore(p Progress) error {
	if !c.Idle() {
		return ErrChainBusy
	}
	if len(p.Committed) != len(c.nodes) {
		return fmt.Errorf("%w: %d nodes saved, chain has %d", ErrProgressMismatch, len(p.Committed), len(c.nodes))
	}
	if p.Current < 0 || p.Current >= len(c.nodes) {
		return fmt.Errorf("%w: cursor %d out of range", ErrProgressMismatch, p.Current)
	}
	if p.Direction != 1 && p.Direction != -1 {
		return fmt.Errorf("%w: direction %d", ErrProgressMismatch, p.Direction)
	}
	for i, v := range p.Committed {
		if v != 0 && v != 1 {
			return fmt.Errorf("%w: node %d committed at %v", ErrProgressMismatch, i, v)
		}
		if want := settledScale(i, p.Current, p.Direction); v != want {
			return fmt.Errorf("%w: node %d committed at %v, want %v for cursor %d dir %+d",
				ErrProgressMismatch, i, v, want, p.Current, p.Direction)
		}
	}

	for i, v := range p.Committed {
		c.nodes[i].state.commit(v)
	}
	c.current = p.Current
	c.direction = p.Direction
	return nil
}

// settledScale is the committed scale of node i in a resting chain. Going
// forward the nodes before the cursor are grown; going backward the cursor
// node is grown as well.
func settledScale(i, current, direction int) float64 {
	if i < current || (direction < 0 && i == current) {
		return 1
	}
	return 0
}
