package mover

import "github.com/iburimskiy/quad-path-mover/internal/render"

const noNeighbor = -1

// Node is one link of the chain. Neighbours are indices into the chain's
// node slice; noNeighbor marks a chain end.
type Node struct {
	index int
	prev  int
	next  int
	state *State
}

func newNode(index, count, stepsPerUnit int) Node {
	n := Node{index: index, prev: noNeighbor, next: noNeighbor, state: NewState(stepsPerUnit)}
	if index > 0 {
		n.prev = index - 1
	}
	if index < count-1 {
		n.next = index + 1
	}
	return n
}

func (n *Node) Index() int          { return n.index }
func (n *Node) State() *State       { return n.state }
func (n *Node) Update() bool        { return n.state.Update() }
func (n *Node) StartUpdating() bool { return n.state.StartUpdating() }

// Next returns the neighbour index in direction dir: the next node for
// dir == 1, the previous node otherwise. At a chain end it returns the
// node's own index and boundary == true.
func (n *Node) Next(dir int) (index int, boundary bool) {
	neighbor := n.prev
	if dir == 1 {
		neighbor = n.next
	}
	if neighbor == noNeighbor {
		return n.index, true
	}
	return neighbor, false
}

// Draw paints the node's bent path and its moving dot. Odd nodes are
// mirrored vertically so consecutive paths join into a zigzag.
func (n *Node) Draw(s render.Surface, l Layout, st Style) {
	gap := l.Gap()
	sc1, sc2 := Segments(n.state.Scale())
	ox, oy := l.Origin(n.index)
	factor := float64(1 - 2*(n.index%2))

	s.Save()
	defer s.Restore()
	s.Translate(ox, oy)
	s.Scale(1, factor)

	if sc1 != 0 {
		s.MoveTo(-gap/2, gap/2)
		s.LineTo(-gap/2+gap/2*sc1, gap/2-gap*sc1)
		s.Stroke(st.Path, l.LineWidth())
	}
	if sc2 != 0 {
		s.MoveTo(0, -gap/2)
		s.LineTo(gap/2*sc2, -gap/2)
		s.Stroke(st.Path, l.LineWidth())
	}

	x, y := Tip(gap, sc1, sc2)
	s.FillCircle(x, y, l.DotRadius(), st.Dot)
}
