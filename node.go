package russimp

import (
	"cogentcore.org/core/math32"

	"github.com/taigrr/russimp/sys"
)

// Node is one node of the scene hierarchy. Transformation is the node's
// transform relative to its parent; Meshes holds indices into the owning
// scene's mesh list. Parent is nil only on the root node.
type Node struct {
	Name           string
	Transformation math32.Matrix4
	Parent         *Node
	Children       []*Node
	Meshes         []uint32
	Metadata       *Metadata
}

// newNode copies a native node subtree, linking each child back to its
// freshly built parent rather than the native one.
func newNode(r *sys.AiNode, parent *Node) (*Node, error) {
	n := &Node{
		Name:           r.MName.String(),
		Transformation: r.MTransformation.Mat4(),
		Parent:         parent,
		Meshes:         CloneSlice(r.MMeshes, r.MNumMeshes),
	}
	if r.MMetaData != nil {
		md, err := newMetadata(r.MMetaData)
		if err != nil {
			return nil, err
		}
		n.Metadata = md
	}
	children := refSlice(r.MChildren, r.MNumChildren)
	if len(children) > 0 {
		n.Children = make([]*Node, 0, len(children))
		for _, c := range children {
			child, err := newNode(c, n)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		}
	}
	return n, nil
}

// FindNode returns the first node named name in the subtree rooted at n,
// searching depth first, or nil if the subtree has no such node.
func (n *Node) FindNode(name string) *Node {
	if n == nil {
		return nil
	}
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.FindNode(name); found != nil {
			return found
		}
	}
	return nil
}

// GlobalTransformation accumulates the transforms from the root down to n,
// giving the matrix that places n's meshes in scene space.
func (n *Node) GlobalTransformation() math32.Matrix4 {
	if n.Parent == nil {
		return n.Transformation
	}
	parent := n.Parent.GlobalTransformation()
	var world math32.Matrix4
	world.MulMatrices(&parent, &n.Transformation)
	return world
}

// Visit walks the subtree rooted at n in depth-first order, calling fn for
// every node. Returning false from fn stops the walk.
func (n *Node) Visit(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Visit(fn) {
			return false
		}
	}
	return true
}
