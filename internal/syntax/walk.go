package syntax

import "iter"

// Walk returns a depth-first, source-ordered sequence of every non-nil node
// under root (root included) paired with its ancestors, outermost first.
// The ancestors slice is reused between steps; copy it to keep it.
func Walk(root *Node) iter.Seq2[*Node, []*Node] {
	return func(yield func(*Node, []*Node) bool) {
		if root == nil {
			return
		}

		ancestors := make([]*Node, 0, 16)
		walk(root, &ancestors, yield)
	}
}

func walk(n *Node, ancestors *[]*Node, yield func(*Node, []*Node) bool) bool {
	if !yield(n, *ancestors) {
		return false
	}

	*ancestors = append(*ancestors, n)
	defer func() { *ancestors = (*ancestors)[:len(*ancestors)-1] }()

	for _, child := range n.Children {
		if child == nil {
			continue
		}

		if !walk(child, ancestors, yield) {
			return false
		}
	}

	return true
}

// Parent returns the last element of ancestors, or nil.
func Parent(ancestors []*Node) *Node {
	if len(ancestors) == 0 {
		return nil
	}

	return ancestors[len(ancestors)-1]
}
