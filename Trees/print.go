package Trees

import (
	"fmt"
	"golang.org/x/exp/constraints"
	"strings"
)

// String renders the tree as a multi line diagram for debugging, the root
// first and children indented two spaces per level, left above right.
// Interior nodes are marked "+" and leaves "-"; the absent child of an
// interior node shows as a bare "-" so left and right stay tellable apart.
// An empty set renders as a single "-" line. This is only a diagram, not a
// serialization format.
// Time: O(n)
func (u *base[T, S]) String() string {
	var sb strings.Builder
	toString[T, S](&sb, u.root, 0)
	return sb.String()
}

// toString writes the diagram of the subtree rooting at n preorder.
// Recursive.
func toString[T any, S constraints.Unsigned](sb *strings.Builder, n *Node[T, S], depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
	if n == nil {
		sb.WriteString("-\n")
		return
	}
	if n.l == nil && n.r == nil {
		sb.WriteString("- ")
		fmt.Fprintln(sb, n.v)
		return
	}
	sb.WriteString("+ ")
	fmt.Fprintln(sb, n.v)
	toString(sb, n.l, depth+1)
	toString(sb, n.r, depth+1)
}
