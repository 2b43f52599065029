package Trees

import (
	"cmp"
	"fmt"
	"golang.org/x/exp/constraints"
)

// A Node in a tree backed set. An empty subtree is a nil *Node. Fields are
// unexported so reads from outside the package, such as by renderers, go
// through the accessors, which can't break the search order or the cached
// sizes.
// The zero value is meaningless.
type Node[T any, S constraints.Unsigned] struct {
	v    T
	l, r *Node[T, S]
	sz   S
}

// Key stored at u.
func (u *Node[T, S]) Key() T {
	return u.v
}

// Left child of u; nil when absent.
func (u *Node[T, S]) Left() *Node[T, S] {
	return u.l
}

// Right child of u; nil when absent.
func (u *Node[T, S]) Right() *Node[T, S] {
	return u.r
}

// Size of the subtree rooting at u, counting u itself. It accepts nil
// receivers, an absent subtree has size 0, so callers never special case
// empty children when reading sizes.
func (u *Node[T, S]) Size() S {
	if u == nil {
		return 0
	}
	return u.sz
}

// rotateLeft performs a left rotation on the slot n. n is passed by reference
// in order to modify its content. The sizes of the two nodes whose children
// changed are recomputed before returning.
// Time: O(1); Space: O(1)
func rotateLeft[T any, S constraints.Unsigned](n **Node[T, S]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	rc.sz = r.sz
	r.sz = r.l.Size() + r.r.Size() + 1
	*n = rc
}

// rotateRight performs a right rotation on the slot n. n is passed by
// reference in order to modify its content.
// Time: O(1); Space: O(1)
func rotateRight[T any, S constraints.Unsigned](n **Node[T, S]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	lc.sz = r.sz
	r.sz = r.l.Size() + r.r.Size() + 1
	*n = lc
}

// build a subtree from the slice s recursively, midpoint as root, so the
// result is as balanced as a tree over s gets. s must be sorted ascending
// and duplicate free.
// Time: O(len(s))
func build[T any, S constraints.Unsigned](s []T) *Node[T, S] {
	if len(s) == 0 {
		return nil
	}
	mid := len(s) >> 1
	return &Node[T, S]{s[mid], build[T, S](s[0:mid]), build[T, S](s[mid+1:]), S(len(s))}
}

// flatten appends the keys under u to s in ascending order and returns the
// extended slice. Recursive.
func (u *Node[T, S]) flatten(s []T) []T {
	if u != nil {
		s = u.l.flatten(s)
		s = append(s, u.v)
		s = u.r.flatten(s)
	}
	return s
}

// clone the whole subtree rooting at u. Recursive.
// Time: O(Size())
func (u *Node[T, S]) clone() *Node[T, S] {
	if u == nil {
		return nil
	}
	return &Node[T, S]{u.v, u.l.clone(), u.r.clone(), u.sz}
}

// height of the subtree rooting at u, in edges. An empty subtree has height
// -1 and a leaf has height 0. Recursive.
// Time: O(Size())
func (u *Node[T, S]) height() int {
	if u == nil {
		return -1
	}
	return 1 + max(u.l.height(), u.r.height())
}

// inOrder returns a closure iterator giving the keys under u in ascending
// order. It keeps an explicit stack of the path down to the current node, so
// unlike threaded traversals the tree itself is never written to.
// Time: amortized O(1) per call to the returned function; Space: O(D)
func (u *Node[T, S]) inOrder() func() (T, bool) {
	var st []*Node[T, S]
	for cur := u; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (v T, ok bool) {
		if len(st) == 0 {
			return
		}
		top := st[len(st)-1]
		st = st[:len(st)-1]
		v, ok = top.v, true
		for cur := top.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
		return
	}
}

// verify the search order and the cached sizes of every node under u,
// reporting the first defect found as a *InvariantError. lo and hi are the
// open bounds the keys under u must lie in; either is ignored when nil.
// Recursive.
// Time: O(Size())
func verify[T cmp.Ordered, S constraints.Unsigned](u *Node[T, S], lo, hi *T) error {
	if u == nil {
		return nil
	}
	if lo != nil && u.v <= *lo {
		return &InvariantError{fmt.Sprintf("order: key %v is not above %v.", u.v, *lo)}
	}
	if hi != nil && u.v >= *hi {
		return &InvariantError{fmt.Sprintf("order: key %v is not below %v.", u.v, *hi)}
	}
	if u.sz != u.l.Size()+u.r.Size()+1 {
		return &InvariantError{fmt.Sprintf("size: node %v caches %d, children sum to %d.", u.v, u.sz, u.l.Size()+u.r.Size()+1)}
	}
	if err := verify(u.l, lo, &u.v); err != nil {
		return err
	}
	return verify(u.r, &u.v, hi)
}
