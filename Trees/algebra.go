package Trees

import (
	"cmp"
	Go_Ordered "github.com/g-m-twostay/go-ordered"
	"golang.org/x/exp/constraints"
)

// Set algebra over WBSet, built on split and join instead of one element at a
// time insertion, so combining trees of sizes n>=m costs O(m*log(n/m+1))
// rather than O(m*log n). The exported operations never change their
// operands: the recursions below are destructive, but they only ever run on
// private clones, so no node is reachable from two live trees afterwards.
// Operands are expected to satisfy their balance invariant; Rebalance a
// drifted manual tree before combining it. The results then satisfy the
// invariant too.

// Union returns a new set holding every value present in a or b, each exactly
// once. The result adopts a's policy and mode.
// Time: O(m*log(n/m+1)) plus the O(n+m) clones
func Union[T cmp.Ordered, S constraints.Unsigned](a, b *WBSet[T, S]) *WBSet[T, S] {
	res := &WBSet[T, S]{slack: a.slack, selfBalancing: a.selfBalancing}
	res.root = res.union(a.root.clone(), b.root.clone())
	return res
}

// Diff returns a new set holding the values of a that are not in b. The
// result adopts a's policy and mode.
// Time: O(m*log(n/m+1)) plus the O(n+m) clones
func Diff[T cmp.Ordered, S constraints.Unsigned](a, b *WBSet[T, S]) *WBSet[T, S] {
	res := &WBSet[T, S]{slack: a.slack, selfBalancing: a.selfBalancing}
	res.root = res.diff(a.root.clone(), b.root.clone())
	return res
}

// Intersect returns a new set holding the values present in both a and b.
// The result adopts a's policy and mode.
// Time: O(m*log(n/m+1)) plus the O(n+m) clones
func Intersect[T cmp.Ordered, S constraints.Unsigned](a, b *WBSet[T, S]) *WBSet[T, S] {
	res := &WBSet[T, S]{slack: a.slack, selfBalancing: a.selfBalancing}
	res.root = res.intersect(a.root.clone(), b.root.clone())
	return res
}

// Eq reports whether a and b hold exactly the same values, walking both
// ascending streams in lockstep. Shape doesn't matter, only contents, so a
// drifted manual tree and a freshly rebuilt one compare equal.
// Time: O(n)
func Eq[T cmp.Ordered](a, b Set[T]) bool {
	if a.Size() != b.Size() {
		return false
	}
	i, j := Go_Ordered.NewIter(a.InOrder()), Go_Ordered.NewIter(b.InOrder())
	for i.HasNext() {
		x, _ := i.Next()
		if y, ok := j.Next(); !ok || x != y {
			return false
		}
	}
	return true
}

// split the tree rooting at t around v into the keys below it and the keys
// above it, both independently balanced. The node holding v, when present,
// is surrendered, and the flag reports whether it existed. Consumes t.
// Recursive.
func (u *WBSet[T, S]) split(t *Node[T, S], v T) (*Node[T, S], bool, *Node[T, S]) {
	if t == nil {
		return nil, false, nil
	}
	if v < t.v {
		l, in, r := u.split(t.l, v)
		return l, in, u.join(r, t.v, t.r)
	} else if v > t.v {
		l, in, r := u.split(t.r, v)
		return u.join(t.l, t.v, l), in, r
	}
	return t.l, true, t.r
}

// join the trees rooting at l and r around the pivot v into one balanced
// tree, assuming every key under l < v < every key under r and both sides
// satisfy the invariant internally. Sides within policy of each other simply
// become siblings under a new node holding v; otherwise join descends the
// heavier side until the remainder is within policy of the lighter one,
// links there, and repairs the spine with rotations on the way back up, the
// same way an insert repairs its search path. Consumes l and r. Recursive.
// Time: O(|log(size(l)/size(r))|)
func (u *WBSet[T, S]) join(l *Node[T, S], v T, r *Node[T, S]) *Node[T, S] {
	if l.Size() > Factor*r.Size()+u.slack {
		l.r = u.join(l.r, v, r)
		l.sz = l.l.Size() + l.r.Size() + 1
		u.maintain(&l, true)
		return l
	} else if r.Size() > Factor*l.Size()+u.slack {
		r.l = u.join(l, v, r.l)
		r.sz = r.l.Size() + r.r.Size() + 1
		u.maintain(&r, false)
		return r
	}
	return &Node[T, S]{v, l, r, l.Size() + r.Size() + 1}
}

// join2 is join without a pivot: the largest key of l is extracted to serve
// as one. For when the key that divided two subtrees must not itself appear
// in the result. Consumes l and r.
func (u *WBSet[T, S]) join2(l, r *Node[T, S]) *Node[T, S] {
	if l == nil {
		return r
	}
	var v T
	l = u.removeMax(l, &v)
	return u.join(l, v, r)
}

// removeMax unlinks the largest node under t, writing its key to *out.
// Recursive.
func (u *WBSet[T, S]) removeMax(t *Node[T, S], out *T) *Node[T, S] {
	if t.r == nil {
		*out = t.v
		return t.l
	}
	t.r = u.removeMax(t.r, out)
	t.sz--
	u.maintain(&t, false)
	return t
}

// union destructively merges the trees rooting at a and b. a is taken apart
// key by key while b is split around them, so the recursion gets cheaper the
// more lopsided the pair is. Recursive.
func (u *WBSet[T, S]) union(a, b *Node[T, S]) *Node[T, S] {
	if a == nil {
		return b
	} else if b == nil {
		return a
	}
	bl, _, br := u.split(b, a.v)
	return u.join(u.union(a.l, bl), a.v, u.union(a.r, br))
}

// diff destructively removes every key of the tree rooting at b from the one
// rooting at a. b's keys only steer the recursion; its nodes become garbage.
// Recursive.
func (u *WBSet[T, S]) diff(a, b *Node[T, S]) *Node[T, S] {
	if a == nil {
		return nil
	} else if b == nil {
		return a
	}
	al, _, ar := u.split(a, b.v)
	return u.join2(u.diff(al, b.l), u.diff(ar, b.r))
}

// intersect destructively keeps exactly the keys the trees rooting at a and b
// share. Recursive.
func (u *WBSet[T, S]) intersect(a, b *Node[T, S]) *Node[T, S] {
	if a == nil || b == nil {
		return nil
	}
	bl, in, br := u.split(b, a.v)
	l, r := u.intersect(a.l, bl), u.intersect(a.r, br)
	if in {
		return u.join(l, a.v, r)
	}
	return u.join2(l, r)
}
