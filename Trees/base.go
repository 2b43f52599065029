package Trees

import (
	"cmp"
	"golang.org/x/exp/constraints"
)

// base carries the root slot and every query that only reads the tree, which
// BSTSet and WBSet share by embedding. Mutations differ between the two and
// live on the outer types.
type base[T cmp.Ordered, S constraints.Unsigned] struct {
	root *Node[T, S]
}

// Root of the tree; nil when the set is empty. The returned node and
// everything below it expose read access only, which is all a renderer or
// any other structural consumer needs.
func (u *base[T, S]) Root() *Node[T, S] {
	return u.root
}

// Size [Set.Size]
// Time: O(1); Space: O(1)
func (u *base[T, S]) Size() uint {
	return uint(u.root.Size())
}

// Height [Set.Height]. Recursive.
// Time: O(n); Space: O(D)
func (u *base[T, S]) Height() int {
	return u.root.height()
}

// Has [Set.Has]
// Time: O(D); Space: O(1)
func (u *base[T, S]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// Minimum [Set.Minimum]
// Time: O(D); Space: O(1)
func (u *base[T, S]) Minimum() (T, error) {
	if cur := u.root; cur == nil {
		return *new(T), &EmptyTreeError{}
	} else {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, nil
	}
}

// Maximum [Set.Maximum]
// Time: O(D); Space: O(1)
func (u *base[T, S]) Maximum() (T, error) {
	if cur := u.root; cur == nil {
		return *new(T), &EmptyTreeError{}
	} else {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, nil
	}
}

// Predecessor [Set.Predecessor]
// Time: O(D); Space: O(1)
func (u *base[T, S]) Predecessor(v T) (T, bool) {
	var p *Node[T, S]
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Set.Successor]
// Time: O(D); Space: O(1)
func (u *base[T, S]) Successor(v T) (T, bool) {
	var p *Node[T, S]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// RankK [Set.RankK]
// This function utilizes the cached subtree sizes to answer in O(D) with a
// very small constant.
// Time: O(D); Space: O(1)
func (u *base[T, S]) RankK(k uint) (T, bool) {
	if k >= uint(u.root.Size()) {
		return *new(T), false
	}
	t := S(k)
	cur := u.root
	for {
		if ls := cur.l.Size(); t < ls {
			cur = cur.l
		} else if t == ls {
			return cur.v, true
		} else {
			t -= ls + 1
			cur = cur.r
		}
	}
}

// RankOf [Set.RankOf]
// This function utilizes the cached subtree sizes to answer in O(D) with a
// very small constant.
// Time: O(D); Space: O(1)
func (u *base[T, S]) RankOf(v T) (uint, bool) {
	var ra S = 0
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			ra += cur.l.Size() + 1
			cur = cur.r
		} else {
			return uint(ra + cur.l.Size()), true
		}
	}
	return uint(ra), false
}

// InOrder [Set.InOrder]
// Time: amortized O(1) at each call to the returned function; Space: O(D)
func (u *base[T, S]) InOrder() func() (T, bool) {
	return u.root.inOrder()
}

// Corrupt [Set.Corrupt]. Recursive.
// Time: O(n); Space: O(D)
func (u *base[T, S]) Corrupt() bool {
	return u.verify() != nil
}

// verify is Corrupt with the details kept: the first broken invariant is
// described by the returned *InvariantError.
func (u *base[T, S]) verify() error {
	return verify(u.root, nil, nil)
}
