package Trees

import (
	"cmp"
	"golang.org/x/exp/constraints"
	"slices"
)

// Balance policy. A subtree is in balance while its size is at most Factor
// times its sibling's size plus the tree's slack; exactly meeting the bound
// still counts as balanced. Factor 3 with slack 2 is the classic weight
// balanced bound of 3x with weights counted as size+1, written on plain
// sizes. The factor is fixed: the single versus double rotation selection in
// maintain repairs violations without creating new ones only at ratio 3,
// while the slack may be anything from DefaultSlack up.
const (
	Factor       = 3
	DefaultSlack = 2
)

// WBSet is a weight balanced binary search tree with no repeated values. It
// judges balance by the cached sizes of sibling subtrees: whenever one side
// grows beyond Factor times the other plus the slack it restructures through
// rotations. With the default slack the height stays within about
// 2.41*log2(n), and on average much closer to log2(n).
// Balancing runs in one of two modes. Self balancing trees repair every
// violation on the spot as part of Insert and Remove. Manual trees let the
// shape drift, which makes heavy mutation bursts cheaper, and leave it to the
// caller to invoke Rebalance when done; queries stay correct either way, only
// their O(D) cost suffers while the tree is out of shape.
// T is the type of values it will hold, S is the type of the variables
// used for storing the sizes of different subtrees.
// Note that due to the way uint works in Go, and that the Set interface
// defines the return value of some functions to be uint, S shouldn't be
// any type that will cause overflow when converted to uint. Generally, you
// should let S be a wide upperbound for the size of the tree.
type WBSet[T cmp.Ordered, S constraints.Unsigned] struct {
	base[T, S]
	slack         S
	selfBalancing bool
}

// New returns an empty self balancing WBSet with the default slack.
func New[T cmp.Ordered, S constraints.Unsigned]() *WBSet[T, S] {
	return &WBSet[T, S]{slack: DefaultSlack, selfBalancing: true}
}

// NewPolicy returns an empty WBSet with the given slack and mode. slack must
// be at least DefaultSlack, otherwise NewPolicy panics with
// *InvalidPolicyError: below that floor there are violations whose rotations
// only move the asymmetry to the other side instead of shrinking it, so
// balancing such a tree would neither terminate nor restore the invariant.
// Larger slacks rotate less often but let the shape drift further; the
// default is the tightest accepted policy and gives the best shape.
func NewPolicy[T cmp.Ordered, S constraints.Unsigned](slack S, selfBalancing bool) *WBSet[T, S] {
	if slack < DefaultSlack {
		panic(&InvalidPolicyError{uint(slack)})
	}
	return &WBSet[T, S]{slack: slack, selfBalancing: selfBalancing}
}

// From builds a self balancing WBSet with the default policy holding the
// values of vs. vs is sorted and deduplicated in place and is handed to the
// tree; the caller mustn't use it afterwards. This is faster than repeatedly
// calling Insert and the resulting shape is as balanced as it gets.
// Time: O(len(vs)*log(len(vs)))
func From[T cmp.Ordered, S constraints.Unsigned](vs []T) *WBSet[T, S] {
	slices.Sort(vs)
	u := New[T, S]()
	u.root = build[T, S](slices.Compact(vs))
	return u
}

// FromSet builds a self balancing WBSet with the default policy holding the
// contents of any Set. o is only read through its traversal contract, so it
// stays valid and untouched; the result owns an independent midpoint built
// tree, no matter how badly shaped o was.
// Time: O(o.Size())
func FromSet[T cmp.Ordered, S constraints.Unsigned](o Set[T]) *WBSet[T, S] {
	vs := make([]T, 0, o.Size())
	f := o.InOrder()
	for v, ok := f(); ok; v, ok = f() {
		vs = append(vs, v)
	}
	u := New[T, S]()
	u.root = build[T, S](vs)
	return u
}

// SelfBalancing reports whether Insert and Remove currently repair balance
// violations themselves.
func (u *WBSet[T, S]) SelfBalancing() bool {
	return u.selfBalancing
}

// SetSelfBalancing switches between self balancing and manual mode. Turning
// it on doesn't repair imbalance accumulated so far, and turning it off
// doesn't disturb anything either: only future mutations are affected. A
// manual tree that should be back in shape right now wants Rebalance.
func (u *WBSet[T, S]) SetSelfBalancing(on bool) {
	u.selfBalancing = on
}

// maintain the balance invariant of the subtree rooting at *curPtr through
// rotations, recursively. rightHeavy tells which side could have grown, which
// removes redundant size comparisons. A single rotation suffices when the
// heavy child leans outward; when it leans inward its inner grandchild is
// promoted first, as a single rotation would just mirror the violation.
// After rotating, the demoted node's children are maintained again, then the
// slot itself is re-checked both ways.
// curPtr is passed by reference.
// Time: amortized O(1)
func (u *WBSet[T, S]) maintain(curPtr **Node[T, S], rightHeavy bool) {
	cur := *curPtr
	if cur == nil {
		return
	}
	if rightHeavy {
		if rc := cur.r; rc.Size() <= Factor*cur.l.Size()+u.slack {
			return
		} else if rc.l.Size() <= 2*rc.r.Size() {
			rotateLeft(curPtr)
		} else {
			rotateRight(&cur.r)
			rotateLeft(curPtr)
		}
	} else {
		if lc := cur.l; lc.Size() <= Factor*cur.r.Size()+u.slack {
			return
		} else if lc.r.Size() <= 2*lc.l.Size() {
			rotateRight(curPtr)
		} else {
			rotateLeft(&cur.l)
			rotateRight(curPtr)
		}
	}
	u.maintain(&cur.l, false)
	u.maintain(&cur.r, true)
	u.maintain(curPtr, false)
	u.maintain(curPtr, true)
}

// insert v into the subtree rooting at *curPtr recursively. curPtr is passed
// by reference. The unwind keeps the cached sizes exact along the search path
// and, when self balancing, re-checks the path bottom up so the deepest
// violation is repaired first; rotations further down can shift weight that
// ancestors then have to answer for, which is exactly what the continued
// unwind checks.
func (u *WBSet[T, S]) insert(curPtr **Node[T, S], v T) bool {
	if cur := *curPtr; cur == nil {
		*curPtr = &Node[T, S]{v: v, sz: 1}
		return true
	} else {
		inserted := false
		if v < cur.v {
			inserted = u.insert(&cur.l, v)
		} else if v == cur.v {
			return false
		} else {
			inserted = u.insert(&cur.r, v)
		}
		if inserted {
			cur.sz++
			if u.selfBalancing {
				u.maintain(curPtr, v > cur.v)
			}
		}
		return inserted
	}
}

// Insert [Set.Insert]. Recursive.
// It is a wrapper for insert.
// Time: O(D)
func (u *WBSet[T, S]) Insert(v T) bool {
	return u.insert(&u.root, v)
}

// remove v from the subtree rooting at *curPtr recursively. curPtr is passed
// by reference. A node with two children takes over the smallest key of its
// right subtree and removes that key below instead, so the inner path walked
// by the replacement is size-updated and re-balanced like any other removal
// path.
func (u *WBSet[T, S]) remove(curPtr **Node[T, S], v T) bool {
	if cur := *curPtr; cur == nil {
		return false
	} else {
		deleted, rightHeavy := false, false
		if v < cur.v {
			deleted = u.remove(&cur.l, v)
			rightHeavy = true
		} else if v > cur.v {
			deleted = u.remove(&cur.r, v)
		} else {
			deleted = true
			if cur.l == nil {
				*curPtr = cur.r
				return true
			} else if cur.r == nil {
				*curPtr = cur.l
				return true
			}
			m := cur.r
			for m.l != nil {
				m = m.l
			}
			cur.v = m.v
			u.remove(&cur.r, m.v)
		}
		if deleted {
			cur.sz--
			if u.selfBalancing {
				u.maintain(curPtr, rightHeavy)
			}
		}
		return deleted
	}
}

// Remove [Set.Remove]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *WBSet[T, S]) Remove(v T) bool {
	return u.remove(&u.root, v)
}

// Balanced reports whether every node satisfies the balance invariant under
// this set's policy. Self balancing trees always are; for a manual tree this
// is how to tell that it is time to Rebalance. Recursive.
// Time: O(n); Space: O(D)
func (u *WBSet[T, S]) Balanced() bool {
	return u.balanced(u.root)
}

func (u *WBSet[T, S]) balanced(cur *Node[T, S]) bool {
	if cur == nil {
		return true
	}
	if l, r := cur.l.Size(), cur.r.Size(); l > Factor*r+u.slack || r > Factor*l+u.slack {
		return false
	}
	return u.balanced(cur.l) && u.balanced(cur.r)
}

// Rebalance rebuilds the whole tree from its ordered keys, midpoints first,
// restoring the balance invariant at every node no matter how far the shape
// drifted in manual mode. The result is a function of the key set alone, so
// an immediately repeated call reproduces the identical shape and changes
// nothing. On a self balancing tree there is nothing to repair, though the
// rebuilt shape is usually tighter than what rotations maintain.
// Time: O(n); Space: O(n)
func (u *WBSet[T, S]) Rebalance() {
	if u.root != nil {
		u.root = build[T, S](u.root.flatten(make([]T, 0, u.root.sz)))
	}
}
