package Trees

import (
	"cmp"
	"golang.org/x/exp/constraints"
)

// BSTSet is a plain binary search tree with no repeated values and no
// balancing at all: the shape is decided entirely by the order of mutations,
// so a hostile order degrades every O(D) operation to O(n). It keeps the same
// Node shape and exact size bookkeeping as WBSet, which is what lets a WBSet
// adopt its contents cheaply and lets RankK and RankOf work here too.
// T is the type of values it will hold, S is the type of the variables used
// for storing the sizes of subtrees; see the note on WBSet about choosing S.
type BSTSet[T cmp.Ordered, S constraints.Unsigned] struct {
	base[T, S]
}

// MakeBSTSet returns an empty BSTSet.
func MakeBSTSet[T cmp.Ordered, S constraints.Unsigned]() *BSTSet[T, S] {
	return &BSTSet[T, S]{}
}

// BuildBSTSet builds a BSTSet from the given slice recursively, midpoints
// first, which is faster than repeatedly calling Insert and gives a shape as
// good as a tree over s gets. The slice must be sorted in ascending order and
// mustn't contain duplicate elements; this is not checked.
// Time: O(len(s))
func BuildBSTSet[T cmp.Ordered, S constraints.Unsigned](s []T) *BSTSet[T, S] {
	return &BSTSet[T, S]{base[T, S]{build[T, S](s)}}
}

// insert v into the subtree rooting at *curPtr recursively. curPtr is passed
// by reference; the unwind keeps the cached sizes exact along the search
// path.
func (u *BSTSet[T, S]) insert(curPtr **Node[T, S], v T) bool {
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
		}
		return inserted
	}
}

// Insert [Set.Insert]. Recursive.
// It is a wrapper for insert.
// Time: O(D)
func (u *BSTSet[T, S]) Insert(v T) bool {
	return u.insert(&u.root, v)
}

// remove v from the subtree rooting at *curPtr recursively. curPtr is passed
// by reference. A node with two children isn't unlinked itself: it takes over
// the smallest key of its right subtree and that key's node, which has at
// most one child, is unlinked instead.
func (u *BSTSet[T, S]) remove(curPtr **Node[T, S], v T) bool {
	if cur := *curPtr; cur == nil {
		return false
	} else {
		deleted := false
		if v < cur.v {
			deleted = u.remove(&cur.l, v)
		} else if v == cur.v {
			deleted = true
			if cur.l == nil {
				*curPtr = cur.r
				return true
			} else if cur.r == nil {
				*curPtr = cur.l
				return true
			} else {
				t := &cur.r
				for (*t).l != nil {
					(*t).sz--
					t = &(*t).l
				}
				cur.v = (*t).v
				*t = (*t).r
			}
		} else {
			deleted = u.remove(&cur.r, v)
		}
		if deleted {
			cur.sz--
		}
		return deleted
	}
}

// Remove [Set.Remove]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *BSTSet[T, S]) Remove(v T) bool {
	return u.remove(&u.root, v)
}
