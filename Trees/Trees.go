// Package Trees implements ordered sets backed by binary search trees.
// Nothing here is safe for concurrent use; a tree shared between goroutines
// must be synchronized externally.
package Trees

import "fmt"

// Set represents an ordered set of unique values backed by a tree of nodes.
// Receivers that have a bool as a second return value use it to indicate
// whether the first return value is defined. For example, calling Successor
// with a value greater than everything in the set returns (x T, false); the
// value of x is undefined then and shouldn't be used.
// If an implementation didn't specify anything special, then the implemented
// receivers follow the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Set[T any] interface {
	//Insert v to the Set. Returning true if v was absent and is now present,
	//false otherwise, in which case the structure is left untouched.
	Insert(v T) bool
	//Remove v from the Set. Returning true if v was present and is now
	//removed, false otherwise.
	Remove(v T) bool
	//Has element v. Note that even though by utilizing the second
	//return value of other methods achieves the same functionality
	//as Has, it is encouraged to use Has for the purposes of checking
	//if some value exists, as Has should be optimized for this purpose
	//in implementations.
	Has(v T) bool
	//Minimum element of the set. Fails with *EmptyTreeError when the set
	//is empty; this is the expected failure, never a panic.
	Minimum() (T, error)
	//Maximum element of the set. Fails with *EmptyTreeError when the set
	//is empty.
	Maximum() (T, error)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//RankK returns the k-th smallest element, starting from 0.
	//k must be less than Size() for the result to be defined.
	RankK(k uint) (T, bool)
	//RankOf v in the set according to in-order, starting from 0. If v isn't
	//present, returns false and the rank v would have if it were inserted.
	RankOf(v T) (uint, bool)
	//Size of the set.
	Size() uint
	//Height of the tree in edges on the longest root to leaf path. A set
	//holding one element has height 0; an empty set has height -1.
	Height() int
	//InOrder returns a closure function f acting like an iterator. f
	//gives elements in the in-order traversal of the tree, so in ascending
	//order. Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The traversal itself never modifies the tree, but the tree must not be
	//modified during the iteration of f, otherwise the results are
	//meaningless. There will be no panic if such cases happen so design the
	//algorithm with this in mind.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//or cached size at some node violates the properties of the search tree.
	//This is to be distinguished from whether the tree is balanced or not:
	//an unbalanced tree still answers every query correctly, a corrupt one
	//doesn't.
	Corrupt() bool
}

// EmptyTreeError reports a query that needs at least one element, made on an
// empty set.
type EmptyTreeError struct {
}

func (e *EmptyTreeError) Error() string {
	return "Tree is Empty: no Minimum or Maximum."
}

// InvariantError describes the first broken structural invariant found by a
// consistency check: a key out of search order or a cached size not matching
// its children. Normal operations never return it; seeing one means a bug in
// this package, not misuse.
type InvariantError struct {
	msg string
}

func (e *InvariantError) Error() string {
	return e.msg
}

// InvalidPolicyError is the panic value of WBSet constructors given an
// unusable balance policy.
type InvalidPolicyError struct {
	Slack uint
}

func (e *InvalidPolicyError) Error() string {
	return fmt.Sprintf("balance slack %d is unusable: rotations can only maintain slacks of at least %d.", e.Slack, DefaultSlack)
}
