// Package Go_Ordered holds the pieces shared by the ordered collections in
// this module.
package Go_Ordered

// Iter decorates a closure iterator, the func() (T, bool) form the trees in
// this module hand out, with one element of lookahead, so the next element
// can be inspected any number of times before being consumed. It never
// touches whatever structure is behind the closure.
// Like the closures it wraps, an Iter can't be restarted and mustn't be used
// concurrently. The zero value is useless; make one with NewIter.
type Iter[T any] struct {
	next func() (T, bool)
	cur  T
	has  bool
}

// NewIter returns an Iter draining f. f is called once right away to fill the
// lookahead slot and then exactly once per Next.
func NewIter[T any](f func() (T, bool)) *Iter[T] {
	u := Iter[T]{next: f}
	u.cur, u.has = f()
	return &u
}

// HasNext reports whether another element remains. It is Peek without the
// element.
func (u *Iter[T]) HasNext() bool {
	return u.has
}

// Peek returns the element the next call to Next will return, without
// advancing. The bool is false once the iterator is exhausted, and the value
// is then undefined.
func (u *Iter[T]) Peek() (T, bool) {
	return u.cur, u.has
}

// Next returns the next element and advances past it. The bool is false once
// the iterator is exhausted.
func (u *Iter[T]) Next() (T, bool) {
	v, ok := u.cur, u.has
	if ok {
		u.cur, u.has = u.next()
	}
	return v, ok
}
