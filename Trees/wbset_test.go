package Trees

import (
	"math/bits"
	"math/rand"
	"slices"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 40000
	tAddValRange = 80000
)

func TestWBSet_Insert(t *testing.T) {
	tree := New[int, uint32]()
	content := make(map[int]struct{})
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
	}
	for _, b := range a {
		_, in := content[b]
		if tree.Insert(b) == in {
			t.Errorf("failed to insert key %v", b)
		}
		if tree.Insert(b) {
			t.Errorf("can insert a second time key %v", b)
		}
		content[b] = struct{}{}
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	if err := tree.verify(); err != nil {
		t.Error(err)
	}
	if !tree.Balanced() {
		t.Error("tree is not balanced")
	}
	var s []int
	f := tree.InOrder()
	for v, ok := f(); ok; v, ok = f() {
		s = append(s, v)
	}
	if len(s) != len(content) {
		t.Errorf("sorted size is %d, want %d", len(s), len(content))
	}
	if !slices.IsSorted(s) {
		t.Errorf("sorted is not sorted")
	}
	for _, v := range s {
		if _, in := content[v]; !in {
			t.Errorf("sorted has non existent key %v", v)
		}
	}
}

func TestWBSet_Remove(t *testing.T) {
	tree := New[int, uint32]()
	content := make(map[int]struct{})
	if tree.Remove(0) {
		t.Errorf("empty tree has non existent key %v", 0)
	}
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
		tree.Insert(a[i])
		content[a[i]] = struct{}{}
	}
	for i, lim := 0, rg.Intn(len(a)); i < lim; i++ {
		_, in := content[a[i]]
		if tree.Remove(a[i]) != in {
			t.Errorf("failed to delete key %v", a[i])
		}
		if tree.Remove(a[i]) {
			t.Errorf("can delete a second time key %v", a[i])
		}
		delete(content, a[i])
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	if err := tree.verify(); err != nil {
		t.Error(err)
	}
	if !tree.Balanced() {
		t.Error("tree is not balanced")
	}
}

// Every mutation in self balancing mode must leave the whole tree within
// policy, not just the search path it touched.
func TestWBSet_SelfBalancing(t *testing.T) {
	const n = 1024
	tree := New[int, uint]()
	content := make(map[int]struct{})
	for i := 0; i < n; i++ {
		v := rg.Intn(n * 2)
		if rg.Intn(4) == 0 {
			delete(content, v)
			tree.Remove(v)
		} else {
			content[v] = struct{}{}
			tree.Insert(v)
		}
		if err := tree.verify(); err != nil {
			t.Fatalf("mutation %d: %v", i, err)
		}
		if !tree.Balanced() {
			t.Fatalf("balance violation survived mutation %d", i)
		}
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
}

func TestWBSet_InsertAscending(t *testing.T) {
	tree := New[int, uint]()
	for i := 1; i <= 31; i++ {
		tree.Insert(i)
		if err := tree.verify(); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
		if !tree.Balanced() {
			t.Fatalf("unbalanced after inserting key %v", i)
		}
	}
	if h := tree.Height(); h > 8 {
		t.Errorf("height is %d after 31 ascending inserts, want at most 8", h)
	}
	for i := 32; i <= 1024; i++ {
		tree.Insert(i)
	}
	// within policy every step from root to leaf sheds at least a quarter of
	// the weight, so height <= log(size)/log(4/3), about 24.1 for 1024.
	if h := tree.Height(); h > 24 {
		t.Errorf("height is %d after 1024 ascending inserts, want at most 24", h)
	}
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
}

func TestWBSet_Drain(t *testing.T) {
	const n = 512
	tree := New[int, uint]()
	a := rg.Perm(n)
	for _, v := range a {
		tree.Insert(v)
	}
	for i, v := range a {
		if !tree.Remove(v) {
			t.Fatalf("failed to remove key %v", v)
		}
		if err := tree.verify(); err != nil {
			t.Fatalf("removal %d: %v", i, err)
		}
		if !tree.Balanced() {
			t.Fatalf("balance violation survived removal %d", i)
		}
		if int(tree.Size()) != n-i-1 {
			t.Fatalf("size is %d after %d removals, want %d", tree.Size(), i+1, n-i-1)
		}
	}
	if tree.Root() != nil {
		t.Error("tree is not empty after removing everything")
	}
}

func TestWBSet_ManualMode(t *testing.T) {
	const n = 64
	tree := NewPolicy[int, uint](DefaultSlack, false)
	for i := 0; i < n; i++ {
		tree.Insert(i)
	}
	if h := tree.Height(); h != n-1 {
		t.Errorf("manual tree of ascending keys has height %d, want the full chain %d", h, n-1)
	}
	if tree.Balanced() {
		t.Error("chain reports balanced")
	}
	if err := tree.verify(); err != nil {
		t.Error(err)
	}

	// switching modes neither repairs nor disturbs anything
	tree.SetSelfBalancing(true)
	if tree.Balanced() {
		t.Error("enabling self balancing repaired the tree eagerly")
	}
	tree.SetSelfBalancing(false)

	tree.Rebalance()
	if !tree.Balanced() {
		t.Error("tree is not balanced after Rebalance")
	}
	if err := tree.verify(); err != nil {
		t.Error(err)
	}
	if h, want := tree.Height(), bits.Len(uint(n))-1; h != want {
		t.Errorf("rebuilt height is %d, want %d", h, want)
	}
	s := make([]int, 0, n)
	f := tree.InOrder()
	for v, ok := f(); ok; v, ok = f() {
		s = append(s, v)
	}
	for i := 0; i < n; i++ {
		if s[i] != i {
			t.Fatalf("wrong value %d at index %d after Rebalance", s[i], i)
		}
	}
}

func TestWBSet_From(t *testing.T) {
	a := make([]int, tAddN)
	content := make(map[int]struct{}, len(a))
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
		content[a[i]] = struct{}{}
	}
	tree := From[int, uint32](a)
	if int(tree.Size()) != len(content) {
		t.Fatalf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if err := tree.verify(); err != nil {
		t.Error(err)
	}
	if !tree.Balanced() {
		t.Error("tree is not balanced")
	}
	if h, want := tree.Height(), bits.Len(uint(tree.Size()))-1; h != want {
		t.Errorf("height is %d, want the midpoint built %d", h, want)
	}
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
}

func TestWBSet_FromSet(t *testing.T) {
	const n = 256
	chain := MakeBSTSet[int, uint]()
	for i := 0; i < n; i++ {
		chain.Insert(i)
	}
	tree := FromSet[int, uint](chain)
	if int(tree.Size()) != n {
		t.Fatalf("tree size is %d, want %d", tree.Size(), n)
	}
	if !tree.Balanced() {
		t.Error("adopted tree is not balanced")
	}
	if err := tree.verify(); err != nil {
		t.Error(err)
	}
	for i := 0; i < n; i++ {
		if !tree.Has(i) {
			t.Errorf("tree does not have key %v", i)
		}
	}
	// the source is read, not consumed
	if h := chain.Height(); h != n-1 {
		t.Errorf("source height changed to %d", h)
	}
	if err := chain.verify(); err != nil {
		t.Error(err)
	}
}

func TestWBSet_Empty(t *testing.T) {
	tree := New[int, uint]()
	if tree.Size() != 0 || tree.Root() != nil {
		t.Error("new tree is not empty")
	}
	if h := tree.Height(); h != -1 {
		t.Errorf("empty height is %d, want -1", h)
	}
	if _, err := tree.Minimum(); err == nil {
		t.Error("Minimum of empty tree did not fail")
	} else if _, ok := err.(*EmptyTreeError); !ok {
		t.Errorf("Minimum failed with %T, want *EmptyTreeError", err)
	}
	if _, err := tree.Maximum(); err == nil {
		t.Error("Maximum of empty tree did not fail")
	} else if _, ok := err.(*EmptyTreeError); !ok {
		t.Errorf("Maximum failed with %T, want *EmptyTreeError", err)
	}
	if _, ok := tree.RankK(0); ok {
		t.Error("empty tree has a 0th element")
	}
	if _, ok := tree.InOrder()(); ok {
		t.Error("empty traversal yielded an element")
	}
	if tree.Corrupt() {
		t.Error("empty tree is corrupt")
	}
}

func TestNewPolicy_Validation(t *testing.T) {
	for _, slack := range []uint{0, 1} {
		func() {
			defer func() {
				if _, ok := recover().(*InvalidPolicyError); !ok {
					t.Errorf("no *InvalidPolicyError panic for slack %d", slack)
				}
			}()
			NewPolicy[int, uint](slack, false)
		}()
	}
	if tree := NewPolicy[int, uint](DefaultSlack, true); !tree.SelfBalancing() {
		t.Error("valid policy constructor dropped the mode")
	}
}

// Every accepted slack has to keep self balancing mutations terminating and
// within the invariant, not just the default the other tests run under.
func TestWBSet_SlackRange(t *testing.T) {
	for _, slack := range []uint{2, 3, 7, 16} {
		tree := NewPolicy[int, uint](slack, true)
		content := make(map[int]struct{})
		for i := 1; i <= 64; i++ {
			tree.Insert(i)
			content[i] = struct{}{}
			if err := tree.verify(); err != nil {
				t.Fatalf("slack %d, ascending insert %d: %v", slack, i, err)
			}
			if !tree.Balanced() {
				t.Fatalf("slack %d: balance violation survived ascending insert %d", slack, i)
			}
		}
		for i := 0; i < 4096; i++ {
			v := rg.Intn(512)
			if rg.Intn(3) == 0 {
				delete(content, v)
				tree.Remove(v)
			} else {
				content[v] = struct{}{}
				tree.Insert(v)
			}
			if err := tree.verify(); err != nil {
				t.Fatalf("slack %d, mutation %d: %v", slack, i, err)
			}
			if !tree.Balanced() {
				t.Fatalf("slack %d: balance violation survived mutation %d", slack, i)
			}
		}
		if int(tree.Size()) != len(content) {
			t.Errorf("slack %d: tree size is %d, want %d", slack, tree.Size(), len(content))
		}
	}
}
