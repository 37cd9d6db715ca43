// Package store implements an ordered associative memory of defined
// tuples supporting out/inp/rdp. It is built on
// github.com/emirpasic/gods/v2/trees/redblacktree, an ordered generic
// tree keyed by a total order rather than by hashing.
package store

import (
	"sort"

	"github.com/emirpasic/gods/v2/trees/redblacktree"

	"github.com/linda-space/tuplespace/element"
	"github.com/linda-space/tuplespace/internal/xerr"
)

// Interface is the contract external collaborators (and Space) use: an
// associative memory of defined tuples. Space composes an Interface
// with the wildcard tree; nothing about Interface requires the
// redblacktree-backed Store below. Any implementation that preserves
// the matching algorithm's determinism is a valid substitute.
type Interface interface {
	// Out inserts tup, or fails with an error wrapping
	// xerr.ErrUndefinedTuple if tup is not defined.
	Out(tup element.Tuple) error

	// Rdp returns the least stored tuple matching template, without
	// removing it.
	Rdp(template element.Tuple) (element.Tuple, bool)

	// Inp returns the least stored tuple matching template, removing it.
	Inp(template element.Tuple) (element.Tuple, bool)
}

// Store is the default Interface implementation: a single ordered set
// of defined tuples, keyed by element.Tuple.Compare.
//
// element.Tuple holds a slice field, so it does not itself satisfy the
// redblacktree key constraint `comparable` (a struct is only comparable
// if every field is). The tree is instead keyed by *element.Tuple: a
// pointer is always comparable regardless of what it points to, and
// the tree never relies on Go's `==` to order or look up keys; every
// ordering decision runs through the comparator below, which dereferences
// the pointers and defers to Tuple.Compare. The pointed-to Tuple doubles
// as the stored value, so there is nothing further to carry in V.
type Store struct {
	tree *redblacktree.Tree[*element.Tuple, struct{}]
}

var _ Interface = (*Store)(nil)

// New returns an empty Store.
func New() *Store {
	return &Store{
		tree: redblacktree.NewWith[*element.Tuple, struct{}](compareTupleRefs),
	}
}

func compareTupleRefs(a, b *element.Tuple) int { return a.Compare(*b) }

// Len reports the number of stored tuples.
func (s *Store) Len() int { return s.tree.Size() }

// Out implements Interface.
func (s *Store) Out(tup element.Tuple) error {
	if !tup.IsDefined() {
		return xerr.UndefinedTuple(tup.String())
	}
	s.tree.Put(&tup, struct{}{})
	return nil
}

// Rdp implements Interface.
func (s *Store) Rdp(template element.Tuple) (element.Tuple, bool) {
	return s.probe(template, false)
}

// Inp implements Interface.
func (s *Store) Inp(template element.Tuple) (element.Tuple, bool) {
	return s.probe(template, true)
}

// probe implements the matching algorithm: an exact probe for a
// defined template, else an ascending walk of range(template)
// returning the first structural match. remove controls whether the
// found tuple is also deleted (inp) or left in place (rdp).
func (s *Store) probe(template element.Tuple, remove bool) (element.Tuple, bool) {
	if template.IsDefined() {
		if _, ok := s.tree.Get(&template); ok {
			if remove {
				s.tree.Remove(&template)
			}
			return template, true
		}
		// The range for a defined template is empty ([T,T)), so there is
		// nothing further to walk: a fully defined probe either hits
		// exactly or misses entirely.
		return element.Tuple{}, false
	}

	lo, hi := template.Range()
	keys := s.tree.Keys()
	start := sort.Search(len(keys), func(i int) bool {
		c := keys[i].Compare(lo.Tuple)
		if lo.Inclusive {
			return c >= 0
		}
		return c > 0
	})
	for i := start; i < len(keys); i++ {
		k := keys[i]
		if cmp := k.Compare(hi.Tuple); cmp >= 0 {
			break
		}
		if template.Matches(*k) {
			if remove {
				s.tree.Remove(k)
			}
			return *k, true
		}
	}
	return element.Tuple{}, false
}
