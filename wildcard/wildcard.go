// Package wildcard implements a trie of element paths that stores one
// notifier per parked in/rd request.
//
// Nodes live in an arena: Tree holds a node slice addressed by integer
// id, with a free list for slot reuse, rather than a tree of owning
// pointers. This avoids pointer chasing, rules out cyclic references,
// and keeps allocator churn down on insert/cancel-heavy workloads.
//
// Every exported method assumes the caller holds whatever external
// lock serializes access (space.Space's mutex). Tree has no lock of
// its own: locking is the whole Space's responsibility, not each
// component's.
package wildcard

import (
	"github.com/linda-space/tuplespace/element"
)

type kind int

const (
	kindRoot kind = iota
	kindPath
	kindLeaf
)

type node struct {
	kind     kind
	elem     element.Element
	parent   int
	children []int
	notifier chan element.Tuple
	active   bool
	gen      uint64
}

// Token identifies a leaf node across the lifetime of a pending
// request, for later cancellation. It embeds a generation counter so a
// stale Token (referring to an arena slot since recycled for an
// unrelated leaf) is rejected rather than silently cancelling the
// wrong waiter.
type Token struct {
	id  int
	gen uint64
}

// Tree is the wildcard trie. The zero value is not ready for use; call
// New.
type Tree struct {
	nodes []node
	free  []int
	root  int
}

// New returns an empty Tree.
func New() *Tree {
	t := &Tree{}
	t.root = t.alloc(node{kind: kindRoot, parent: -1})
	return t
}

func (t *Tree) alloc(n node) int {
	if len(t.free) > 0 {
		id := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		n.gen = t.nodes[id].gen + 1
		t.nodes[id] = n
		return id
	}
	n.gen = 1
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}

func (t *Tree) releaseNode(id int) {
	t.nodes[id] = node{}
	t.free = append(t.free, id)
}

func (t *Tree) detach(parentID, childID int) {
	kids := t.nodes[parentID].children
	for i, k := range kids {
		if k == childID {
			t.nodes[parentID].children = append(kids[:i], kids[i+1:]...)
			break
		}
	}
	t.releaseNode(childID)
}

// Insert walks template along a path of elements compared by
// Element.Identical (so Any indexes as a literal path element, not a
// wildcard: a parked template is an exact shape to later match
// against, not itself a pattern), creating interior Path nodes as
// needed and a fresh Leaf at the end holding ch. It returns a Token
// identifying that leaf for later Cancel.
func (t *Tree) Insert(template element.Tuple, ch chan element.Tuple) Token {
	return t.insert(t.root, template, ch)
}

func (t *Tree) insert(id int, template element.Tuple, ch chan element.Tuple) Token {
	if template.IsEmpty() {
		leafID := t.alloc(node{kind: kindLeaf, parent: id, notifier: ch, active: true})
		t.nodes[id].children = append(t.nodes[id].children, leafID)
		return Token{id: leafID, gen: t.nodes[leafID].gen}
	}

	head := template.First()
	for _, childID := range t.nodes[id].children {
		if t.nodes[childID].kind == kindPath && t.nodes[childID].elem.Identical(head) {
			return t.insert(childID, template.Rest(), ch)
		}
	}

	childID := t.alloc(node{kind: kindPath, parent: id, elem: head})
	t.nodes[id].children = append(t.nodes[id].children, childID)
	return t.insert(childID, template.Rest(), ch)
}

// Take searches, depth-first, for any leaf reachable by a path of
// elements that each match the corresponding element of tup under
// Element.Matches. The first matching leaf found (in child insertion
// order, per branch) is detached and its notifier returned, enforcing
// at-most-one delivery per call.
func (t *Tree) Take(tup element.Tuple) (chan element.Tuple, bool) {
	return t.take(t.root, tup)
}

func (t *Tree) take(id int, tup element.Tuple) (chan element.Tuple, bool) {
	if tup.IsEmpty() {
		for _, childID := range t.nodes[id].children {
			if t.nodes[childID].kind == kindLeaf && t.nodes[childID].active {
				ch := t.nodes[childID].notifier
				t.detach(id, childID)
				return ch, true
			}
		}
		return nil, false
	}

	head := tup.First()
	for _, childID := range t.nodes[id].children {
		if t.nodes[childID].kind != kindPath || !t.nodes[childID].elem.Matches(head) {
			continue
		}
		if ch, ok := t.take(childID, tup.Rest()); ok {
			return ch, true
		}
	}
	return nil, false
}

// Cancel removes the leaf identified by tok, if it is still present and
// has not already been taken. It reports false when the token is
// stale: the leaf was already taken (and its tuple necessarily already
// delivered under the same external lock) or the arena slot has since
// been recycled for an unrelated leaf.
func (t *Tree) Cancel(tok Token) bool {
	if tok.id < 0 || tok.id >= len(t.nodes) {
		return false
	}
	n := &t.nodes[tok.id]
	if n.gen != tok.gen || n.kind != kindLeaf || !n.active {
		return false
	}
	parent := n.parent
	t.detach(parent, tok.id)
	return true
}
