// Package space implements the rendezvous layer composing a Store and
// a wildcard Tree into the awaitable tuple_out/tuple_in/tuple_rd
// operations.
package space

import (
	"sync"

	"github.com/linda-space/tuplespace/element"
	"github.com/linda-space/tuplespace/internal/xerr"
	"github.com/linda-space/tuplespace/store"
	"github.com/linda-space/tuplespace/wildcard"
)

// Space is the coordination point: one Store and one wildcard Tree of
// notifiers, guarded by a single exclusive mutex. A readers-writer
// lock is not sufficient here: every operation mutates either the
// store or the tree, so Space uses sync.Mutex, not sync.RWMutex.
type Space struct {
	mu      sync.Mutex
	store   store.Interface
	pending *wildcard.Tree
}

// New composes a Space over the given Store.
func New(s store.Interface) *Space {
	return &Space{store: s, pending: wildcard.New()}
}

// TupleOut implements tuple_out: if tup is undefined, it fails with an
// error wrapping xerr.ErrUndefinedTuple. Otherwise it probes the
// wildcard tree for a parked waiter whose template matches tup; if
// found, tup is handed directly to that waiter and never touches the
// store. Otherwise tup is stored.
//
// The probe, optional delivery, and optional store insert run as one
// critical section under Space's mutex: no other operation can observe
// the tree with the notifier still present while the tuple is already
// in flight to it.
func (sp *Space) TupleOut(tup element.Tuple) error {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if !tup.IsDefined() {
		return xerr.UndefinedTuple(tup.String())
	}

	if ch, ok := sp.pending.Take(tup); ok {
		select {
		case ch <- tup:
			return nil
		default:
			// The notifier's receiver is already gone. This cannot happen
			// through normal use: each notifier channel is buffered(1) and
			// written at most once, by construction of Take's
			// at-most-one-delivery guarantee. If it somehow does happen,
			// fall back to storing tup instead of surfacing an error.
		}
	}
	return sp.store.Out(tup)
}

// TupleIn implements tuple_in: an immediate destructive probe of the
// store, falling back to parking a notifier in the wildcard tree keyed
// by template.
func (sp *Space) TupleIn(template element.Tuple) *Match {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if tup, ok := sp.store.Inp(template); ok {
		return doneMatch(tup, true, nil)
	}
	return sp.park(template)
}

// TupleRd implements tuple_rd: identical shape to TupleIn but uses a
// non-destructive store probe. A parked rd shares the same notifier
// mechanism as a parked in: if it parks and is later satisfied, the
// delivering tuple_out does not store the tuple. This is a deliberate
// divergence from classical Linda's non-destructive rd, not an
// oversight; see DESIGN.md.
func (sp *Space) TupleRd(template element.Tuple) *Match {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if tup, ok := sp.store.Rdp(template); ok {
		return doneMatch(tup, true, nil)
	}
	return sp.park(template)
}

// park must be called with sp.mu held. It creates a single-shot
// notifier, registers it in the wildcard tree under template, and
// returns a Pending Match holding the receiving end.
func (sp *Space) park(template element.Tuple) *Match {
	ch := make(chan element.Tuple, 1)
	tok := sp.pending.Insert(template, ch)
	return pendingMatch(sp, ch, tok)
}

// cancel attempts to self-prune the leaf identified by tok. It must be
// called without sp.mu held.
//
// If the leaf is still present, it is removed and cancel reports false
// (nothing was or will be delivered). If the leaf is already gone, a
// concurrent TupleOut necessarily already took it and sent into ch
// under the very same mutex this method just acquired and released, so
// the happens-before edge through that lock guarantees the value is
// already visible, and cancel reports true with the delivered tuple so
// the caller never loses it.
func (sp *Space) cancel(ch chan element.Tuple, tok wildcard.Token) (element.Tuple, bool) {
	sp.mu.Lock()
	removed := sp.pending.Cancel(tok)
	sp.mu.Unlock()

	if removed {
		return element.Tuple{}, false
	}
	return <-ch, true
}
