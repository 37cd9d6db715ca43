package space

import (
	"context"

	"github.com/linda-space/tuplespace/element"
	"github.com/linda-space/tuplespace/wildcard"
)

// Match is the awaitable result of TupleIn/TupleRd: it is either Done,
// resolved synchronously at call time, or Pending, in which case Wait
// suspends the caller until a future TupleOut delivers a matching
// tuple or the supplied context is cancelled.
//
// Cancellation is explicit, via ctx.Done() inside Wait, rather than
// tied to garbage collection or a destructor: a pending Match
// self-prunes its wildcard-tree leaf on cancellation instead of
// leaking it until the next successful match.
type Match struct {
	done bool
	tup  element.Tuple
	ok   bool
	err  error

	sp  *Space
	ch  chan element.Tuple
	tok wildcard.Token
}

func doneMatch(tup element.Tuple, ok bool, err error) *Match {
	return &Match{done: true, tup: tup, ok: ok, err: err}
}

func pendingMatch(sp *Space, ch chan element.Tuple, tok wildcard.Token) *Match {
	return &Match{sp: sp, ch: ch, tok: tok}
}

// Wait blocks until the Match resolves: immediately, if it was Done at
// creation; otherwise until a matching TupleOut delivers a tuple or ctx
// is cancelled. It returns the tuple (if any), whether a tuple was
// found, and an error. A Done Match always returns a nil error; a
// Pending Match returns ctx.Err() when ctx is cancelled before a tuple
// is delivered.
func (m *Match) Wait(ctx context.Context) (element.Tuple, bool, error) {
	if m.done {
		return m.tup, m.ok, m.err
	}
	select {
	case tup := <-m.ch:
		return tup, true, nil
	case <-ctx.Done():
		tup, ok := m.sp.cancel(m.ch, m.tok)
		if ok {
			// Lost the cancellation race: a matching tuple_out delivered
			// before cancel could self-prune. The tuple is not lost.
			return tup, true, nil
		}
		return element.Tuple{}, false, ctx.Err()
	}
}
