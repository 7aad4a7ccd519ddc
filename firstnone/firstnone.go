// Package firstnone is the Option counterpart to firsterr: it finds the first
// absent value in a sequence of Options while letting the caller iterate the
// present values lazily.
//
// OrElse returns None if any element of the source is None, and Some of the
// callback's output otherwise. The absence wins even when the callback never
// consumes far enough to see it.
package firstnone

import (
	"iter"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/missinggo/v2/panicif"
)

type state uint8

// Transitions are one-way: stateActive to one of the other two, then stuck.
const (
	stateActive state = iota
	stateFoundNone
	stateExhausted
)

// Iter yields the present values of an Option sequence up to, but not
// including, the first None. It is handed to the callback of OrElse and is
// only valid for the duration of that call.
type Iter[T any] struct {
	state state
	// Pull handle on the source. Only set while active.
	next func() (g.Option[T], bool)
	stop func()
	// Set once OrElse has reclaimed the adapter. Catches callbacks that leak
	// the Iter out of their scope.
	reclaimed bool
}

// Next returns the next present value from the source. It returns false if
// the source is exhausted, or produced a None: the source is not pulled
// again. Once Next returns false it always returns false, regardless of the
// source's own post-exhaustion behaviour.
func (me *Iter[T]) Next() (_ T, _ bool) {
	panicif.True(me.reclaimed)
	if me.state != stateActive {
		return
	}
	opt, ok := me.next()
	switch {
	case !ok:
		me.leaveActive(stateExhausted)
	case !opt.Ok:
		me.leaveActive(stateFoundNone)
	default:
		return opt.Value, true
	}
	return
}

// Values is Next as a range-over-func sequence. It shares the adapter's
// state: breaking out and ranging again continues where the previous loop
// stopped.
func (me *Iter[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := me.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (me *Iter[T]) leaveActive(to state) {
	panicif.NotEq(me.state, stateActive)
	me.stop()
	me.next = nil
	me.stop = nil
	me.state = to
}

// Scan the rest of the source for a None, skipping the adapter's fused value
// semantics.
func (me *Iter[T]) finish() bool {
	for me.state == stateActive {
		opt, ok := me.next()
		switch {
		case !ok:
			me.leaveActive(stateExhausted)
		case !opt.Ok:
			me.leaveActive(stateFoundNone)
		}
	}
	return me.state == stateFoundNone
}

// OrElse returns None if seq contains a None anywhere, and Some of f's output
// otherwise. f is called exactly once with an adapter yielding the values
// that precede the first None; it may consume as much or as little of it as
// it likes. After f returns, the rest of seq is drained looking for a None.
// The adapter must not be retained or used after f returns.
func OrElse[T, O any](seq iter.Seq[g.Option[T]], f func(*Iter[T]) O) (_ g.Option[O]) {
	next, stop := iter.Pull(seq)
	defer stop()
	it := Iter[T]{state: stateActive, next: next, stop: stop}
	output := f(&it)
	noneFound := it.finish()
	it.reclaimed = true
	if noneFound {
		return
	}
	return g.Some(output)
}

// Or returns None if seq contains a None anywhere, and Some(value) otherwise.
// The values in seq are discarded.
func Or[T, O any](seq iter.Seq[g.Option[T]], value O) g.Option[O] {
	return OrElse(seq, func(*Iter[T]) O { return value })
}

// OrTry is OrElse for callbacks that themselves return an Option. A None in
// seq takes precedence over f returning None: f's None only surfaces when
// every element of the source is present.
func OrTry[T, O any](seq iter.Seq[g.Option[T]], f func(*Iter[T]) g.Option[O]) g.Option[O] {
	res := OrElse(seq, f)
	if !res.Ok {
		return g.None[O]()
	}
	return res.Value
}
