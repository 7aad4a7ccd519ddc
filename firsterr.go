// Package firsterr finds the first error in a fallible sequence while letting
// the caller keep iterating over the values lazily, without collecting into an
// intermediate slice.
//
// The usual way to reduce an iter.Seq2[T, error] is to either hand-write a
// loop, or collect into a ([]T, error) pair and iterate again. OrElse replaces
// both: it hands the caller a view of the successful values, runs the caller's
// reduction over it, and reports the first error anywhere in the source,
// whether or not the caller consumed that far.
//
//	sum, err := firsterr.OrElse(seq, func(it *firsterr.Iter[int]) (sum int) {
//		for v := range it.Values() {
//			sum += v
//		}
//		return
//	})
//
// If the source contains an error, the first one in source order is returned
// and the reduction's output is discarded. The source is never pulled more
// than one item ahead of demand, and never pulled again past the first error.
//
// The sibling package firstnone provides the same operation for sequences of
// Option values, keyed on absence instead of error.
package firsterr

import (
	"iter"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/missinggo/v2/panicif"
)

type state uint8

// Transitions are one-way: stateActive to one of the other two, then stuck.
const (
	stateActive state = iota
	stateFoundErr
	stateExhausted
)

// Iter yields the values of a fallible sequence up to, but not including, the
// first error. It is handed to the callback of OrElse and is only valid for
// the duration of that call. Iter retains the first error it encounters;
// OrElse claims it afterward.
type Iter[T any] struct {
	state state
	// Pull handle on the source. Only set while active.
	next func() (T, error, bool)
	stop func()
	// The first error in the source, set on transition to stateFoundErr.
	err error
	// Set once OrElse has reclaimed the adapter. Catches callbacks that leak
	// the Iter out of their scope.
	reclaimed bool
}

// Next returns the next successful value from the source. It returns false if
// the source is exhausted, or produced an error: the error is kept for OrElse
// and the source is not pulled again. Once Next returns false it always
// returns false, regardless of the source's own post-exhaustion behaviour.
func (me *Iter[T]) Next() (_ T, _ bool) {
	panicif.True(me.reclaimed)
	if me.state != stateActive {
		return
	}
	v, err, ok := me.next()
	switch {
	case !ok:
		me.leaveActive(stateExhausted)
	case err != nil:
		me.err = err
		me.leaveActive(stateFoundErr)
	default:
		return v, true
	}
	return
}

// Values is Next as a range-over-func sequence. The sequence is resumable: it
// shares the adapter's state, so breaking out and ranging again continues
// where the previous loop stopped.
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

// Scan the rest of the source for an error, skipping the adapter's fused
// value semantics. The callback may have stopped anywhere, or never pulled at
// all.
func (me *Iter[T]) finish() error {
	for me.state == stateActive {
		_, err, ok := me.next()
		switch {
		case !ok:
			me.leaveActive(stateExhausted)
		case err != nil:
			me.err = err
			me.leaveActive(stateFoundErr)
		}
	}
	return me.err
}

// OrElse returns the first error in seq, or f's output if there is none. f is
// called exactly once with an adapter yielding the values that precede the
// first error; it may consume as much or as little of it as it likes. After f
// returns, the rest of seq is drained looking for an error, so the result
// accounts for the entire source. An error anywhere in seq wins over f's
// output, and the first error in source order wins over later ones.
//
// seq is pulled one item per demand: f's consumption interleaves exactly with
// the source's production, and nothing is prefetched. The adapter must not be
// retained or used after f returns.
func OrElse[T, O any](seq iter.Seq2[T, error], f func(*Iter[T]) O) (O, error) {
	next, stop := iter.Pull2(seq)
	defer stop()
	it := Iter[T]{state: stateActive, next: next, stop: stop}
	output := f(&it)
	err := it.finish()
	it.reclaimed = true
	if err != nil {
		var zero O
		return zero, err
	}
	return output, nil
}

// Or returns the first error in seq, or value if there is none. The values in
// seq are discarded. Shorthand for OrElse with a callback that ignores the
// adapter.
func Or[T, O any](seq iter.Seq2[T, error], value O) (O, error) {
	return OrElse(seq, func(*Iter[T]) O { return value })
}

// OrTry is OrElse for fallible callbacks. An error in seq takes precedence
// over an error returned by f: f's error only surfaces when the whole source
// is error-free.
func OrTry[T, O any](seq iter.Seq2[T, error], f func(*Iter[T]) (O, error)) (O, error) {
	res, err := OrElse(seq, func(it *Iter[T]) g.Result[O] {
		return g.ResultFromTuple(f(it))
	})
	if err != nil {
		var zero O
		return zero, err
	}
	return res.AsTuple()
}

// Results adapts a sequence of Result values to the fallible-sequence shape.
// Useful for layering: an OrElse callback over values that are themselves
// results can apply Results to Iter.Values and recurse.
func Results[T any](seq iter.Seq[g.Result[T]]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for res := range seq {
			if !yield(res.Ok, res.Err) {
				return
			}
		}
	}
}
