// Package seqtrace records the interleaving of sequence production and
// consumption, for tests that assert on laziness and pull counts.
package seqtrace

import (
	"fmt"
	"iter"
)

// Recorder accumulates event strings in the order they occur. The zero value
// is ready to use.
type Recorder struct {
	events []string
}

func (me *Recorder) Addf(format string, args ...any) {
	me.events = append(me.events, fmt.Sprintf(format, args...))
}

func (me *Recorder) Events() []string {
	return me.events
}

func (me *Recorder) Len() int {
	return len(me.events)
}

// Tap records an event for each item the sequence produces, before passing it
// on to the consumer.
func Tap[T any](r *Recorder, seq iter.Seq[T], format func(T) string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			r.Addf("%s", format(v))
			if !yield(v) {
				return
			}
		}
	}
}

// Tap2 is Tap for two-value sequences.
func Tap2[K, V any](r *Recorder, seq iter.Seq2[K, V], format func(K, V) string) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range seq {
			r.Addf("%s", format(k, v))
			if !yield(k, v) {
				return
			}
		}
	}
}
