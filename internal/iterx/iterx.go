// Package iterx holds the slice and iterator helpers the pipeline engine is
// built on. Every helper allocates its result; inputs are never modified.
package iterx

import (
	"iter"
)

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

// Map returns a new slice holding fn applied to each element of in.
func Map[In, Out any](in []In, fn func(In) Out) []Out {
	out := make([]Out, len(in))
	for i, item := range in {
		out[i] = fn(item)
	}
	return out
}

// FlatMap applies fn to each element and concatenates the results in order.
func FlatMap[In, Out any](in []In, fn func(In) []Out) []Out {
	out := make([]Out, 0, len(in))
	for _, item := range in {
		out = append(out, fn(item)...)
	}
	return out
}

// FilterMap applies fn to each element, keeping only the results for which
// fn reports true.
func FilterMap[In, Out any](in []In, fn func(In) (Out, bool)) []Out {
	out := make([]Out, 0, len(in))
	for _, item := range in {
		if v, ok := fn(item); ok {
			out = append(out, v)
		}
	}
	return out
}

func Filter[T any](in []T, keep func(T) bool) []T {
	return FilterMap(in, func(item T) (T, bool) {
		return item, keep(item)
	})
}

// Reverse returns a reversed copy of in.
func Reverse[T any](in []T) []T {
	out := make([]T, len(in))
	for i, item := range in {
		out[len(in)-1-i] = item
	}
	return out
}
