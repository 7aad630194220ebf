package markpipe

import (
	"iter"
	"slices"

	"github.com/KasperOmsK/markpipe/internal/iterx"
)

type (

	// RenderFunc is a pure rendering function that turns a value of type In
	// into a rendered item of type Out.
	RenderFunc[In, Out any] func(in In) Out

	// PartsFunc renders one value into zero or more items. Used by PartsOf.
	PartsFunc[In, Out any] func(in In) []Out

	// TryRenderFunc is a rendering function that may yield nothing.
	//
	// Values for which it returns false are dropped from the pipeline.
	TryRenderFunc[In, Out any] func(in In) (Out, bool)

	// Predicate represents a filtering function that returns true when the
	// provided item should be kept.
	Predicate[T any] func(item T) bool

	// Tag wraps a list of children under a single parent, e.g. a list element
	// wrapping its list items.
	Tag[T any] func(children []T) T
)

// Pair holds two values rendered side by side by PairsOf, such as a term and
// its definition.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// From returns a success pipeline holding items, in order.
func From[T any](items []T) Pipeline[T] {
	return Pipeline[T]{items: slices.Clone(items)}
}

// FromSeq materializes seq into a success pipeline. seq must be finite.
func FromSeq[T any](seq iter.Seq[T]) Pipeline[T] {
	return Pipeline[T]{items: slices.Collect(seq)}
}

// Error returns a fallback pipeline holding the single item.
func Error[T any](item T) Pipeline[T] {
	return Pipeline[T]{items: []T{item}, fallback: true}
}

// ItemsOf renders each value with render and returns a success pipeline of
// the results.
func ItemsOf[In, Out any](render RenderFunc[In, Out], items []In) Pipeline[Out] {
	return Pipeline[Out]{items: iterx.Map(items, render)}
}

// PartsOf renders each value into a slice of items and returns a success
// pipeline holding all of them, concatenated in order.
//
// ItemsOf is equivalent to PartsOf with a render function returning a
// single-element slice.
func PartsOf[In, Out any](render PartsFunc[In, Out], items []In) Pipeline[Out] {
	return Pipeline[Out]{items: iterx.FlatMap(items, render)}
}

// PairsOf renders each pair as two consecutive items, the first rendered with
// renderFirst and the second with renderSecond.
//
// PairsOf is equivalent to calling PartsOf with a function returning
// []Out{renderFirst(p.First), renderSecond(p.Second)}.
func PairsOf[A, B, Out any](renderFirst RenderFunc[A, Out], renderSecond RenderFunc[B, Out], pairs []Pair[A, B]) Pipeline[Out] {
	return PartsOf[Pair[A, B], Out](func(p Pair[A, B]) []Out {
		return []Out{renderFirst(p.First), renderSecond(p.Second)}
	}, pairs)
}

// TryItemsOf renders each value with render, dropping the values for which
// render yields nothing. The order of the remaining items is preserved.
func TryItemsOf[In, Out any](render TryRenderFunc[In, Out], items []In) Pipeline[Out] {
	return Pipeline[Out]{items: iterx.FilterMap(items, render)}
}
