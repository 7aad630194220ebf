package markpipe

import (
	"fmt"
	"iter"
	"slices"

	"github.com/KasperOmsK/markpipe/internal/iterx"
)

// Pipeline is an immutable, fully materialized sequence of rendered items
// that is either in the success state or in the fallback state.
//
// The zero value is an empty success pipeline.
type Pipeline[T any] struct {
	items    []T
	fallback bool
}

// IsFallback reports whether p is in the fallback state.
func (p Pipeline[T]) IsFallback() bool {
	return p.fallback
}

// Len returns the number of items in the active branch.
func (p Pipeline[T]) Len() int {
	return len(p.items)
}

// All returns an iterator over the items of the active branch.
func (p Pipeline[T]) All() iter.Seq[T] {
	return iterx.FromSlice(p.items)
}

// String formats p as Success[...] or Fallback[...], for debugging.
func (p Pipeline[T]) String() string {
	state := "Success"
	if p.fallback {
		state = "Fallback"
	}
	return fmt.Sprintf("%s%v", state, p.items)
}

// Map applies fn to every item of the active branch. The state is preserved.
func (p Pipeline[T]) Map(fn RenderFunc[T, T]) Pipeline[T] {
	return Pipeline[T]{
		items:    iterx.Map(p.items, fn),
		fallback: p.fallback,
	}
}

// MapTag replaces every item of the active branch with wrap applied to a
// single-element slice holding that item. It is typically used to give each
// rendered item its own parent element, e.g. a list item.
func (p Pipeline[T]) MapTag(wrap Tag[T]) Pipeline[T] {
	return p.Map(func(item T) T {
		return wrap([]T{item})
	})
}

// Filter keeps the items of the active branch for which predicate returns
// true.
//
// Filter never changes the state: a success pipeline emptied by Filter is
// still a success pipeline. Use Empty to turn it into a fallback.
func (p Pipeline[T]) Filter(predicate Predicate[T]) Pipeline[T] {
	return Pipeline[T]{
		items:    iterx.Filter(p.items, predicate),
		fallback: p.fallback,
	}
}

// Backwards reverses the order of the active branch.
func (p Pipeline[T]) Backwards() Pipeline[T] {
	return Pipeline[T]{
		items:    iterx.Reverse(p.items),
		fallback: p.fallback,
	}
}

// Negate swaps the state, leaving the items untouched: a success pipeline
// becomes a fallback one and vice versa.
func (p Pipeline[T]) Negate() Pipeline[T] {
	return Pipeline[T]{
		items:    p.items,
		fallback: !p.fallback,
	}
}

// Empty declares what to render when there is nothing to render.
//
// A success pipeline holding at least one item is returned unchanged.
// Otherwise, that is when p is an empty success or any fallback, the result
// is a fallback holding exactly the given items. Calling Empty on a fallback
// replaces its previous content, the last call wins.
func (p Pipeline[T]) Empty(fallback ...T) Pipeline[T] {
	if !p.fallback && len(p.items) > 0 {
		return p
	}
	return Pipeline[T]{
		items:    slices.Clone(fallback),
		fallback: true,
	}
}

// AsChildren returns a copy of the items of the active branch, regardless of
// the state.
func (p Pipeline[T]) AsChildren() []T {
	return slices.Clone(p.items)
}

// AsRoot wraps the active branch under a single parent. Both states render
// under the same wrapper.
func (p Pipeline[T]) AsRoot(wrap Tag[T]) T {
	return wrap(p.AsChildren())
}

// Unwrap wraps the active branch with wrapFallback when p is a fallback and
// with wrapSuccess otherwise.
func (p Pipeline[T]) Unwrap(wrapFallback, wrapSuccess Tag[T]) T {
	if p.fallback {
		return wrapFallback(p.AsChildren())
	}
	return wrapSuccess(p.AsChildren())
}

// MapBoth transforms every item with fn, changing the element type. The state
// is preserved and fn is applied whichever state p is in.
//
// MapBoth is a function rather than a method because methods cannot
// introduce type parameters.
func MapBoth[In, Out any](p Pipeline[In], fn RenderFunc[In, Out]) Pipeline[Out] {
	return Pipeline[Out]{
		items:    iterx.Map(p.items, fn),
		fallback: p.fallback,
	}
}
