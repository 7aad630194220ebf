/*
Package markpipe provides composable combinators for building markup trees
from collections of data, with a uniform way to say what to render when the
collection turns out to be empty.

This package is built around the Pipeline type. A Pipeline[T] holds an
ordered, fully materialized sequence of rendered items of type T and is in one
of two states: success, the normal rendering, or fallback, the alternative
rendering used when the normal case is empty or otherwise overridden.

A pipeline is used in three steps:

  - construct it from data (From, ItemsOf, PartsOf, PairsOf, TryItemsOf, Error),
  - transform it (Map, MapTag, Filter, Backwards, Negate, Empty, MapBoth),
  - collapse it into a single result (AsRoot, Unwrap, AsChildren).

Pipelines are immutable values: every transformation returns a new Pipeline.
No operation can fail. The fallback state is not an error condition but a
rendering branch selected by the caller, typically through Empty.

Example of a list that falls back to a message when there is nothing to show:

	// Render each user name as a text node, wrapped in its own <li>.
	node := markpipe.ItemsOf(markup.Text, names).
		Empty(markup.Text("no users yet")).
		MapTag(markup.Li).
		AsRoot(markup.Ul)

	// node is either <ul><li>alice</li><li>bob</li></ul>
	// or <ul><li>no users yet</li></ul>.

When the two states need different parents, use Unwrap:

	node := markpipe.ItemsOf(markup.Text, names).
		Empty(markup.Text("no users yet")).
		Unwrap(markup.P, markup.Ul)

Render functions that may produce nothing are handled by TryItemsOf, which
drops the absent results while keeping the order of the others.

The markup package provides ready-made Node and Tag values over
golang.org/x/net/html, and the lists package builds the common list shapes on
top of this package.
*/
package markpipe
