// Package lists renders collections as HTML lists, each with a fallback for
// the empty collection.
package lists

import (
	"github.com/KasperOmsK/markpipe"
	"github.com/KasperOmsK/markpipe/markup"
)

// Unordered renders items as the <li> children of a <ul>. When items is
// empty, the <ul> holds the fallback nodes instead, each in its own <li>.
func Unordered[T any](items []T, render markpipe.RenderFunc[T, markup.Node], fallback ...markup.Node) markup.Node {
	return listOf(markup.Ul, items, render, fallback)
}

// Ordered is like Unordered but renders an <ol>.
func Ordered[T any](items []T, render markpipe.RenderFunc[T, markup.Node], fallback ...markup.Node) markup.Node {
	return listOf(markup.Ol, items, render, fallback)
}

// Tagged is like Unordered with a caller-supplied list element, typically
// one built with markup.Element to carry attributes.
func Tagged[T any](list markpipe.Tag[markup.Node], items []T, render markpipe.RenderFunc[T, markup.Node], fallback ...markup.Node) markup.Node {
	return listOf(list, items, render, fallback)
}

func listOf[T any](list markpipe.Tag[markup.Node], items []T, render markpipe.RenderFunc[T, markup.Node], fallback []markup.Node) markup.Node {
	return markpipe.ItemsOf(render, items).
		Empty(fallback...).
		MapTag(markup.Li).
		AsRoot(list)
}

// Description renders pairs as consecutive <dt>/<dd> children of a <dl>.
//
// A <dl> without terms is meaningless, so when pairs is empty the fallback
// nodes are rendered inside a <div> instead.
func Description[A, B any](
	pairs []markpipe.Pair[A, B],
	renderTerm markpipe.RenderFunc[A, markup.Node],
	renderDef markpipe.RenderFunc[B, markup.Node],
	fallback ...markup.Node) markup.Node {

	term := func(a A) markup.Node { return markup.Dt([]markup.Node{renderTerm(a)}) }
	def := func(b B) markup.Node { return markup.Dd([]markup.Node{renderDef(b)}) }

	return markpipe.PairsOf(term, def, pairs).
		Empty(fallback...).
		Unwrap(markup.Div, markup.Dl)
}
