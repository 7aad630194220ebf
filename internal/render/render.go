// Package render turns a configured document into a markup tree.
package render

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/KasperOmsK/markpipe"
	"github.com/KasperOmsK/markpipe/internal/config"
	"github.com/KasperOmsK/markpipe/lists"
	"github.com/KasperOmsK/markpipe/markup"
)

var ErrUnknownKind = errors.New("unknown list kind")

// Document renders every list of cfg, preceded by the title if any, inside a
// single <div>.
func Document(cfg *config.Config, log zerolog.Logger) (markup.Node, error) {
	var children []markup.Node
	if cfg.Title != "" {
		children = append(children, markup.P([]markup.Node{markup.Text(cfg.Title)}))
	}

	for i, lc := range cfg.Lists {
		n, err := List(lc)
		if err != nil {
			return nil, fmt.Errorf("lists[%d]: %w", i, err)
		}
		log.Debug().Int("index", i).Str("kind", lc.Kind).Str("id", lc.ID).Msg("rendered list")
		children = append(children, n)
	}

	if markpipe.IsEmpty(contents(cfg.Lists)) {
		log.Warn().Int("lists", len(cfg.Lists)).Msg("nothing to render, only fallbacks are shown")
	}

	return markpipe.From(children).AsRoot(markup.Div), nil
}

// List renders a single list.
func List(lc config.ListConfig) (markup.Node, error) {
	var fallback []markup.Node
	if lc.Empty != "" {
		fallback = append(fallback, markup.Text(lc.Empty))
	}

	var (
		n   markup.Node
		err error
	)
	switch lc.Kind {
	case config.KindUnordered, "":
		n, err = itemList(lc, lists.Unordered[string], fallback)
	case config.KindOrdered:
		n, err = itemList(lc, lists.Ordered[string], fallback)
	case config.KindDescription:
		n = descriptionList(lc, fallback)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, lc.Kind)
	}
	if err != nil {
		return nil, err
	}

	if lc.ID != "" {
		n.Attr = append(n.Attr, markup.Attr("id", lc.ID))
	}
	if lc.Class != "" {
		n.Attr = append(n.Attr, markup.Attr("class", lc.Class))
	}
	return n, nil
}

type listFunc func(items []string, render markpipe.RenderFunc[string, markup.Node], fallback ...markup.Node) markup.Node

func itemList(lc config.ListConfig, list listFunc, fallback []markup.Node) (markup.Node, error) {
	items := kept(lc, lc.Items, func(s string) string { return s })

	render := markpipe.RenderFunc[string, markup.Node](markup.Text)
	if lc.Raw {
		fragments := make(map[string]markup.Node, len(items))
		for _, s := range items {
			nodes, err := markup.Fragment(s)
			if err != nil {
				return nil, err
			}
			fragments[s] = single(nodes)
		}
		render = func(s string) markup.Node { return fragments[s] }
	}

	return list(items, render, fallback...), nil
}

func descriptionList(lc config.ListConfig, fallback []markup.Node) markup.Node {
	entries := kept(lc, lc.Entries, func(e config.EntryConfig) string { return e.Term })

	pairs := markpipe.ItemsOf(func(e config.EntryConfig) markpipe.Pair[string, string] {
		return markpipe.PairOf(e.Term, e.Definition)
	}, entries).AsChildren()

	return lists.Description(pairs, markup.Text, markup.Text, fallback...)
}

// kept drops the values whose key is listed in lc.Skip and applies
// lc.Reverse.
func kept[T any](lc config.ListConfig, values []T, key func(T) string) []T {
	p := markpipe.TryItemsOf(func(v T) (T, bool) {
		return v, !slices.Contains(lc.Skip, key(v))
	}, values)
	if lc.Reverse {
		p = p.Backwards()
	}
	return p.AsChildren()
}

// single returns the only node of nodes, or a <span> holding all of them.
func single(nodes []markup.Node) markup.Node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	return markup.Span(nodes)
}

func contents(ls []config.ListConfig) [][]string {
	out := make([][]string, 0, len(ls))
	for _, lc := range ls {
		out = append(out, lc.Items)
		out = append(out, markpipe.ItemsOf(func(e config.EntryConfig) string {
			return e.Term
		}, lc.Entries).AsChildren())
	}
	return out
}
