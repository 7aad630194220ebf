package render_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"

	"github.com/KasperOmsK/markpipe/internal/config"
	"github.com/KasperOmsK/markpipe/internal/render"
	"github.com/KasperOmsK/markpipe/markup"

	"github.com/stretchr/testify/require"
)

func renderList(t *testing.T, lc config.ListConfig) string {
	t.Helper()
	n, err := render.List(lc)
	require.NoError(t, err)
	return markup.String(n)
}

func TestList_Unordered(t *testing.T) {
	out := renderList(t, config.ListConfig{
		Kind:  config.KindUnordered,
		ID:    "fruits",
		Class: "plain",
		Items: []string{"apple", "banana"},
		Empty: "No fruit",
	})

	require.Equal(t, `<ul id="fruits" class="plain"><li>apple</li><li>banana</li></ul>`, out)
}

func TestList_SkipAndReverse(t *testing.T) {
	out := renderList(t, config.ListConfig{
		Kind:    config.KindOrdered,
		Items:   []string{"a", "b", "c"},
		Skip:    []string{"b"},
		Reverse: true,
	})

	require.Equal(t, "<ol><li>c</li><li>a</li></ol>", out)
}

func TestList_EverythingSkippedFallsBack(t *testing.T) {
	out := renderList(t, config.ListConfig{
		Kind:  config.KindUnordered,
		Items: []string{"a"},
		Skip:  []string{"a"},
		Empty: "nothing",
	})

	require.Equal(t, "<ul><li>nothing</li></ul>", out)
}

func TestList_Raw(t *testing.T) {
	out := renderList(t, config.ListConfig{
		Kind:  config.KindUnordered,
		Raw:   true,
		Items: []string{"<em>hot</em>", "<b>x</b> y"},
	})

	require.Equal(t, "<ul><li><em>hot</em></li><li><span><b>x</b> y</span></li></ul>", out)
}

func TestList_Description(t *testing.T) {
	out := renderList(t, config.ListConfig{
		Kind: config.KindDescription,
		ID:   "glossary",
		Entries: []config.EntryConfig{
			{Term: "Go", Definition: "A language"},
			{Term: "Rust", Definition: "Another one"},
		},
		Skip: []string{"Rust"},
	})

	require.Equal(t, `<dl id="glossary"><dt>Go</dt><dd>A language</dd></dl>`, out)
}

func TestList_DescriptionFallback(t *testing.T) {
	out := renderList(t, config.ListConfig{
		Kind:  config.KindDescription,
		Empty: "No terms",
	})

	require.Equal(t, "<div>No terms</div>", out)
}

func TestList_UnknownKind(t *testing.T) {
	_, err := render.List(config.ListConfig{Kind: "table"})

	require.ErrorIs(t, err, render.ErrUnknownKind)
}

func TestDocument(t *testing.T) {
	cfg := &config.Config{
		Title: "Pantry",
		Lists: []config.ListConfig{
			{Kind: config.KindUnordered, Items: []string{"tea"}},
			{Kind: config.KindOrdered, Empty: "none"},
		},
	}

	n, err := render.Document(cfg, zerolog.Nop())

	require.NoError(t, err)
	require.Equal(t, "<div><p>Pantry</p><ul><li>tea</li></ul><ol><li>none</li></ol></div>", markup.String(n))
}

func TestDocument_WarnsWhenEverythingIsEmpty(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	cfg := &config.Config{
		Lists: []config.ListConfig{
			{Kind: config.KindUnordered, Empty: "none"},
			{Kind: config.KindDescription, Empty: "none"},
		},
	}

	_, err := render.Document(cfg, log)

	require.NoError(t, err)
	require.Contains(t, buf.String(), `"level":"warn"`)
}

func TestDocument_WrapsListErrors(t *testing.T) {
	cfg := &config.Config{Lists: []config.ListConfig{{Kind: "table"}}}

	_, err := render.Document(cfg, zerolog.Nop())

	require.ErrorIs(t, err, render.ErrUnknownKind)
	require.ErrorContains(t, err, "lists[0]")
}
