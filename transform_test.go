package markpipe_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/KasperOmsK/markpipe"

	"github.com/stretchr/testify/require"
)

func TestItemsOf_RendersInOrder(t *testing.T) {
	p := markpipe.ItemsOf(strconv.Itoa, []int{1, 2, 3})

	require.False(t, p.IsFallback())
	require.Equal(t, []string{"1", "2", "3"}, p.AsChildren())
}

func TestItemsOf_Empty(t *testing.T) {
	p := markpipe.ItemsOf(strconv.Itoa, nil)

	require.False(t, p.IsFallback())
	require.Zero(t, p.Len())
}

func TestItemsOf_ThenEmpty(t *testing.T) {
	identity := func(s string) string { return s }
	list := func(children []string) string { return "list(" + strings.Join(children, ",") + ")" }

	nonEmpty := markpipe.ItemsOf(identity, []string{"a", "b"}).Empty("none").AsRoot(list)
	empty := markpipe.ItemsOf(identity, []string{}).Empty("none").AsRoot(list)

	require.Equal(t, "list(a,b)", nonEmpty)
	require.Equal(t, "list(none)", empty)
}

func TestPartsOf_FlattensInOrder(t *testing.T) {
	p := markpipe.PartsOf(func(s string) []string {
		return strings.Split(s, ",")
	}, []string{"a,b", "c", "d,e,f"})

	require.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, p.AsChildren())
}

func TestPartsOf_EmptyParts(t *testing.T) {
	p := markpipe.PartsOf(func(int) []string { return nil }, []int{1, 2})

	require.False(t, p.IsFallback())
	require.Zero(t, p.Len())
}

func TestPairsOf_InterleavesFirstAndSecond(t *testing.T) {
	term := func(s string) string { return "dt:" + s }
	def := func(n int) string { return "dd:" + strconv.Itoa(n) }

	p := markpipe.PairsOf(term, def, []markpipe.Pair[string, int]{
		markpipe.PairOf("one", 1),
		markpipe.PairOf("two", 2),
	})

	require.Equal(t, []string{"dt:one", "dd:1", "dt:two", "dd:2"}, p.AsChildren())
}

func TestTryItemsOf_DropsAbsentKeepsOrder(t *testing.T) {
	p := markpipe.TryItemsOf(func(v int) (string, bool) {
		if v == 2 {
			return "", false
		}
		return strconv.Itoa(v), true
	}, []int{1, 2, 3})

	require.False(t, p.IsFallback())
	require.Equal(t, []string{"1", "3"}, p.AsChildren())
}

func TestTryItemsOf_AllAbsentStaysSuccess(t *testing.T) {
	p := markpipe.TryItemsOf(func(int) (string, bool) { return "", false }, []int{1, 2})

	require.False(t, p.IsFallback())
	require.True(t, p.Empty("none").IsFallback())
}
