package markpipe_test

import (
	"testing"

	"github.com/KasperOmsK/markpipe"

	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	require.True(t, markpipe.IsEmpty([][]int{}))
	require.True(t, markpipe.IsEmpty[int](nil))
	require.True(t, markpipe.IsEmpty([][]int{{}}))
	require.True(t, markpipe.IsEmpty([][]int{nil, {}}))
	require.False(t, markpipe.IsEmpty([][]int{{}, {1}}))
	require.False(t, markpipe.IsEmpty([][]int{{1}, {}}))
}
