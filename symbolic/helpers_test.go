// SPDX-License-Identifier: MIT
package symbolic_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/csc"
)

// loadTrees reads testdata/trees.yaml.
func loadTrees(t *testing.T) []csc.Fixture {
	t.Helper()
	f, err := os.Open("testdata/trees.yaml")
	require.NoError(t, err)
	defer f.Close()

	fx, err := csc.LoadFixtures(f)
	require.NoError(t, err)
	require.NotEmpty(t, fx)

	return fx
}

// pathExists follows parent from start and reports whether it reaches end.
func pathExists(parent []int, start, end int) bool {
	i := start
	for i != -1 && i < end {
		i = parent[i]
	}

	return i == end
}
