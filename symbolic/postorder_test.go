// SPDX-License-Identifier: MIT
package symbolic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/internal/sparsetest"
	"github.com/katalvlaran/lvsparse/symbolic"
)

func TestPostorderCases(t *testing.T) {
	cases := []struct {
		name   string
		parent []int
		want   []int // nil: only the postorder property is checked
	}{
		{
			name:   "textbook",
			parent: []int{5, 2, 7, 5, 7, 6, 8, 9, 9, 10, -1},
			want:   []int{1, 2, 4, 7, 0, 3, 5, 6, 8, 9, 10},
		},
		{
			name:   "islands",
			parent: []int{-1, -1, -1, -1, -1},
			want:   []int{0, 1, 2, 3, 4},
		},
		{
			name:   "two_roots",
			parent: []int{5, 2, 7, 5, 7, 6, 8, -1, -1},
		},
		{
			name:   "single",
			parent: []int{-1},
			want:   []int{0},
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			n := len(tc.parent)
			post := make([]int, n)
			symbolic.Postorder(tc.parent, n, post, nil)
			require.True(t, symbolic.IsPostorder(tc.parent, post, n), "post=%v", post)
			if tc.want != nil {
				require.Equal(t, tc.want, post)
			}
		})
	}
}

func TestPostorderFixtures(t *testing.T) {
	for _, fx := range loadTrees(t) {
		want, ok := fx.Ints["post"]
		if !ok {
			continue
		}
		parent := fx.Ints["parent"]
		post := make([]int, len(parent))
		symbolic.Postorder(parent, len(parent), post, nil)
		require.Equal(t, want, post, fx.Name)
	}
}

// TestPostorderDeepChain runs a path of 200k nodes, the shape produced by a
// dense triangular input; a recursive traversal would blow the stack budget.
func TestPostorderDeepChain(t *testing.T) {
	const n = 200_000
	parent := make([]int, n)
	for i := 0; i < n-1; i++ {
		parent[i] = i + 1
	}
	parent[n-1] = -1

	want := make([]int, n)
	for i := range want {
		want[i] = i
	}

	post := make([]int, n)
	symbolic.Postorder(parent, n, post, nil)
	require.Equal(t, want, post)
}

// TestPostorderRandomTrees checks random forests and that reused scratch
// gives identical output.
func TestPostorderRandomTrees(t *testing.T) {
	t.Parallel()

	rng := sparsetest.RNG(23)
	var work symbolic.PostorderWork
	for trial := 0; trial < 100; trial++ {
		n := 1 + rng.Intn(60)
		parent := make([]int, n)
		for i := 0; i < n; i++ {
			if i == n-1 || rng.Intn(5) == 0 {
				parent[i] = -1
			} else {
				parent[i] = i + 1 + rng.Intn(n-i-1)
			}
		}

		post := make([]int, n)
		symbolic.Postorder(parent, n, post, &work)
		require.True(t, symbolic.IsPostorder(parent, post, n))

		again := make([]int, n)
		symbolic.Postorder(parent, n, again, &work)
		require.Equal(t, post, again)
	}
}

func TestIsPostorderRejects(t *testing.T) {
	parent := []int{2, 2, -1}
	require.True(t, symbolic.IsPostorder(parent, []int{0, 1, 2}, 3))
	require.False(t, symbolic.IsPostorder(parent, []int{2, 0, 1}, 3)) // root first
	require.False(t, symbolic.IsPostorder(parent, []int{0, 0, 2}, 3)) // not a permutation

	// 0 -> 1 -> 3 and 2 -> 3: subtree of 1 is {0,1} and must be contiguous
	parent = []int{1, 3, 3, -1}
	require.True(t, symbolic.IsPostorder(parent, []int{0, 1, 2, 3}, 4))
	require.False(t, symbolic.IsPostorder(parent, []int{0, 2, 1, 3}, 4))
}

func TestPostorderShortPanics(t *testing.T) {
	require.Panics(t, func() { symbolic.Postorder([]int{-1}, 2, make([]int, 2), nil) })
	require.Panics(t, func() { symbolic.Postorder([]int{-1, -1}, 2, make([]int, 1), nil) })
}
