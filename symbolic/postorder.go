// SPDX-License-Identifier: MIT

package symbolic

import "github.com/katalvlaran/lvsparse/csc"

// PostorderWork is reusable scratch for Postorder. The zero value is ready.
type PostorderWork struct {
	head  csc.IntBuffer // youngest unvisited child of each node
	next  csc.IntBuffer // next sibling
	stack csc.IntBuffer // explicit DFS stack
}

// Postorder writes a postordering of the forest described by parent[:n]
// into post[:n]: every node appears after all of its descendants, and the
// descendants of a node occupy the ranks immediately before it.
//
// Children lists are built by scanning nodes in reverse, so children are
// visited in ascending index order and roots likewise. The traversal uses an
// explicit stack; a degenerate chain of n nodes needs O(n) heap, not call stack.
//
// Panics with ErrShortBuffer when parent or post is shorter than n.
//
// Complexity: O(n).
func Postorder(parent []int, n int, post []int, work *PostorderWork) {
	if len(parent) < n || len(post) < n {
		panic(symbolicErrorf(opPostorder, ErrShortBuffer))
	}
	if work == nil {
		work = &PostorderWork{}
	}
	head := csc.Adjust(&work.head, n)
	next := csc.Adjust(&work.next, n)
	stack := csc.Adjust(&work.stack, n)

	// 1. Empty child lists.
	for j := 0; j < n; j++ {
		head[j] = -1
	}
	// 2. Push children in reverse so the youngest (smallest) is at the head.
	for j := n - 1; j >= 0; j-- {
		if parent[j] == -1 {
			continue
		}
		next[j] = head[parent[j]]
		head[parent[j]] = j
	}
	// 3. DFS from every root.
	k := 0
	for j := 0; j < n; j++ {
		if parent[j] != -1 {
			continue
		}
		k = postorderFrom(j, k, head, next, stack, post)
	}
}

// postorderFrom emits the subtree rooted at root into post starting at rank k
// and returns the next free rank. head is consumed as the traversal advances.
func postorderFrom(root, k int, head, next, stack, post []int) int {
	top := 0
	stack[top] = root
	var p, child int
	for top >= 0 {
		p = stack[top]
		child = head[p]
		if child == -1 {
			// all children done
			top--
			post[k] = p
			k++
			continue
		}
		head[p] = next[child]
		top++
		stack[top] = child
	}

	return k
}

// IsPostorder reports whether post[:n] is a permutation in which every node
// of the forest parent[:n] is ranked after its descendants, with the
// descendants filling the contiguous ranks just before it.
func IsPostorder(parent, post []int, n int) bool {
	if len(parent) < n || len(post) < n {
		return false
	}
	rank := make([]int, n)
	for i := range rank {
		rank[i] = -1
	}
	for k := 0; k < n; k++ {
		j := post[k]
		if j < 0 || j >= n || rank[j] != -1 {
			return false
		}
		rank[j] = k
	}

	// subtree sizes, accumulated child to parent in postorder
	size := make([]int, n)
	for k := 0; k < n; k++ {
		j := post[k]
		size[j]++
		if p := parent[j]; p != -1 {
			if rank[p] <= k {
				return false
			}
			size[p] += size[j]
		}
	}
	// subtree of j must fill the window [rank[j]-size[j]+1, rank[j]]; nested
	// child windows plus matching sizes make that exact
	for j := 0; j < n; j++ {
		if p := parent[j]; p != -1 {
			if rank[j]-size[j] < rank[p]-size[p] {
				return false
			}
		}
	}

	return true
}
