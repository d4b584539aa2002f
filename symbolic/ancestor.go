// SPDX-License-Identifier: MIT

package symbolic

// AncestorTracker is an array-backed union-find over node indices 0..n-1.
// It uses path compression only, no union by rank: every link points a
// finished subtree at a node that is processed later.
//
// The zero value is empty; call Reset before use. A tracker is scratch and
// must not be shared between concurrent calls.
type AncestorTracker struct {
	anc []int
}

// Reset sizes the tracker for n nodes and makes every node its own root.
func (t *AncestorTracker) Reset(n int) {
	if cap(t.anc) < n {
		t.anc = make([]int, n)
	}
	t.anc = t.anc[:n]
	for i := range t.anc {
		t.anc[i] = i
	}
}

// Len returns the number of tracked nodes.
func (t *AncestorTracker) Len() int { return len(t.anc) }

// Attach walks the ancestor chain from i while the visited node is below k,
// re-pointing every visited node directly at k. It returns the root that was
// reached (a node that had no ancestor yet, which the caller adopts as a
// child of k), or -1 when the walk ended at k or at an already attached
// subtree of k. A negative i is ignored.
//
// This is the elimination tree's find step: after Attach, every node on the
// path shares k as its compressed ancestor.
func (t *AncestorTracker) Attach(i, k int) int {
	var next int
	for i != -1 && i < k {
		next = t.anc[i]
		t.anc[i] = k
		if next == i {
			return i
		}
		i = next
	}

	return -1
}

// Find returns the root of i and compresses the traversed path so every node
// on it points straight at the root.
func (t *AncestorTracker) Find(i int) int {
	root := i
	for root != t.anc[root] {
		root = t.anc[root]
	}
	for s := i; s != root; {
		next := t.anc[s]
		t.anc[s] = root
		s = next
	}

	return root
}

// Link makes parent the ancestor of child. child should be a root.
func (t *AncestorTracker) Link(child, parent int) {
	t.anc[child] = parent
}
