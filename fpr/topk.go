package fpr

import "container/heap"

// topKEntry is one (original index, score) pair held in the bounded heap.
type topKEntry struct {
	idx   int
	score float64
}

// topKHeap is a bounded min-heap over topKEntry, ordered so that the
// "worst" entry — lowest score, and on a score tie the larger original
// index — sorts first. Bounding the heap at capacity P and evicting the
// min on overflow keeps exactly the P best entries; draining the heap in
// pop order and reversing yields them in descending score order with ties
// broken by smaller original index first, matching topKSelect's contract.
//
// Modeled on sim/cluster/event_heap.go's EventHeap: a small struct
// implementing heap.Interface with an explicit, deterministic Less.
type topKHeap struct {
	entries []topKEntry
}

func (h *topKHeap) Len() int { return len(h.entries) }

func (h *topKHeap) Less(i, j int) bool {
	a, b := h.entries[i], h.entries[j]
	if a.score != b.score {
		return a.score < b.score
	}
	return a.idx > b.idx
}

func (h *topKHeap) Swap(i, j int) { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }

func (h *topKHeap) Push(x any) { h.entries = append(h.entries, x.(topKEntry)) }

func (h *topKHeap) Pop() any {
	old := h.entries
	n := len(old)
	item := old[n-1]
	h.entries = old[:n-1]
	return item
}

// topKSelect returns the indices of the top min(p, len(scores)) entries of
// scores, in descending score order, ties broken by smaller original index
// first. If isSorted is true, scores is trusted to already be descending
// and the identity slice is returned directly — callers are responsible
// for only setting isSorted when that is actually true for this call; see
// page_builder.go for the per-round re-check this hint requires once any
// score has been zeroed (ease_page_builder.go always passes false).
func topKSelect(scores []float64, p int, isSorted bool) []int {
	n := len(scores)
	if p > n {
		p = n
	}
	if p <= 0 {
		return []int{}
	}
	if isSorted {
		idx := make([]int, p)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}

	h := &topKHeap{entries: make([]topKEntry, 0, p)}
	heap.Init(h)
	for i := 0; i < n; i++ {
		heap.Push(h, topKEntry{idx: i, score: scores[i]})
		if h.Len() > p {
			heap.Pop(h)
		}
	}

	out := make([]int, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(topKEntry).idx
	}
	return out
}
