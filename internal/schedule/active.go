package schedule

import (
	"container/heap"

	"git.lost.host/meutraa/lanes/internal/game"
)

// noteHeap orders notes by End, then Start, then chart position.
type noteHeap []*game.Note

func (h noteHeap) Len() int { return len(h) }

func (h noteHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.End != b.End {
		return a.End < b.End
	}
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.Seq < b.Seq
}

func (h noteHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *noteHeap) Push(x interface{}) { *h = append(*h, x.(*game.Note)) }

func (h *noteHeap) Pop() interface{} {
	old := *h
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*h = old[:len(old)-1]
	return n
}

// ActiveSet holds the notes that are currently judgeable or visible. The
// only mutations are Push and PopMin; Peek never disturbs the ordering.
type ActiveSet struct {
	h noteHeap
}

func (s *ActiveSet) Len() int {
	return len(s.h)
}

func (s *ActiveSet) Push(n *game.Note) {
	heap.Push(&s.h, n)
}

// Peek returns the note that will expire next, or nil.
func (s *ActiveSet) Peek() *game.Note {
	if len(s.h) == 0 {
		return nil
	}
	return s.h[0]
}

// PopMin removes and returns the note that expires next, or nil.
func (s *ActiveSet) PopMin() *game.Note {
	if len(s.h) == 0 {
		return nil
	}
	return heap.Pop(&s.h).(*game.Note)
}

// Each calls fn for every active note in no particular order. fn must not
// call back into the set.
func (s *ActiveSet) Each(fn func(n *game.Note)) {
	for _, n := range s.h {
		fn(n)
	}
}
