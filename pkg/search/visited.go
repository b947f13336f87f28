package search

import (
	"context"

	"github.com/herohde/klotski/pkg/board"
	"github.com/seekerror/logw"
)

// VisitedHistory bounds a BFS's memory use by remembering only the boards
// seen at the current and two preceding depths, rather than every board
// seen over the whole search. A solved double-move puzzle can only ever
// revisit a board two steps back (by undoing the two most recent single
// moves), so three generations are enough to fold all genuine repeats
// without retaining the unbounded full history a plain set would need.
type VisitedHistory struct {
	depth                          int
	current, previous, prePrevious map[board.BoardKey]struct{}
}

// NewVisitedHistory returns an empty VisitedHistory ready for depth 0.
func NewVisitedHistory() *VisitedHistory {
	return &VisitedHistory{current: map[board.BoardKey]struct{}{}}
}

// TryVisit admits key at depth if it has not been seen at the current depth
// or either of the two preceding ones, recording it if so. depth must be
// non-decreasing across calls.
func (h *VisitedHistory) TryVisit(ctx context.Context, key board.BoardKey, depth int) bool {
	if depth > h.depth {
		logw.Debugf(ctx, "visited history: rotating generations, depth %v -> %v (%v boards retired)", h.depth, depth, len(h.prePrevious))
		h.prePrevious = h.previous
		h.previous = h.current
		h.current = map[board.BoardKey]struct{}{}
		h.depth = depth
	}

	if _, ok := h.current[key]; ok {
		return false
	}
	if _, ok := h.previous[key]; ok {
		return false
	}
	if _, ok := h.prePrevious[key]; ok {
		return false
	}

	h.current[key] = struct{}{}
	return true
}
