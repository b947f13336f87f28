// Package search implements a generic breadth-first path search, parameterized
// over the state type and the goal/expansion/visited predicates, together
// with the visited-history bookkeeping that bounds its memory use.
package search

// Node is one step of a BFS traversal. Parent chains form a tree rooted at
// the search's start state; a goal Node's ancestor chain is the found path.
// Unlike the reference implementation's Rc-counted node, a plain pointer is
// enough here: the Go garbage collector keeps a shared parent alive for as
// long as any child still points to it.
type Node[T any] struct {
	State  T
	Depth  int
	Parent *Node[T]
}

// Path reconstructs the sequence of states from the search root to n,
// inclusive.
func (n *Node[T]) Path() []T {
	var reversed []T
	for cur := n; cur != nil; cur = cur.Parent {
		reversed = append(reversed, cur.State)
	}
	path := make([]T, len(reversed))
	for i, s := range reversed {
		path[len(reversed)-1-i] = s
	}
	return path
}

// Stats reports the cost of a FindPath run, independent of whether it
// succeeded.
type Stats struct {
	Visited int // states admitted by TryVisit, including the start state
	Depth   int // depth at which the goal was found, or the deepest depth reached
}

// IsGoalFunc reports whether state satisfies the search's termination
// condition.
type IsGoalFunc[T any] func(state T) bool

// NeighborsFunc returns every state reachable from state in one step, in a
// deterministic order.
type NeighborsFunc[T any] func(state T) []T

// TryVisitFunc admits state at the given depth into the search, returning
// false if it should be skipped (because it was already visited, or is out
// of scope for any other reason). It is expected to record the admission as
// a side effect.
type TryVisitFunc[T any] func(state T, depth int) bool

// FindPath performs a breadth-first search from start, expanding states with
// neighbors and admitting them with tryVisit, until isGoal reports true for
// some state. It returns the path from start to that state, inclusive, and
// whether a goal was found at all.
func FindPath[T any](start T, isGoal IsGoalFunc[T], neighbors NeighborsFunc[T], tryVisit TryVisitFunc[T]) ([]T, Stats, bool) {
	root := &Node[T]{State: start}
	stats := Stats{}

	if !tryVisit(start, 0) {
		return nil, stats, false
	}
	stats.Visited++

	if isGoal(start) {
		return root.Path(), stats, true
	}

	queue := []*Node[T]{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		depth := cur.Depth + 1

		for _, next := range neighbors(cur.State) {
			if !tryVisit(next, depth) {
				continue
			}
			stats.Visited++
			stats.Depth = depth

			node := &Node[T]{State: next, Depth: depth, Parent: cur}
			if isGoal(next) {
				return node.Path(), stats, true
			}
			queue = append(queue, node)
		}
	}
	return nil, stats, false
}
