// Package pathfind finds the path of least energetic barrier between two
// points of a potential of mean force.
//
// The search runs over the implicit lattice graph of a surface: every grid
// cell is a vertex, joined to its 2·D axis-aligned neighbors (wrapping on
// periodic axes). It is a best-first expansion in the style of Prim's
// algorithm rather than additive Dijkstra: the frontier cell served next is
// the one whose own energy, plus an optional heuristic bias, is smallest.
// The cumulative sum along the path plays no role, so the returned path
// minimizes the highest energy crossed (the barrier), not the total.
//
// Lifecycle of a cell:
//
//	unvisited -> open (parent recorded on first entry) -> closed
//
// An open cell is never re-added and a closed cell is never re-examined.
// The search stops successfully when the end cell is closed; if the open set
// drains first, Run returns ErrUnreachable.
//
// Ties on priority are served in the order cells entered the open set
// (first in, first out), which makes the path and the explored sequence a
// pure function of the inputs.
//
// Complexity:
//
//   - Time:  O(V·(D + log V)); every cell is opened and closed at most once.
//   - Space: O(V) for states, parents and the heap.
//
// Heuristics:
//
//   - ZeroHeuristic (default): unbiased bottleneck search.
//   - Finder.ManhattanPotential: Σ_targets Σ_axes distance·force, with
//     periodic axis distances. The bias is best-effort and not admissible.
//
// Options:
//
//   - WithBarrierThreshold(t): cells whose energy is NaN or >= t are never
//     entered. The default, +Inf, excludes only infinite and NaN cells.
//   - WithLogger(l): debug records for search start and finish.
//
// Example:
//
//	path, err := pathfind.Search(surface, pathfind.Request{
//	    Start:    []float64{-1.5, 0},
//	    End:      []float64{1.5, 0},
//	    Periodic: []bool{true, false},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(path.Barrier())
package pathfind
