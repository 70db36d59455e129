package gridgraph

import "fmt"

// LevelRegions finds all contiguous regions of cells of x (a row-major
// vertex vector, typically a reshaped solution) whose neighboring values
// agree within the relative tolerance tol, according to gg.Conn
// connectivity. Each region is a slice of cell indices in breadth-first
// order from its first cell in row-major order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) LevelRegions(x []float64, tol float64) ([][]int, error) {
	total := gg.NumVertices()
	if len(x) != total {
		return nil, fmt.Errorf("LevelRegions: len=%d for %dx%d: %w", len(x), gg.Width, gg.Height, ErrSizeMismatch)
	}
	seen := make([]bool, total)
	var regions [][]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ux, uy := gg.Coordinate(u)
			for _, d := range gg.neighborOffsets {
				// forward offsets and their mirrors cover the full neighborhood
				for _, s := range [2]int{1, -1} {
					vx, vy := ux+s*d[0], uy+s*d[1]
					if !gg.InBounds(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] && closeValues(x[u], x[vi], tol) {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
		}
		regions = append(regions, queue)
	}

	return regions, nil
}
