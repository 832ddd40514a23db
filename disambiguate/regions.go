// File: regions.go
// Role: Regions groups an unsolved-cell set into connected components —
// "the size of the ambiguity region" spec §8 scenario 5 refers to.
// Adapted from the teacher's gridgraph.ConnectedComponents: the same
// precomputed-offsets, visited-slice, BFS-per-unvisited-seed shape,
// narrowed from "components of equal-valued land cells" to "components
// of unsolved cells" (there is only one value, presence in U).
package disambiguate

// Connectivity selects 4- or 8-directional adjacency when grouping
// unsolved cells into regions.
type Connectivity int

const (
	// Conn4 groups cells sharing an edge (N, E, S, W).
	Conn4 Connectivity = iota
	// Conn8 additionally groups cells sharing only a corner.
	Conn8
)

func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	}

	return [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
}

// Region is one connected component of unsolved cells.
type Region []Cell

// Regions groups u into connected components under conn, scanning cells
// in row-major order so the result is deterministic.
func Regions(u []Cell, conn Connectivity) []Region {
	member := make(map[Cell]bool, len(u))
	for _, c := range u {
		member[c] = true
	}

	visited := make(map[Cell]bool, len(u))
	offsets := conn.offsets()
	var regions []Region

	for _, seed := range u {
		if visited[seed] {
			continue
		}
		queue := []Cell{seed}
		visited[seed] = true
		var region Region

		for i := 0; i < len(queue); i++ {
			cur := queue[i]
			region = append(region, cur)
			for _, d := range offsets {
				n := Cell{Row: cur.Row + d[0], Col: cur.Col + d[1]}
				if !member[n] || visited[n] {
					continue
				}
				visited[n] = true
				queue = append(queue, n)
			}
		}
		regions = append(regions, region)
	}

	return regions
}
