package hungarian

import "math"

// inf stands in for "forbidden" within the augmenting-path search; it must
// stay far below math.MaxFloat64 so subtracting potentials never overflows.
const inf = math.MaxFloat64 / 2

// SolveAssignment solves the square minimum-cost perfect assignment problem
// via Kuhn-Munkres with potentials u,v and a way predecessor array
// (Jonker-Volgenant variant). It returns rowToCol such that rowToCol[i] is
// the column assigned to row i, minimizing Σ cost[i][rowToCol[i]].
//
// Internally the classic algorithm is 1-indexed (column 0 is a virtual
// "unassigned" sentinel); callers never see that shift.
func SolveAssignment(cost [][]float64) ([]int, error) {
	dim := len(cost)
	if dim == 0 {
		return nil, ErrEmptyMatrix
	}
	for _, row := range cost {
		if len(row) != dim {
			return nil, ErrNonSquare
		}
	}

	u := make([]float64, dim+1)
	v := make([]float64, dim+1)
	p := make([]int, dim+1) // p[j] = row currently assigned to column j (1-indexed), 0 = none
	way := make([]int, dim+1)

	for i := 1; i <= dim; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, dim+1)
		used := make([]bool, dim+1)
		for j := range minv {
			minv[j] = inf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1

			for j := 1; j <= dim; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			for j := 0; j <= dim; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			p[j0] = p[way[j0]]
			j0 = way[j0]
		}
	}

	rowToCol := make([]int, dim)
	for j := 1; j <= dim; j++ {
		if p[j] > 0 {
			rowToCol[p[j]-1] = j - 1
		}
	}
	return rowToCol, nil
}
