package candidates

import (
	"errors"
	"math"

	"github.com/katalvlaran/stagecraft/geometry"
	"github.com/katalvlaran/stagecraft/stage"
)

// ErrLackOfCandidates is returned when a generator produces fewer
// candidate points than there are musicians to place.
var ErrLackOfCandidates = errors.New("candidates: generator produced fewer candidates than musicians")

// margin is the mandatory clearance from every stage edge (spec.md §3
// invariant 1, mirrored here so every generator starts from the same
// interior rectangle).
const margin = stage.StageMargin

// Generator produces a finite candidate point set for prob, respecting
// the stage-edge margin. It is the pluggable supplier interface: the four
// concrete generators below are provided, but any func matching this
// signature may be used in their place.
type Generator func(prob *stage.Problem) ([]geometry.Point, error)

// interior returns the stage's margin-padded interior rectangle as
// (bottomLeft, size).
func interior(prob *stage.Problem) (bottomLeft, size geometry.Point) {
	pad := geometry.Point{X: margin, Y: margin}
	bottomLeft = prob.StageFrom().Add(pad)
	size = prob.StageSize().Sub(geometry.Point{X: 2 * margin, Y: 2 * margin})
	return bottomLeft, size
}

func checkCount(points []geometry.Point, prob *stage.Problem) ([]geometry.Point, error) {
	if len(points) < len(prob.Musicians) {
		return nil, ErrLackOfCandidates
	}
	return points, nil
}

// Stretch generates a uniform m_row x m_col grid with one row/column per
// full 10 units of interior size, with the outermost row/column flush
// against the interior margin rectangle (the grid is "stretched" to fill
// it exactly), so adjacent rows and columns are at least 10 units apart
// (exactly 10 when the interior size is a multiple of 10).
func Stretch(prob *stage.Problem) ([]geometry.Point, error) {
	bottomLeft, size := interior(prob)
	cols := int(math.Floor(size.X/10.0)) + 1
	rows := int(math.Floor(size.Y/10.0)) + 1

	points := make([]geometry.Point, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := bottomLeft.X + stretchInterp(size.X, cols, col)
			y := bottomLeft.Y + stretchInterp(size.Y, rows, row)
			points = append(points, geometry.Point{X: x, Y: y})
		}
	}
	return checkCount(points, prob)
}

func stretchInterp(length float64, total, index int) float64 {
	if index == 0 {
		return 0
	}
	return length * float64(index) / float64(total-1)
}

// Corner generates candidates packed at spacing exactly 10 from each of
// the two nearest edges (halved toward the two sides), leaving slack in
// the interior.
func Corner(prob *stage.Problem) ([]geometry.Point, error) {
	bottomLeft, size := interior(prob)
	cols := int(math.Floor(size.X/10.0)) + 1
	rows := int(math.Floor(size.Y/10.0)) + 1

	points := make([]geometry.Point, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := bottomLeft.X + cornerInterp(size.X, cols, col, 10.0)
			y := bottomLeft.Y + cornerInterp(size.Y, rows, row, 10.0)
			points = append(points, geometry.Point{X: x, Y: y})
		}
	}
	return checkCount(points, prob)
}

func cornerInterp(length float64, total, index int, gap float64) float64 {
	if index*2 < total {
		return gap * float64(index)
	}
	rem := total - index - 1
	return length - 10.0*float64(rem)
}

// Diagonal generates a checkerboard grid with spacing ≈√50 (7.0711),
// keeping only cells where row+col is even; this leaves every remaining
// pair of candidates at least 10 units apart.
func Diagonal(prob *stage.Problem) ([]geometry.Point, error) {
	bottomLeft, size := interior(prob)
	const minDistance = 7.0711
	cols := int(math.Floor(size.X/minDistance)) + 1
	rows := int(math.Floor(size.Y/minDistance)) + 1

	points := checkerboard(bottomLeft, size, rows, cols)
	return checkCount(points, prob)
}

// checkerboard lays out a rows x cols grid spanning size starting at
// bottomLeft, uniformly spaced, keeping only cells where row+col is even.
func checkerboard(bottomLeft, size geometry.Point, rows, cols int) []geometry.Point {
	points := make([]geometry.Point, 0, (rows*cols+1)/2)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if (row+col)%2 == 1 {
				continue
			}
			x := bottomLeft.X
			if cols > 1 {
				x += float64(col) * size.X / float64(cols-1)
			}
			y := bottomLeft.Y
			if rows > 1 {
				y += float64(row) * size.Y / float64(rows-1)
			}
			points = append(points, geometry.Point{X: x, Y: y})
		}
	}
	return points
}

// Compressed packs more candidates into thin stages than Diagonal can, by
// searching for integer (rows, cols) maximizing a checkerboard with
// sub_w² + sub_h² ≤ 100 and sub_w ≥ 5, falling back to the 1-D case when
// one dimension is under 10.
func Compressed(prob *stage.Problem) ([]geometry.Point, error) {
	bottomLeft, size := interior(prob)

	var points []geometry.Point
	switch {
	case size.X < 10:
		subH := math.Max(math.Sqrt(100-size.X*size.X), 5.0)
		rows := int(math.Floor(size.Y / subH))
		points = checkerboard(bottomLeft, size, rows, 2)
	case size.Y < 10:
		subW := math.Max(math.Sqrt(100-size.Y*size.Y), 5.0)
		cols := int(math.Floor(size.X / subW))
		points = checkerboard(bottomLeft, size, 2, cols)
	default:
		bestCount, bestRows, bestCols := 0, 0, 0
		for cols := 2; ; cols++ {
			subW := size.X / float64(cols-1)
			if subW < 5 {
				break
			}
			if subW*subW > 75 {
				continue
			}
			subH := math.Sqrt(100 - subW*subW)
			rows := int(math.Floor(size.Y / subH))
			count := (rows*cols + 1) / 2
			if count > bestCount {
				bestCount, bestRows, bestCols = count, rows, cols
			}
		}
		points = checkerboard(bottomLeft, size, bestRows, bestCols)
	}
	return checkCount(points, prob)
}

// Variants returns the four candidate generators in the fixed order the
// driver iterates them, so tests and the driver agree on indexing.
func Variants() []Generator {
	return []Generator{Stretch, Corner, Diagonal, Compressed}
}
