package pattern

import "math"

func floor(x float64) int { return int(math.Floor(x)) }

func gradient(i, j int, p Params, _ Rand) int {
	pos := float64(i*p.Cols+j) / float64(p.Rows*p.Cols)
	return floor(pos * float64(p.Colors))
}

func horizontalStripes(i, _ int, p Params, _ Rand) int {
	return floor(float64(i) / float64(p.StripeWidth))
}

func verticalStripes(_, j int, p Params, _ Rand) int {
	return floor(float64(j) / float64(p.StripeWidth))
}

func checkerboard(i, j int, _ Params, _ Rand) int { return i + j }

func waves(i, j int, p Params, _ Rand) int {
	return floor(math.Sin(float64(i+j)*0.5) * float64(p.Colors))
}

func diagonal(i, j int, _ Params, _ Rand) int { return i - j }

func radial(i, j int, p Params, _ Rand) int {
	di := float64(i) - float64(p.Rows)/2
	dj := float64(j) - float64(p.Cols)/2
	return floor(math.Sqrt(di*di + dj*dj))
}

func diamond(i, j int, p Params, _ Rand) int {
	return floor(math.Abs(float64(i)-float64(p.Rows)/2) + math.Abs(float64(j)-float64(p.Cols)/2))
}

const mosaicTile = 2

func mosaic(i, j int, _ Params, _ Rand) int { return i/mosaicTile + j/mosaicTile }

func zigzag(i, j int, p Params, _ Rand) int {
	if i%2 == 0 {
		return i + j
	}
	return i + p.Cols - 1 - j
}

func concentric(i, j int, p Params, _ Rand) int {
	ring := min(min(i, p.Rows-1-i), min(j, p.Cols-1-j))
	return max(p.Rows, p.Cols) - ring
}

func random(_, _ int, p Params, rng Rand) int { return rng.IntN(p.Colors) }

// spiral numbers cells in the order a clockwise inward walk visits them. The
// walk starts at (0, 0) heading right and turns right whenever the next cell
// is outside the grid or already visited. Each cell is written exactly once,
// so non-square grids never double-visit or leave gaps.
func spiral(p Params, _ Rand) []int {
	total := p.Rows * p.Cols
	out := make([]int, total)
	visited := make([]bool, total)
	dr := [4]int{0, 1, 0, -1}
	dc := [4]int{1, 0, -1, 0}

	r, c, dir := 0, 0, 0
	for step := 0; step < total; step++ {
		visited[r*p.Cols+c] = true
		out[r*p.Cols+c] = step

		turns := 0
		for {
			nr, nc := r+dr[dir], c+dc[dir]
			if nr >= 0 && nr < p.Rows && nc >= 0 && nc < p.Cols && !visited[nr*p.Cols+nc] {
				r, c = nr, nc
				break
			}
			dir = (dir + 1) % 4
			if turns++; turns == 4 {
				return out
			}
		}
	}
	return out
}
