package pattern

import "math"

// Theme variants. Each is an ordinary Func registered like the geometric
// patterns; the probabilistic ones draw from the injected Rand in row-major
// order, so a seeded engine replays them exactly.

const splatterChance = 0.35

func splatter(i, j int, p Params, rng Rand) int {
	if rng.Float64() < splatterChance {
		return rng.IntN(p.Colors)
	}
	return (i + j) / 2
}

func cracked(i, j int, p Params, _ Rand) int {
	v := math.Abs(math.Sin(1.7*float64(i)) + math.Cos(2.3*float64(j)))
	return floor(v * float64(p.Colors))
}

func fog(i, j int, p Params, _ Rand) int {
	v := (math.Sin(0.3*float64(i)) + math.Cos(0.2*float64(j)) + 2) / 4
	return floor(v * float64(p.Colors))
}

func scales(i, j int, _ Params, _ Rand) int {
	return i + (j+i%2)/2
}

func slime(i, j int, _ Params, _ Rand) int {
	return floor(float64(i) + 1.5*math.Sin(0.8*float64(j)))
}

func fur(i, _ int, _ Params, rng Rand) int {
	return i + rng.IntN(3) - 1
}

const blockSize = 3

func blocks(i, j int, p Params, _ Rand) int {
	perRow := (p.Cols + blockSize - 1) / blockSize
	return (i/blockSize)*perRow + j/blockSize
}
