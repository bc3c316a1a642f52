package summer

// maxStackLanes is the largest lane count whose accumulators live in a fixed
// size array instead of a heap slice.
const maxStackLanes = 16

// sumNaive is one dependency chain: every add waits on the previous one.
func sumNaive(data []float32) (total float32) {
	for _, v := range data {
		total += v
	}
	return total
}

// sumPrepped4 keeps the four accumulators in locals so the compiler can hold
// them in registers. Lanes are combined left to right and the remainder is
// folded into the combined total in order.
func sumPrepped4(data []float32) float32 {
	var acc0, acc1, acc2, acc3 float32

	n := len(data) &^ 3
	for i := 0; i < n; i += 4 {
		g := data[i : i+4 : i+4]
		acc0 += g[0]
		acc1 += g[1]
		acc2 += g[2]
		acc3 += g[3]
	}

	total := acc0 + acc1 + acc2 + acc3
	for _, v := range data[n:] {
		total += v
	}
	return total
}

// sumPrepped is sumPrepped4 for any lane count. Accumulator i only ever sees
// elements at offsets congruent to i modulo lanes.
func sumPrepped(data []float32, lanes int) float32 {
	lanes = clampLanes(lanes, len(data))

	var stack [maxStackLanes]float32
	var acc []float32
	if lanes <= maxStackLanes {
		acc = stack[:lanes]
	} else {
		acc = make([]float32, lanes)
	}

	n := len(data) - len(data)%lanes
	foldGroups(acc, data[:n])

	total := combine(acc)
	for _, v := range data[n:] {
		total += v
	}
	return total
}

// sumChunked totals the lanes from zero and the remainder from zero, then
// adds the two.
func sumChunked(data []float32, lanes int) float32 {
	lanes = clampLanes(lanes, len(data))

	var stack [maxStackLanes]float32
	var acc []float32
	if lanes <= maxStackLanes {
		acc = stack[:lanes]
	} else {
		acc = make([]float32, lanes)
	}

	n := len(data) - len(data)%lanes
	foldGroups(acc, data[:n])

	var lanesTotal float32
	for _, a := range acc {
		lanesTotal += a
	}
	return lanesTotal + sumNaive(data[n:])
}

// clampLanes bounds the accumulator count by the input length. Lanes past the
// end of the data would stay zero and every element would take the remainder
// path, which sums in the same order as one group of len(data) lanes.
func clampLanes(lanes, n int) int {
	return min(lanes, max(n, 1))
}

// foldGroups adds each complete group of len(acc) elements into acc lane by
// lane. len(data) must be a multiple of len(acc).
func foldGroups(acc, data []float32) {
	lanes := len(acc)
	for i := 0; i < len(data); i += lanes {
		g := data[i : i+lanes : i+lanes]
		for j := range acc {
			acc[j] += g[j]
		}
	}
}

// combine adds the lanes left to right starting from lane 0.
func combine(acc []float32) float32 {
	total := acc[0]
	for _, a := range acc[1:] {
		total += a
	}
	return total
}
