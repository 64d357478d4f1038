package fft

// Order returns the input permutation the n-point transform expects:
// buf[i] must hold x[order[i]]. The first half of the order is the
// half-size order on even samples, followed by the quarter-size orders on
// samples 4i+1 and 4i-1 (mod n).
func Order(n int) []int {
	switch n {
	case 1:
		return []int{0}
	case 2:
		return []int{0, 1}
	}

	half := Order(n / 2)
	quarter := Order(n / 4)

	order := make([]int, 0, n)
	for _, i := range half {
		order = append(order, 2*i)
	}
	for _, i := range quarter {
		order = append(order, 4*i+1)
	}
	for _, i := range quarter {
		order = append(order, (4*i-1+n)%n)
	}
	return order
}
