/*
Package pricing implements linear-price bonding curve math on integers.

Price per unit of supply x is x/S, so moving supply from s0 to s1 costs the
integral (s1² - s0²) / (2·S). All values are fixed-point integers of the same
scale; with 18 decimal places S = 200·10^18 gives cost(0, 2) = 0.01 and
cost(2, 4) = 0.03.

The package has no interop dependencies and is compiled both into contracts
(where int is arbitrary precision) and into regular Go code.
*/
package pricing

// Sqrt returns the floor of the square root of y, i.e. r such that
// r² <= y < (r+1)². It panics on negative input.
func Sqrt(y int) int {
	if y < 0 {
		panic("square root of negative value")
	}
	if y < 2 {
		return y
	}

	// 2^ceil(bits(y)/2) is never below the root.
	x := 1
	for t := y; t > 0; t = t / 4 {
		x = x * 2
	}

	for {
		next := (x + y/x) / 2
		if next >= x {
			return x
		}
		x = next
	}
}

// Cost returns native value needed to move supply from s0 to s1 (s0 <= s1).
func Cost(s0, s1, slope int) int {
	checkSlope(slope)
	if s0 < 0 || s1 < s0 {
		panic("invalid supply range")
	}

	return (s1*s1 - s0*s0) / (2 * slope)
}

// Supply returns supply reached from s0 after paying value, rounded down.
// It inverts Cost: Cost(s0, Supply(s0, v, S), S) <= v.
func Supply(s0, value, slope int) int {
	checkSlope(slope)
	if s0 < 0 || value < 0 {
		panic("invalid mint arguments")
	}

	return Sqrt(s0*s0 + 2*slope*value)
}

// Refund returns native value paid back when supply drops by amount from s0.
func Refund(s0, amount, slope int) int {
	if amount < 0 || amount > s0 {
		panic("invalid burn amount")
	}

	return Cost(s0-amount, s0, slope)
}

func checkSlope(slope int) {
	if slope <= 0 {
		panic("slope must be positive")
	}
}
