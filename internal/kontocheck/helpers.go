package kontocheck

// dig returns the numeric value of the digit at index i.
func dig(account string, i int) int {
	return int(account[i] - '0')
}

// crossSum reduces a two-digit product to the sum of its decimal digits
// (Quersumme), e.g. 16 becomes 7.
func crossSum(p int) int {
	if p >= 10 {
		return p/10 + p%10
	}
	return p
}

// weightedSum multiplies the digits starting at index start by the given
// weights and returns the plain sum.
func weightedSum(account string, start int, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += dig(account, start+i) * w
	}
	return sum
}

// weightedCrossSum is weightedSum with every product reduced to its cross sum.
func weightedCrossSum(account string, start int, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += crossSum(dig(account, start+i) * w)
	}
	return sum
}

// luhnSum doubles every second digit in [start, end) and cross-sums the
// doubled products. doubleFirst selects whether the digit at start or the
// one after it is the first to be doubled.
func luhnSum(account string, start, end int, doubleFirst bool) int {
	sum := 0
	for i := start; i < end; i++ {
		d := dig(account, i)
		if ((i-start)%2 == 0) == doubleFirst {
			d = crossSum(d * 2)
		}
		sum += d
	}
	return sum
}

// mod10Digit derives the check digit from a MOD-10 sum.
func mod10Digit(sum int) int {
	return (10 - sum%10) % 10
}

// mod11Digit derives the check digit from a MOD-11 sum. Remainder 1 yields
// 10; callers decide how to treat that.
func mod11Digit(sum int) int {
	r := sum % 11
	if r == 0 {
		return 0
	}
	return 11 - r
}

// mod11Collapsed is mod11Digit with remainders 0 and 1 both mapped to check
// digit 0 (the "modified" MOD-11 of method 06 and its many descendants).
func mod11Collapsed(sum int) int {
	r := sum % 11
	if r <= 1 {
		return 0
	}
	return 11 - r
}

// mod7Digit derives the check digit from a MOD-7 sum.
func mod7Digit(sum int) int {
	return (7 - sum%7) % 7
}

// m10hSum applies the iterated transformation (M10H) to the first nine
// digits.
func m10hSum(account string) int {
	sum := 0
	for i, row := range m10hRows {
		sum += m10hTable[row][dig(account, i)]
	}
	return sum
}
