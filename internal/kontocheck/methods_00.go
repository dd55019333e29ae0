package kontocheck

// method00 is the plain MOD-10 procedure: weights 2,1,... with cross-summed
// products, check digit in position 10. Many later methods delegate here.
func method00(account, blz string) Result {
	sum := weightedCrossSum(account, 0, weights00)
	return check(mod10Digit(sum) == dig(account, 9))
}

// method01 is MOD-10 with weights 3,7,1,... and no cross sum.
func method01(account, blz string) Result {
	sum := weightedSum(account, 0, weights01)
	return check(mod10Digit(sum) == dig(account, 9))
}

// method02 is MOD-11 with weights 2,3,...,9,2. Check digit 10 cannot be
// represented, so those accounts are rejected as malformed.
func method02(account, blz string) Result {
	cd := mod11Digit(weightedSum(account, 0, weights02))
	if cd == 10 {
		return InvalidFormat
	}
	return check(cd == dig(account, 9))
}

// method03 is an alternative specification name for method 00.
func method03(account, blz string) Result {
	return method00(account, blz)
}

// method04 is MOD-11 with weights 2,3,4,5,6,7,2,3,4.
func method04(account, blz string) Result {
	cd := mod11Digit(weightedSum(account, 0, weights04))
	if cd == 10 {
		return InvalidFormat
	}
	return check(cd == dig(account, 9))
}

// method05 is MOD-10 with weights 7,3,1,... and no cross sum.
func method05(account, blz string) Result {
	sum := weightedSum(account, 0, weights05)
	return check(mod10Digit(sum) == dig(account, 9))
}

// method06 is the modified MOD-11: remainders 0 and 1 both give check
// digit 0.
func method06(account, blz string) Result {
	cd := mod11Collapsed(weightedSum(account, 0, weights04))
	return check(cd == dig(account, 9))
}

// method07 is MOD-11 with weights up to 10.
func method07(account, blz string) Result {
	cd := mod11Digit(weightedSum(account, 0, weights07))
	if cd == 10 {
		return InvalidFormat
	}
	return check(cd == dig(account, 9))
}

// method08 checks like method 00, but account numbers below 60000 carry no
// check digit.
func method08(account, blz string) Result {
	if account < "0000060000" {
		return Valid
	}
	return method00(account, blz)
}

// method09 performs no check digit calculation.
func method09(account, blz string) Result {
	return Valid
}

// method10 is the modified MOD-11 with weights up to 10.
func method10(account, blz string) Result {
	cd := mod11Collapsed(weightedSum(account, 0, weights07))
	return check(cd == dig(account, 9))
}

// method11 is method 10 except that remainder 1 maps to check digit 9.
func method11(account, blz string) Result {
	r := weightedSum(account, 0, weights07) % 11
	var cd int
	switch {
	case r == 1:
		cd = 9
	case r == 0:
		cd = 0
	default:
		cd = 11 - r
	}
	return check(cd == dig(account, 9))
}

// method12 is not defined by the Bundesbank specification.
func method12(account, blz string) Result {
	return InvalidFormat
}

// method13 validates a six-digit base number in positions 2-7 with the check
// digit in position 8; if that fails the same rule is applied to positions
// 4-9 with the check digit in position 10.
func method13(account, blz string) Result {
	if mod10Digit(weightedCrossSum(account, 1, weights13)) == dig(account, 7) {
		return Valid
	}
	return check(mod10Digit(weightedCrossSum(account, 3, weights13)) == dig(account, 9))
}

// method14 is MOD-11 over positions 4-9; positions 2-3 carry the account
// type and are skipped.
func method14(account, blz string) Result {
	cd := mod11Digit(weightedSum(account, 3, weightsDesc7))
	if cd == 10 {
		return InvalidFormat
	}
	return check(cd == dig(account, 9))
}

// method15 is the modified MOD-11 over the four digits in positions 6-9.
func method15(account, blz string) Result {
	cd := mod11Collapsed(weightedSum(account, 5, weights15))
	return check(cd == dig(account, 9))
}

// method16 is MOD-11 like method 06, but a computed check digit of 10 is
// accepted when positions 9 and 10 hold the same digit, and treated as 0
// otherwise.
func method16(account, blz string) Result {
	cd := mod11Digit(weightedSum(account, 0, weights04))
	if cd == 10 {
		if account[8] == account[9] {
			return Valid
		}
		cd = 0
	}
	return check(cd == dig(account, 9))
}

// method17 validates positions 2-7 with alternating weights 1,2 and cross
// sums, subtracts 1 from the total and derives the check digit MOD-11.
func method17(account, blz string) Result {
	sum := weightedCrossSum(account, 1, weights13) - 1
	r := sum % 11
	cd := 0
	if r != 0 {
		cd = 10 - r
	}
	return check(cd == dig(account, 7))
}

// method18 is MOD-10 with weights 3,9,7,1 repeating.
func method18(account, blz string) Result {
	sum := weightedSum(account, 0, weights18)
	return check(mod10Digit(sum) == dig(account, 9))
}

// method19 is the modified MOD-11 with weights 2,...,9,1.
func method19(account, blz string) Result {
	cd := mod11Collapsed(weightedSum(account, 0, weights19))
	return check(cd == dig(account, 9))
}

// method20 is the modified MOD-11 with weights 2,...,9,3.
func method20(account, blz string) Result {
	cd := mod11Collapsed(weightedSum(account, 0, weights20))
	return check(cd == dig(account, 9))
}

// method21 weights like method 00 but reduces the whole sum to a single
// digit by repeated cross-summing before deriving the check digit.
func method21(account, blz string) Result {
	sum := 0
	for i := 0; i < 9; i++ {
		w := 1
		if i%2 == 0 {
			w = 2
		}
		sum += dig(account, i) * w
	}
	for sum >= 10 {
		n := 0
		for sum > 0 {
			n += sum % 10
			sum /= 10
		}
		sum = n
	}
	return check((10-sum)%10 == dig(account, 9))
}

// method22 is MOD-10 with weights 3,1,... keeping only the ones digit of
// each product.
func method22(account, blz string) Result {
	sum := 0
	for i := 0; i < 9; i++ {
		w := 1
		if i%2 == 0 {
			w = 3
		}
		sum += (dig(account, i) * w) % 10
	}
	return check(mod10Digit(sum) == dig(account, 9))
}

// method23 is MOD-11 over the first six digits with the check digit in
// position 7. A computed 10 is accepted only when positions 6 and 7 match.
func method23(account, blz string) Result {
	cd := mod11Digit(weightedSum(account, 0, weightsDesc7))
	if cd == 10 {
		if account[5] == account[6] {
			return Valid
		}
		return InvalidFormat
	}
	return check(cd == dig(account, 6))
}

// method24 substitutes certain leading digits, skips leading zeros and sums
// (digit*weight+weight) MOD 11 with rotating weights 1,2,3; the check digit
// is the ones digit of the total.
func method24(account, blz string) Result {
	digits := []byte(account)
	if digits[0] >= '3' && digits[0] <= '6' {
		digits[0] = '0'
	}
	if digits[0] == '9' {
		digits[0], digits[1], digits[2] = '0', '0', '0'
	}

	start := 0
	for start < 9 && digits[start] == '0' {
		start++
	}

	sum := 0
	for i := start; i < 9; i++ {
		w := weights24[(i-start)%3]
		sum += (int(digits[i]-'0')*w + w) % 11
	}
	return check(sum%10 == dig(account, 9))
}
