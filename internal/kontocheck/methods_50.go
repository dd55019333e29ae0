package kontocheck

import "strings"

// method50 checks positions 1-6 against the check digit in position 7; if
// that fails the same rule is applied three positions to the right.
func method50(account, blz string) Result {
	if mod11Collapsed(weightedSum(account, 0, weightsDesc7)) == dig(account, 6) {
		return Valid
	}
	return check(mod11Collapsed(weightedSum(account, 3, weightsDesc7)) == dig(account, 9))
}

// method51 runs the chain MOD-11 (positions 4-9), MOD-11 (positions 5-9),
// MOD-7 (positions 5-9). Internal accounts with '9' in position 3 use the
// two exception variants instead, and MOD-7 never produces check digits
// 7-9.
func method51(account, blz string) Result {
	expected := dig(account, 9)

	if account[2] == '9' {
		sum := 9*8 + weightedSum(account, 3, weightsDesc7)
		if mod11Collapsed(sum) == expected {
			return Valid
		}
		sum = dig(account, 0)*10 + dig(account, 1)*9 + 9*8 + weightedSum(account, 3, weightsDesc7)
		return check(mod11Collapsed(sum) == expected)
	}

	if mod11Collapsed(weightedSum(account, 3, weightsDesc7)) == expected {
		return Valid
	}
	if mod11Collapsed(weightedSum(account, 4, weightsDesc6)) == expected {
		return Valid
	}
	if account[9] == '7' || account[9] == '8' || account[9] == '9' {
		return Invalid
	}
	return check(mod7Digit(weightedSum(account, 4, weightsDesc6)) == expected)
}

// method52 covers only the '9'-prefixed accounts via method 20. The general
// case needs the ESER Altsystem transformation of the routing number, which
// is not implemented.
func method52(account, blz string) Result {
	if account[0] == '9' {
		return method20(account, blz)
	}
	return NotImplemented
}

// method53 is the nine-digit companion of method 52 and shares its ESER
// limitation.
func method53(account, blz string) Result {
	if account[0] == '9' {
		return method20(account, blz)
	}
	if account[0] != '0' || account[1] == '0' {
		return InvalidFormat
	}
	return NotImplemented
}

// method54 requires the fixed prefix 49 and uses MOD-11 without a zero
// collapse; remainders 0 and 1 make the account malformed.
func method54(account, blz string) Result {
	if account[0] != '4' || account[1] != '9' {
		return InvalidFormat
	}
	cd := 11 - weightedSum(account, 2, weights26)%11
	if cd > 9 {
		return InvalidFormat
	}
	return check(cd == dig(account, 9))
}

// method55 is the modified MOD-11 with weights 2,...,8,7,8.
func method55(account, blz string) Result {
	cd := mod11Collapsed(weightedSum(account, 0, weights55))
	return check(cd == dig(account, 9))
}

// method56 is MOD-11 where the overflow check digits 10 and 11 map to 7 and
// 8 for accounts starting with '9' and are rejected otherwise.
func method56(account, blz string) Result {
	cd := 11 - weightedSum(account, 0, weights04)%11
	if cd > 9 {
		if account[0] != '9' {
			return InvalidFormat
		}
		if cd == 10 {
			cd = 7
		} else {
			cd = 8
		}
	}
	return check(cd == dig(account, 9))
}

// method57 skips validation for a range of leading two-digit values and for
// the 777777/888888 prefixes; everything else runs through method 00.
func method57(account, blz string) Result {
	firstTwo := dig(account, 0)*10 + dig(account, 1)
	if firstTwo <= 50 || firstTwo == 91 || firstTwo >= 96 {
		return Valid
	}
	if strings.HasPrefix(account, "777777") || strings.HasPrefix(account, "888888") {
		return Valid
	}
	return method00(account, blz)
}

// method58 is MOD-11 over positions 5-9; check digit 10 is malformed.
func method58(account, blz string) Result {
	cd := mod11Digit(weightedSum(account, 4, weightsDesc6))
	if cd == 10 {
		return InvalidFormat
	}
	return check(cd == dig(account, 9))
}

// method59 exempts accounts shorter than nine digits from the method 00
// check.
func method59(account, blz string) Result {
	if account[0] == '0' && account[1] == '0' {
		return Valid
	}
	return method00(account, blz)
}

// method60 ignores the two-digit sub-account in positions 1-2 and checks
// positions 3-9.
func method60(account, blz string) Result {
	sum := luhnSum(account, 2, 9, true)
	return check(mod10Digit(sum) == dig(account, 9))
}

// method61 checks positions 1-7 against the check digit in position 8;
// accounts flagged '8' in position 9 additionally include positions 9-10.
func method61(account, blz string) Result {
	sum := luhnSum(account, 0, 7, true)
	if account[8] == '8' {
		sum += dig(account, 8) + crossSum(dig(account, 9)*2)
	}
	return check(mod10Digit(sum) == dig(account, 7))
}

// method62 checks positions 3-7 against the check digit in position 8.
func method62(account, blz string) Result {
	sum := luhnSum(account, 2, 7, true)
	return check(mod10Digit(sum) == dig(account, 7))
}

// method63 requires a leading zero; for "00"-prefixed accounts the window is
// positions 4-9 with the check digit in position 10, otherwise positions
// 2-7 with the check digit in position 8.
func method63(account, blz string) Result {
	if account[0] != '0' {
		return InvalidFormat
	}
	if account[1] == '0' && account[2] == '0' {
		sum := luhnSum(account, 3, 9, false)
		return check(mod10Digit(sum) == dig(account, 9))
	}
	sum := luhnSum(account, 1, 7, false)
	return check(mod10Digit(sum) == dig(account, 7))
}

// method64 is the modified MOD-11 with weights 9,10,5,8,4,2 over the first
// six digits, check digit in position 7.
func method64(account, blz string) Result {
	cd := mod11Collapsed(weightedSum(account, 0, weights38))
	return check(cd == dig(account, 6))
}

// method65 checks positions 1-7; accounts flagged '9' in position 9 also
// include positions 9-10, each with weight 2.
func method65(account, blz string) Result {
	sum := luhnSum(account, 0, 7, true)
	if account[8] == '9' {
		sum += crossSum(9*2) + crossSum(dig(account, 9)*2)
	}
	return check(mod10Digit(sum) == dig(account, 7))
}

// method66 requires a leading zero and skips positions 3-4. Remainders 0
// and 1 map to check digits 1 and 0 respectively.
func method66(account, blz string) Result {
	if account[0] != '0' {
		return InvalidFormat
	}
	sum := dig(account, 1)*7 + weightedSum(account, 4, weightsDesc6)
	r := sum % 11
	cd := 11 - r
	if r < 2 {
		cd = 1 - r
	}
	return check(cd == dig(account, 9))
}

// method67 checks positions 1-7 against the check digit in position 8,
// ignoring the sub-account in positions 9-10.
func method67(account, blz string) Result {
	sum := luhnSum(account, 0, 7, true)
	return check(mod10Digit(sum) == dig(account, 7))
}

// method68 distinguishes three account shapes: 04-prefixed numbers carry no
// check digit, ten-digit numbers must hold '9' in position 4, and shorter
// numbers get a second chance with positions 3-4 excluded.
func method68(account, blz string) Result {
	if account[0] == '0' && account[1] == '4' {
		return Valid
	}
	if account[0] != '0' {
		if account[3] != '9' {
			return InvalidFormat
		}
		sum := 9 + luhnSum(account, 4, 9, true)
		return check(mod10Digit(sum) == dig(account, 9))
	}

	expected := dig(account, 9)
	if mod10Digit(luhnSum(account, 1, 9, false)) == expected {
		return Valid
	}
	sum := dig(account, 1) + luhnSum(account, 4, 9, true)
	return check(mod10Digit(sum) == expected)
}

// method69 exempts the 93 prefix, tries MOD-11 over positions 1-7 for
// everything but the 97 prefix, and falls back to the M10H transformation.
func method69(account, blz string) Result {
	if account[0] == '9' && account[1] == '3' {
		return Valid
	}
	if account[0] != '9' || account[1] != '7' {
		if mod11Collapsed(weightedSum(account, 0, weights28)) == dig(account, 7) {
			return Valid
		}
	}
	return check(mod10Digit(m10hSum(account)) == dig(account, 9))
}

// method70 is the modified MOD-11 with two positional exceptions that
// shorten the weighted window.
func method70(account, blz string) Result {
	var sum int
	switch {
	case account[3] == '5':
		sum = 5*7 + weightedSum(account, 4, []int{7, 6, 5, 4, 3})
	case account[3] == '6' && account[4] == '9':
		sum = 6*7 + 9*6 + weightedSum(account, 5, weights15)
	default:
		sum = weightedSum(account, 0, weights04)
	}
	return check(mod11Collapsed(sum) == dig(account, 9))
}

// method71 is MOD-11 over positions 2-7 where remainders 0 and 1 are taken
// as the check digit directly.
func method71(account, blz string) Result {
	r := weightedSum(account, 1, weights71) % 11
	cd := r
	if r > 1 {
		cd = 11 - r
	}
	return check(cd == dig(account, 9))
}

// method72 checks positions 4-9 against the check digit in position 10.
func method72(account, blz string) Result {
	sum := luhnSum(account, 3, 9, false)
	return check(mod10Digit(sum) == dig(account, 9))
}

// method73 shares the method 51 exception for '9' in position 3; customer
// accounts run MOD-10 over positions 4-9, then 5-9, then MOD-7 over 5-9.
func method73(account, blz string) Result {
	expected := dig(account, 9)

	if account[2] == '9' {
		sum := 9*8 + weightedSum(account, 3, weightsDesc7)
		if mod11Collapsed(sum) == expected {
			return Valid
		}
		sum = dig(account, 0)*10 + dig(account, 1)*9 + 9*8 + weightedSum(account, 3, weightsDesc7)
		return check(mod11Collapsed(sum) == expected)
	}

	if mod10Digit(dig(account, 3)+luhnSum(account, 4, 9, true)) == expected {
		return Valid
	}
	sum := luhnSum(account, 4, 9, true)
	if mod10Digit(sum) == expected {
		return Valid
	}
	return check(mod7Digit(sum) == expected)
}

// method74 is method 00 with a second chance for six-digit accounts: the
// sum is rounded up to the next half-decade instead.
func method74(account, blz string) Result {
	sum := luhnSum(account, 0, 9, true)
	expected := dig(account, 9)
	if mod10Digit(sum) == expected {
		return Valid
	}
	if strings.HasPrefix(account, "0000") {
		cd := 5 - sum%5
		if cd == 5 {
			cd = 0
		}
		return check(cd == expected)
	}
	return Invalid
}
