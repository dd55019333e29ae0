package kontocheck

import "strings"

// methodA0 exempts three-digit accounts and runs the modified MOD-11 over
// positions 5-9.
func methodA0(account, blz string) Result {
	if strings.HasPrefix(account, "0000000") {
		return Valid
	}
	cd := mod11Collapsed(weightedSum(account, 4, weights37))
	return check(cd == dig(account, 9))
}

// methodA1 accepts only eight- and ten-digit numbers and checks positions
// 3-9 against the check digit in position 10.
func methodA1(account, blz string) Result {
	if (account[0] == '0' && account[1] != '0') || strings.HasPrefix(account, "000") {
		return InvalidFormat
	}
	return check(mod10Digit(luhnSum(account, 2, 9, true)) == dig(account, 9))
}

// methodA2 tries method 00 and falls back to method 04.
func methodA2(account, blz string) Result {
	if method00(account, blz) == Valid {
		return Valid
	}
	return method04(account, blz)
}

// methodA3 tries method 00 and falls back to method 10.
func methodA3(account, blz string) Result {
	if method00(account, blz) == Valid {
		return Valid
	}
	return method10(account, blz)
}

// methodA4 has two entry variants selected by "99" in positions 3-4, each
// falling through to method 93.
func methodA4(account, blz string) Result {
	expected := dig(account, 9)

	if account[2] == '9' && account[3] == '9' {
		if mod11Collapsed(weightedSum(account, 4, weightsDesc6)) == expected {
			return Valid
		}
		return method93(account, blz)
	}

	sum := weightedSum(account, 3, weightsDesc7)
	if mod11Collapsed(sum) == expected {
		return Valid
	}
	if mod7Digit(sum) == expected {
		return Valid
	}
	return method93(account, blz)
}

// methodA5 tries method 00; failing accounts that start with '9' are
// malformed, the rest fall back to method 10.
func methodA5(account, blz string) Result {
	if method00(account, blz) == Valid {
		return Valid
	}
	if account[0] == '9' {
		return InvalidFormat
	}
	return method10(account, blz)
}

// methodA6 selects method 00 for '8' in position 2 and method 01 otherwise.
func methodA6(account, blz string) Result {
	if account[1] == '8' {
		return method00(account, blz)
	}
	return method01(account, blz)
}

// methodA7 tries method 00 and falls back to method 03.
func methodA7(account, blz string) Result {
	if method00(account, blz) == Valid {
		return Valid
	}
	return method03(account, blz)
}

// methodA8 handles internal accounts like method 51 with a method 10
// fallback; customer accounts try method 32 then MOD-10 over positions 4-9.
func methodA8(account, blz string) Result {
	if account[2] == '9' {
		sum := 9*8 + weightedSum(account, 3, weightsDesc7)
		if mod11Collapsed(sum) == dig(account, 9) {
			return Valid
		}
		return method10(account, blz)
	}

	if method32(account, blz) == Valid {
		return Valid
	}
	return check(mod10Digit(luhnSum(account, 3, 9, true)) == dig(account, 9))
}

// methodA9 tries method 01 and falls back to method 06.
func methodA9(account, blz string) Result {
	if method01(account, blz) == Valid {
		return Valid
	}
	return method06(account, blz)
}

// methodB0 rejects first digits 0 and 8, exempts the account kinds 1, 2, 3
// and 6 flagged in position 8 and otherwise uses method 06.
func methodB0(account, blz string) Result {
	if account[0] == '0' || account[0] == '8' {
		return InvalidFormat
	}
	switch account[7] {
	case '1', '2', '3', '6':
		return Valid
	}
	return method06(account, blz)
}

// methodB1 tries method 05 and falls back to method 01.
func methodB1(account, blz string) Result {
	if method05(account, blz) == Valid {
		return Valid
	}
	return method01(account, blz)
}

// methodB2 selects method 02 for first digits 0-7 and method 00 for 8-9.
func methodB2(account, blz string) Result {
	if account[0] < '8' {
		return method02(account, blz)
	}
	return method00(account, blz)
}

// methodB3 selects method 32 for first digits 0-8 and method 06 for 9.
func methodB3(account, blz string) Result {
	if account[0] < '9' {
		return method32(account, blz)
	}
	return method06(account, blz)
}

// methodB4 selects method 00 for a leading 9 and method 02 otherwise.
func methodB4(account, blz string) Result {
	if account[0] == '9' {
		return method00(account, blz)
	}
	return method02(account, blz)
}

// methodB5 tries method 05; failing accounts starting 8 or 9 stay invalid,
// the rest fall back to method 00.
func methodB5(account, blz string) Result {
	if method05(account, blz) == Valid {
		return Valid
	}
	if account[0] > '7' {
		return Invalid
	}
	return method00(account, blz)
}

// methodB6 uses method 20 for first digits 1-9. The leading-zero branch
// needs the ESER transformation of method 53 and is not implemented.
func methodB6(account, blz string) Result {
	if account[0] > '0' {
		return method20(account, blz)
	}
	return NotImplemented
}

// methodB7 checks two number ranges with method 01; everything outside them
// carries no check digit.
func methodB7(account, blz string) Result {
	if (account >= "0001000000" && account <= "0005999999") ||
		(account >= "0700000000" && account <= "0899999999") {
		return method01(account, blz)
	}
	return Valid
}

// methodB8 tries method 20 and falls back to method 29.
func methodB8(account, blz string) Result {
	if method20(account, blz) == Valid {
		return Valid
	}
	return method29(account, blz)
}

// methodB9 requires two or three leading zeros. Both variants accept either
// the computed remainder or the remainder plus 5 (MOD 10) as check digit.
func methodB9(account, blz string) Result {
	if account[0] != '0' || account[1] != '0' {
		return InvalidFormat
	}
	if account[2] == '0' && account[3] == '0' {
		return InvalidFormat
	}

	expected := dig(account, 9)

	if account[2] != '0' {
		sum := 0
		for i, w := range weightsB9 {
			sum += (dig(account, i+2)*w + w) % 11
		}
		r := sum % 10
		return check(r == expected || (r+5)%10 == expected)
	}

	r := weightedSum(account, 3, weights71) % 11
	return check(r == expected || (r+5)%10 == expected)
}

// methodC0 falls back to method 20 for every account; the ESER variant for
// two leading zeros shares the method 52 limitation.
func methodC0(account, blz string) Result {
	return method20(account, blz)
}

// methodC1 uses method 17 unless the account starts with '5', which gets a
// cross-summed MOD-11 over all nine leading digits with the sum reduced by
// one.
func methodC1(account, blz string) Result {
	if account[0] != '5' {
		return method17(account, blz)
	}
	sum := luhnSum(account, 0, 9, false) - 1
	r := sum % 11
	cd := 0
	if r != 0 {
		cd = 10 - r
	}
	return check(cd == dig(account, 9))
}

// methodC2 tries method 22 and falls back to method 00.
func methodC2(account, blz string) Result {
	if method22(account, blz) == Valid {
		return Valid
	}
	return method00(account, blz)
}

// methodC3 selects method 00 unless the account starts with '9', which uses
// method 58.
func methodC3(account, blz string) Result {
	if account[0] != '9' {
		return method00(account, blz)
	}
	return method58(account, blz)
}

// methodC4 selects method 15 unless the account starts with '9', which uses
// method 58.
func methodC4(account, blz string) Result {
	if account[0] != '9' {
		return method15(account, blz)
	}
	return method58(account, blz)
}

// methodC5 routes each account shape to its own rule: six-digit numbers to
// method 75, nine-digit numbers to a shifted MOD-10, selected ten-digit
// prefixes to methods 29 or 00, and two shapes carry no check digit at all.
func methodC5(account, blz string) Result {
	switch {
	case strings.HasPrefix(account, "0000") && account[4] >= '1' && account[4] <= '8':
		return method75(account, blz)
	case account[0] == '0' && account[1] >= '1' && account[1] <= '8':
		return check(mod10Digit(luhnSum(account, 1, 6, true)) == dig(account, 6))
	case account[0] == '1' || (account[0] >= '4' && account[0] <= '6') || account[0] == '9':
		return method29(account, blz)
	case account[0] == '3':
		return method00(account, blz)
	case account[0] == '0' && account[1] == '0' && account[2] >= '3' && account[2] <= '5':
		return Valid
	case (account[0] == '7' && account[1] == '0') || (account[0] == '8' && account[1] == '5'):
		return Valid
	}
	return InvalidFormat
}

// methodC6 is method 00 with the constant prefix 5499570 in front of
// positions 2-9; the prefix contributes a fixed 31 to the cross-sum.
func methodC6(account, blz string) Result {
	sum := 31 + luhnSum(account, 1, 9, true)
	return check(mod10Digit(sum) == dig(account, 9))
}
