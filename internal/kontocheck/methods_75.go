package kontocheck

import "strings"

// method75 validates six- and seven-digit numbers over positions 5-9,
// nine-digit numbers starting 09 over positions 3-7, and the remaining
// nine-digit numbers over positions 2-6. Ten-digit and sub-six-digit
// numbers are malformed.
func method75(account, blz string) Result {
	if account[0] != '0' {
		return InvalidFormat
	}
	if account[1] == '0' {
		if account[2] != '0' || (account[3] == '0' && account[4] == '0') {
			return InvalidFormat
		}
		return check(mod10Digit(luhnSum(account, 4, 9, true)) == dig(account, 9))
	}
	if account[1] == '9' {
		return check(mod10Digit(luhnSum(account, 2, 7, true)) == dig(account, 7))
	}
	return check(mod10Digit(luhnSum(account, 1, 6, true)) == dig(account, 6))
}

// method76 rejects account types 1, 2, 3 and 5 and compares the MOD-11
// remainder itself with the check digit; remainder 10 shifts the window
// from positions 2-7 to positions 4-9.
func method76(account, blz string) Result {
	switch account[0] {
	case '1', '2', '3', '5':
		return InvalidFormat
	}

	r := weightedSum(account, 1, weightsDesc7) % 11
	if r == 10 {
		switch account[2] {
		case '1', '2', '3', '5':
			return InvalidFormat
		}
		r = weightedSum(account, 3, weightsDesc7) % 11
		if r == 10 {
			return InvalidFormat
		}
		return check(r == dig(account, 9))
	}
	return check(r == dig(account, 7))
}

// method77 accepts an account when the weighted sum over positions 6-10 is
// divisible by 11 under either of two weight sets.
func method77(account, blz string) Result {
	if weightedSum(account, 5, weights77a)%11 == 0 {
		return Valid
	}
	return check(weightedSum(account, 5, weights77b)%11 == 0)
}

// method78 exempts eight-digit accounts from the method 00 check.
func method78(account, blz string) Result {
	if account[0] == '0' && account[1] == '0' && account[2] != '0' {
		return Valid
	}
	return method00(account, blz)
}

// method79 places the check digit in position 9 for accounts starting 1, 2
// or 9 and in position 10 for 3-8; leading zeros are malformed.
func method79(account, blz string) Result {
	switch account[0] {
	case '0':
		return InvalidFormat
	case '1', '2', '9':
		sum := dig(account, 0) + luhnSum(account, 1, 8, true)
		return check(mod10Digit(sum) == dig(account, 8))
	}
	return check(mod10Digit(luhnSum(account, 0, 9, true)) == dig(account, 9))
}

// method80 exempts internal accounts ('9' in position 3), tries method 00
// and falls back to MOD-7 over the same cross-summed products.
func method80(account, blz string) Result {
	if account[2] == '9' {
		return Valid
	}
	if method00(account, blz) == Valid {
		return Valid
	}
	sum := weightedCrossSum(account, 0, weights00)
	return check(mod7Digit(sum) == dig(account, 9))
}

// method81 is the modified MOD-11 over positions 4-9 with the method 51
// exemption for internal accounts.
func method81(account, blz string) Result {
	if account[2] == '9' {
		return Valid
	}
	cd := mod11Collapsed(weightedSum(account, 3, weightsDesc7))
	return check(cd == dig(account, 9))
}

// method82 uses method 33 for accounts starting "00" and method 10
// otherwise.
func method82(account, blz string) Result {
	if account[0] == '0' && account[1] == '0' {
		return method33(account, blz)
	}
	return method10(account, blz)
}

// method83 exempts internal accounts and otherwise accepts when the
// weighted sum over positions 3-10 divides by 10, 11 or 7.
func method83(account, blz string) Result {
	if account[2] == '9' {
		return Valid
	}
	sum := weightedSum(account, 2, weights83)
	if sum%10 == 0 || sum%11 == 0 {
		return Valid
	}
	return check(sum%7 == 0)
}

// method84 exempts internal accounts and tries modified MOD-11 then MOD-7
// over positions 4-9.
func method84(account, blz string) Result {
	if account[2] == '9' {
		return Valid
	}
	sum := weightedSum(account, 3, weightsDesc7)
	expected := dig(account, 9)
	if mod11Collapsed(sum) == expected {
		return Valid
	}
	return check(mod7Digit(sum) == expected)
}

// method85 is method 83 except that internal accounts run only the MOD-7
// variant instead of being exempt.
func method85(account, blz string) Result {
	sum := weightedSum(account, 2, weights83)
	if account[2] == '9' {
		return check(sum%7 == 0)
	}
	if sum%10 == 0 || sum%11 == 0 {
		return Valid
	}
	return check(sum%7 == 0)
}

// method86 exempts internal accounts, tries method 00 and falls back to the
// modified MOD-11 of method 06.
func method86(account, blz string) Result {
	if account[2] == '9' {
		return Valid
	}
	if method00(account, blz) == Valid {
		return Valid
	}
	cd := mod11Collapsed(weightedSum(account, 0, weights04))
	return check(cd == dig(account, 9))
}

// method87 exempts internal accounts, tries method 33 and falls back to
// MOD-7 over positions 6-10; the fallback window is shifted one to the
// right of method 33's and takes the check digit into its own sum.
func method87(account, blz string) Result {
	if account[2] == '9' {
		return Valid
	}
	if method33(account, blz) == Valid {
		return Valid
	}
	cd := mod7Digit(weightedSum(account, 5, weightsDesc6))
	return check(cd == dig(account, 9))
}

// method88 is the modified MOD-11 with ascending weights where a '9' in
// position 3 raises its weight by one.
func method88(account, blz string) Result {
	sum := 0
	for i, w := range weights88 {
		d := dig(account, i)
		if i == 2 && d == 9 {
			w++
		}
		sum += d * w
	}
	return check(mod11Collapsed(sum) == dig(account, 9))
}

// method89 applies method 10 to nine- and ten-digit accounts alike.
func method89(account, blz string) Result {
	return method10(account, blz)
}

// method90 runs a five-variant chain over positions 4-9 and 5-9 (MOD-11,
// MOD-11, MOD-7, MOD-9, MOD-10); internal accounts use a single MOD-11
// variant with the fixed '9' weighted at 8.
func method90(account, blz string) Result {
	expected := dig(account, 9)

	if account[2] == '9' {
		sum := 9*8 + weightedSum(account, 3, weightsDesc7)
		return check(mod11Collapsed(sum) == expected)
	}

	if mod11Collapsed(weightedSum(account, 3, weightsDesc7)) == expected {
		return Valid
	}

	sum := weightedSum(account, 4, weightsDesc6)
	if mod11Collapsed(sum) == expected {
		return Valid
	}
	if mod7Digit(sum) == expected {
		return Valid
	}
	if (9-sum%9)%9 == expected {
		return Valid
	}
	return check(mod10Digit(weightedSum(account, 4, weights30)) == expected)
}

// method91 tries four MOD-11 weightings over the first six digits (variant
// C spans all ten but skips the check digit itself), check digit in
// position 7.
func method91(account, blz string) Result {
	expected := dig(account, 6)

	if mod11Collapsed(weightedSum(account, 0, weightsDesc7)) == expected {
		return Valid
	}
	if mod11Collapsed(weightedSum(account, 0, weights91b)) == expected {
		return Valid
	}

	sum := dig(account, 0)*10 + dig(account, 1)*9 + dig(account, 2)*8 +
		dig(account, 3)*7 + dig(account, 4)*6 + dig(account, 5)*5 +
		dig(account, 7)*4 + dig(account, 8)*3 + dig(account, 9)*2
	if mod11Collapsed(sum) == expected {
		return Valid
	}

	return check(mod11Collapsed(weightedSum(account, 0, weights38)) == expected)
}

// method92 is MOD-10 with weights 3,7,1 over positions 4-9.
func method92(account, blz string) Result {
	sum := weightedSum(account, 3, weights92)
	return check(mod10Digit(sum) == dig(account, 9))
}

// method93 locates the base number in positions 5-9 (check digit position
// 10) or 1-5 (check digit position 6) depending on the leading zeros, then
// tries modified MOD-11 followed by MOD-7.
func method93(account, blz string) Result {
	var sum, checkPos int
	if strings.HasPrefix(account, "0000") {
		sum = weightedSum(account, 4, weightsDesc6)
		checkPos = 9
	} else {
		sum = weightedSum(account, 0, weightsDesc6)
		checkPos = 5
	}

	expected := dig(account, checkPos)
	if mod11Collapsed(sum) == expected {
		return Valid
	}
	return check(mod7Digit(sum) == expected)
}

// method94 is identical to method 00.
func method94(account, blz string) Result {
	return method00(account, blz)
}

// method95 exempts four number ranges and otherwise applies the modified
// MOD-11 of method 06.
func method95(account, blz string) Result {
	if (account >= "0000000001" && account <= "0001999999") ||
		(account >= "0009000000" && account <= "0025999999") ||
		(account >= "0396000000" && account <= "0499999999") ||
		(account >= "0700000000" && account <= "0799999999") {
		return Valid
	}
	cd := mod11Collapsed(weightedSum(account, 0, weights04))
	return check(cd == dig(account, 9))
}

// method96 exempts one number range and otherwise tries method 19 then
// method 00.
func method96(account, blz string) Result {
	if account >= "0001300000" && account < "0099400000" {
		return Valid
	}
	if method19(account, blz) == Valid {
		return Valid
	}
	return method00(account, blz)
}

// method97 takes the nine leading digits as a number MOD 11; remainder 10
// counts as 0.
func method97(account, blz string) Result {
	value := 0
	for i := 0; i < 9; i++ {
		value = value*10 + dig(account, i)
	}
	cd := value % 11
	if cd == 10 {
		cd = 0
	}
	return check(cd == dig(account, 9))
}

// method98 is MOD-10 with weights 3,7,1 over positions 3-9, falling back to
// method 32.
func method98(account, blz string) Result {
	sum := weightedSum(account, 2, weights98)
	if mod10Digit(sum) == dig(account, 9) {
		return Valid
	}
	return method32(account, blz)
}

// method99 is method 95 with a single exemption range.
func method99(account, blz string) Result {
	if account >= "0396000000" && account < "0500000000" {
		return Valid
	}
	cd := mod11Collapsed(weightedSum(account, 0, weights04))
	return check(cd == dig(account, 9))
}
