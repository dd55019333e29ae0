package kontocheck

// method25 is MOD-11 over positions 2-9. A computed check digit of 10 is
// treated as 0, but only for the work-digit values 8 and 9 in position 2.
func method25(account, blz string) Result {
	cd := mod11Digit(weightedSum(account, 1, weights25))
	if cd == 10 {
		cd = 0
		if account[1] != '8' && account[1] != '9' {
			return InvalidFormat
		}
	}
	return check(cd == dig(account, 9))
}

// method26 checks positions 1-7 with the check digit in position 8; for
// accounts starting "00" the window shifts to positions 3-9 with the check
// digit in position 10.
func method26(account, blz string) Result {
	if account[0] == '0' && account[1] == '0' {
		cd := mod11Collapsed(weightedSum(account, 2, weights26))
		return check(cd == dig(account, 9))
	}
	cd := mod11Collapsed(weightedSum(account, 0, weights26))
	return check(cd == dig(account, 7))
}

// method27 uses method 00 for accounts below 1000000000 and the iterated
// M10H transformation for the rest.
func method27(account, blz string) Result {
	if account[0] == '0' {
		return method00(account, blz)
	}
	return check(mod10Digit(m10hSum(account)) == dig(account, 9))
}

// method28 is the modified MOD-11 over positions 1-7 with the check digit
// in position 8.
func method28(account, blz string) Result {
	cd := mod11Collapsed(weightedSum(account, 0, weights28))
	return check(cd == dig(account, 7))
}

// method29 applies the iterated M10H transformation to every account.
func method29(account, blz string) Result {
	return check(mod10Digit(m10hSum(account)) == dig(account, 9))
}

// method30 weights only positions 1, 6, 7, 8 and 9.
func method30(account, blz string) Result {
	sum := dig(account, 0)*2 + dig(account, 5) + dig(account, 6)*2 +
		dig(account, 7) + dig(account, 8)*2
	return check(mod10Digit(sum) == dig(account, 9))
}

// method31 takes the MOD-11 remainder itself as the check digit; remainder
// 10 cannot occur on a valid account.
func method31(account, blz string) Result {
	cd := weightedSum(account, 0, weights31) % 11
	if cd == 10 {
		return InvalidFormat
	}
	return check(cd == dig(account, 9))
}

// method32 is the modified MOD-11 over positions 4-9.
func method32(account, blz string) Result {
	cd := mod11Collapsed(weightedSum(account, 3, weightsDesc7))
	return check(cd == dig(account, 9))
}

// method33 is the modified MOD-11 over positions 5-9.
func method33(account, blz string) Result {
	cd := mod11Collapsed(weightedSum(account, 4, weightsDesc6))
	return check(cd == dig(account, 9))
}

// method34 is the modified MOD-11 with weights 2,4,8,5,10,9,7 over positions
// 1-7, check digit in position 8.
func method34(account, blz string) Result {
	cd := mod11Collapsed(weightedSum(account, 0, weights34))
	return check(cd == dig(account, 7))
}

// method35 takes the MOD-11 remainder as check digit; remainder 10 is valid
// only when positions 9 and 10 hold the same digit.
func method35(account, blz string) Result {
	cd := weightedSum(account, 0, weights07) % 11
	if cd == 10 {
		if account[8] == account[9] {
			return Valid
		}
		return InvalidFormat
	}
	return check(cd == dig(account, 9))
}

// method36 is the modified MOD-11 with weights 2,4,8,5 over positions 6-9.
func method36(account, blz string) Result {
	cd := mod11Collapsed(weightedSum(account, 5, weights36))
	return check(cd == dig(account, 9))
}

// method37 extends method 36 to positions 5-9.
func method37(account, blz string) Result {
	cd := mod11Collapsed(weightedSum(account, 4, weights37))
	return check(cd == dig(account, 9))
}

// method38 extends method 36 to positions 4-9.
func method38(account, blz string) Result {
	cd := mod11Collapsed(weightedSum(account, 3, weights38))
	return check(cd == dig(account, 9))
}

// method39 extends method 36 to positions 3-9.
func method39(account, blz string) Result {
	cd := mod11Collapsed(weightedSum(account, 2, weights34))
	return check(cd == dig(account, 9))
}

// method40 extends method 36 to all nine leading positions.
func method40(account, blz string) Result {
	cd := mod11Collapsed(weightedSum(account, 0, weights40))
	return check(cd == dig(account, 9))
}

// method41 is method 00 unless position 4 is '9', in which case only
// positions 4-9 enter the calculation with alternating weights 1,2.
func method41(account, blz string) Result {
	if account[3] == '9' {
		sum := 0
		for i := 3; i < 9; i++ {
			w := 1
			if (i-3)%2 == 1 {
				w = 2
			}
			sum += crossSum(dig(account, i) * w)
		}
		return check(mod10Digit(sum) == dig(account, 9))
	}
	return method00(account, blz)
}

// method42 is the modified MOD-11 over positions 2-9.
func method42(account, blz string) Result {
	cd := mod11Collapsed(weightedSum(account, 1, weights25))
	return check(cd == dig(account, 9))
}

// method43 is MOD-10 with weights 9,...,1 and no cross sum.
func method43(account, blz string) Result {
	sum := weightedSum(account, 0, weights43)
	return check(mod10Digit(sum) == dig(account, 9))
}

// method44 is identical to method 37.
func method44(account, blz string) Result {
	return method37(account, blz)
}

// method45 is method 00, except that accounts starting with '0' or carrying
// '1' in position 5 have no check digit.
func method45(account, blz string) Result {
	if account[0] == '0' || account[4] == '1' {
		return Valid
	}
	return method00(account, blz)
}

// method46 is the modified MOD-11 over positions 3-7 with the check digit
// in position 8.
func method46(account, blz string) Result {
	cd := mod11Collapsed(weightedSum(account, 2, weightsDesc6))
	return check(cd == dig(account, 7))
}

// method47 is the modified MOD-11 over positions 4-8 with the check digit
// in position 9.
func method47(account, blz string) Result {
	cd := mod11Collapsed(weightedSum(account, 3, weightsDesc6))
	return check(cd == dig(account, 8))
}

// method48 is the modified MOD-11 over positions 3-8 with the check digit
// in position 9.
func method48(account, blz string) Result {
	cd := mod11Collapsed(weightedSum(account, 2, weightsDesc7))
	return check(cd == dig(account, 8))
}

// method49 tries method 00 first and falls back to method 01.
func method49(account, blz string) Result {
	if method00(account, blz) == Valid {
		return Valid
	}
	return method01(account, blz)
}
