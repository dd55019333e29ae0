package kontocheck

import (
	"fmt"
	"strings"
)

// FormatMethodID renders an identifier the way the Bundesbank names it:
// two decimal digits for the numeric methods, the literal hex form for the
// letter methods (A0 and up). Bytes outside both name ranges, which only
// appear in corrupt or future lookup tables, render as 0x-prefixed hex so
// they can never be mistaken for a decimal name.
func FormatMethodID(id byte) string {
	switch {
	case id <= 0x63:
		return fmt.Sprintf("%02d", id)
	case id >= 0xA0 && id&0x0F <= 9:
		return fmt.Sprintf("%02X", id)
	}
	return fmt.Sprintf("0x%02X", id)
}

// ParseMethodID is the inverse of FormatMethodID, accepting the letter
// forms case-insensitively. It does not require the method to be
// registered.
func ParseMethodID(s string) (byte, bool) {
	if len(s) != 2 {
		return 0, false
	}
	u := strings.ToUpper(s)
	hi, lo := u[0], u[1]
	if lo < '0' || lo > '9' {
		return 0, false
	}
	switch {
	case hi >= '0' && hi <= '9':
		return (hi-'0')*10 + (lo - '0'), true
	case hi >= 'A' && hi <= 'F':
		return (hi-'A'+0xA)<<4 | (lo - '0'), true
	}
	return 0, false
}
