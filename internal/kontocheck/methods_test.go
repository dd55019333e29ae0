package kontocheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Each vector pins one branch of a check method. The accounts were worked
// out by hand from the published calculation rules.
func TestMethodVectors(t *testing.T) {
	tests := []struct {
		name    string
		id      byte
		account string
		want    Result
	}{
		// Cross-summed MOD-10 family.
		{"00 valid", 0x00, "0532013000", Valid},
		{"00 wrong digit", 0x00, "0532013001", Invalid},
		{"00 short form", 0x00, "9290701", Valid},
		{"03 delegates to 00", 0x03, "0532013000", Valid},
		{"08 below threshold", 0x08, "0000059999", Valid},
		{"08 checked", 0x08, "0000060004", Valid},
		{"08 checked invalid", 0x08, "0000060000", Invalid},
		{"09 no check", 0x09, "9999999999", Valid},
		{"13 first window", 0x0D, "0123456600", Valid},
		{"13 second window", 0x0D, "0001234566", Valid},
		{"13 both fail", 0x0D, "0001234567", Invalid},
		{"21 iterated cross sum", 0x15, "9900000001", Valid},
		{"41 nine flag", 0x29, "0009123456", Valid},
		{"41 default", 0x29, "0532013000", Valid},
		{"45 leading zero exempt", 0x2D, "0123456789", Valid},
		{"45 position five exempt", 0x2D, "2000100000", Valid},
		{"45 checked", 0x2D, "2000000006", Valid},
		{"49 fallback to 01", 0x31, "1000000009", Valid},
		{"57 range exempt", 0x39, "0012345678", Valid},
		{"57 prefix exempt", 0x39, "7777771234", Valid},
		{"57 checked", 0x39, "6512345676", Valid},
		{"57 checked invalid", 0x39, "6512345670", Invalid},
		{"59 short exempt", 0x3B, "0012345678", Valid},
		{"78 eight digits exempt", 0x4E, "0012345678", Valid},
		{"94 delegates to 00", 0x5E, "0532013000", Valid},

		// Plain weighted MOD-10.
		{"01 valid", 0x01, "1000000009", Valid},
		{"05 valid", 0x05, "1000000009", Valid},
		{"18 valid", 0x12, "1000000007", Valid},
		{"22 ones digits", 0x16, "0000000031", Valid},
		{"43 valid", 0x2B, "1000000001", Valid},

		// MOD-11 without zero collapse.
		{"02 valid", 0x02, "0000000019", Valid},
		{"02 remainder one", 0x02, "0000000060", InvalidFormat},
		{"04 valid", 0x04, "0000000019", Valid},
		{"07 valid", 0x07, "0000000019", Valid},
		{"11 remainder one maps to nine", 0x0B, "0000000069", Valid},
		{"12 undefined", 0x0C, "1234567890", InvalidFormat},
		{"14 valid", 0x0E, "0001000004", Valid},
		{"16 matching tail", 0x10, "0000000066", Valid},
		{"16 mismatching tail", 0x10, "0000000063", Invalid},
		{"23 valid", 0x17, "1000004000", Valid},
		{"25 valid", 0x19, "0000000019", Valid},
		{"25 overflow without work digit", 0x19, "0000000069", InvalidFormat},
		{"31 remainder as check digit", 0x1F, "1111111111", Valid},
		{"35 remainder as check digit", 0x23, "0000000012", Valid},
		{"35 overflow with matching tail", 0x23, "0000000199", Valid},
		{"54 prefix required", 0x36, "1234567890", InvalidFormat},
		{"54 valid", 0x36, "4910000009", Valid},
		{"56 valid overflow", 0x38, "9000000307", Valid},
		{"56 overflow rejected", 0x38, "0008000000", InvalidFormat},
		{"58 valid", 0x3A, "0000100005", Valid},
		{"71 low remainder direct", 0x47, "0000001001", Valid},
		{"71 valid", 0x47, "0001000007", Valid},
		{"97 number modulo eleven", 0x61, "0000000121", Valid},

		// Modified MOD-11 (remainders 0 and 1 collapse to 0).
		{"06 valid", 0x06, "0001234560", Valid},
		{"06 remainder one", 0x06, "0000000060", Valid},
		{"10 valid", 0x0A, "0001000020", Valid},
		{"15 four digits", 0x0F, "0000010006", Valid},
		{"19 valid", 0x13, "0000000019", Valid},
		{"20 valid", 0x14, "9000000006", Valid},
		{"26 shifted window", 0x1A, "0010000009", Valid},
		{"26 plain window", 0x1A, "1000000900", Valid},
		{"28 check digit position eight", 0x1C, "1000000300", Valid},
		{"30 positional weights", 0x1E, "1000000008", Valid},
		{"32 valid", 0x20, "0001234560", Valid},
		{"33 valid", 0x21, "0000100005", Valid},
		{"34 check digit position eight", 0x22, "1000000400", Valid},
		{"36 valid", 0x24, "0000010006", Valid},
		{"37 valid", 0x25, "0000100001", Valid},
		{"38 valid", 0x26, "0001000002", Valid},
		{"39 valid", 0x27, "0010000004", Valid},
		{"40 valid", 0x28, "1000000005", Valid},
		{"42 valid", 0x2A, "0100000002", Valid},
		{"44 delegates to 37", 0x2C, "0000100001", Valid},
		{"46 window three to seven", 0x2E, "0010000500", Valid},
		{"47 window four to eight", 0x2F, "0001000050", Valid},
		{"48 window three to eight", 0x30, "0010000040", Valid},
		{"50 first window", 0x32, "1000004000", Valid},
		{"55 valid", 0x37, "1000000003", Valid},
		{"64 check digit position seven", 0x40, "1000002000", Valid},
		{"66 valid", 0x42, "0100000004", Valid},
		{"66 zero remainder", 0x42, "0000000001", Valid},
		{"66 leading digit", 0x42, "1100000004", InvalidFormat},
		{"70 default window", 0x46, "0000000019", Valid},
		{"70 five exception", 0x46, "0005000009", Valid},
		{"81 valid", 0x51, "0001000004", Valid},
		{"81 internal exempt", 0x51, "0090000000", Valid},
		{"88 valid", 0x58, "0010000007", Valid},
		{"88 raised nine weight", 0x58, "0090000000", Valid},
		{"92 valid", 0x5C, "0001000009", Valid},
		{"95 range exempt", 0x5F, "0001999999", Valid},
		{"95 checked", 0x5F, "0500000007", Valid},
		{"96 range exempt", 0x60, "0001300000", Valid},
		{"98 valid", 0x62, "0010000007", Valid},
		{"99 range exempt", 0x63, "0400000000", Valid},

		// Special substitutions and transformations.
		{"17 valid", 0x11, "0100000000", Valid},
		{"24 valid", 0x18, "1000000009", Valid},
		{"27 below billion", 0x1B, "0009290701", Valid},
		{"27 transformed", 0x1B, "1234567895", Valid},
		{"29 transformed", 0x1D, "1234567895", Valid},
		{"69 prefix exempt", 0x45, "9300000000", Valid},
		{"69 transformed fallback", 0x45, "9712345673", Valid},

		// Multi-variant chains.
		{"51 first variant", 0x33, "0001000004", Valid},
		{"51 mod seven variant", 0x33, "0000100001", Valid},
		{"51 check digit seven rejected", 0x33, "0000100007", Invalid},
		{"51 internal account", 0x33, "0090000005", Valid},
		{"73 first variant", 0x49, "0001000009", Valid},
		{"73 mod seven variant", 0x49, "0000100005", Valid},
		{"76 valid", 0x4C, "0100000700", Valid},
		{"76 account type rejected", 0x4C, "1100000700", InvalidFormat},
		{"77 first weights", 0x4D, "0000010006", Valid},
		{"77 second weights", 0x4D, "0000001008", Valid},
		{"77 both fail", 0x4D, "0000001005", Invalid},
		{"80 mod seven fallback", 0x50, "1000000005", Valid},
		{"80 internal exempt", 0x50, "0090000000", Valid},
		{"83 divisible by ten", 0x53, "0050000000", Valid},
		{"83 internal exempt", 0x53, "0090000000", Valid},
		{"84 valid", 0x54, "0001000004", Valid},
		{"85 internal mod seven", 0x55, "0091000000", Valid},
		{"86 valid", 0x56, "0532013000", Valid},
		{"86 internal exempt", 0x56, "0090000000", Valid},
		{"87 valid", 0x57, "0000100005", Valid},
		{"87 internal exempt", 0x57, "0090000000", Valid},
		{"87 decided by the shifted window", 0x57, "0000010005", Valid},
		{"87 fails both variants", 0x57, "0000010002", Invalid},
		{"90 internal account", 0x5A, "0090000005", Valid},
		{"90 first variant", 0x5A, "0001000004", Valid},
		{"91 first weighting", 0x5B, "1000004000", Valid},
		{"93 short base number", 0x5D, "0000100005", Valid},
		{"93 mod seven fallback", 0x5D, "0000100001", Valid},

		// Position-eight and shifted check digits.
		{"60 sub-account skipped", 0x3C, "0010000008", Valid},
		{"61 valid", 0x3D, "1234567400", Valid},
		{"62 valid", 0x3E, "0010000800", Valid},
		{"63 plain window", 0x3F, "0123456600", Valid},
		{"63 shifted window", 0x3F, "0001234566", Valid},
		{"63 leading digit", 0x3F, "1123456600", InvalidFormat},
		{"65 valid", 0x41, "1234567400", Valid},
		{"67 valid", 0x43, "1000000800", Valid},
		{"68 04 prefix exempt", 0x44, "0400000000", Valid},
		{"68 ten digits", 0x44, "1009000001", Valid},
		{"68 ten digits without nine", 0x44, "1008000000", InvalidFormat},
		{"68 short second chance", 0x44, "0000000018", Valid},
		{"72 valid", 0x48, "0001234566", Valid},
		{"74 valid", 0x4A, "0000001008", Valid},
		{"74 half decade", 0x4A, "0000001003", Valid},
		{"74 long invalid", 0x4A, "0100000001", Invalid},
		{"75 six digits", 0x4B, "0000100008", Valid},
		{"75 ten digits rejected", 0x4B, "1000100008", InvalidFormat},
		{"79 short shape", 0x4F, "1000000090", Valid},
		{"79 leading zero rejected", 0x4F, "0123456789", InvalidFormat},
		{"82 shifted for short", 0x52, "0000100005", Valid},
		{"89 delegates to 10", 0x59, "0001000020", Valid},

		// Letter methods.
		{"A0 short exempt", 0xA0, "0000000123", Valid},
		{"A0 valid", 0xA0, "0000100001", Valid},
		{"A1 valid", 0xA1, "0012345674", Valid},
		{"A1 nine digits rejected", 0xA1, "0123456789", InvalidFormat},
		{"A2 first variant", 0xA2, "0532013000", Valid},
		{"A2 second variant", 0xA2, "0000000019", Valid},
		{"A3 fallback to 10", 0xA3, "0001000020", Valid},
		{"A4 first variant", 0xA4, "0001000004", Valid},
		{"A4 99 type", 0xA4, "0099000000", Valid},
		{"A5 valid", 0xA5, "0532013000", Valid},
		{"A5 failing nine rejected", 0xA5, "9532013000", InvalidFormat},
		{"A6 work digit eight", 0xA6, "1800000000", Valid},
		{"A6 default", 0xA6, "1000000009", Valid},
		{"A7 fallback to 03", 0xA7, "0532013000", Valid},
		{"A8 internal account", 0xA8, "0090000005", Valid},
		{"A8 customer account", 0xA8, "0001234560", Valid},
		{"A9 fallback to 06", 0xA9, "0001234560", Valid},
		{"B0 type exempt", 0xB0, "1000000100", Valid},
		{"B0 leading digit rejected", 0xB0, "0123456789", InvalidFormat},
		{"B1 first variant", 0xB1, "1000000009", Valid},
		{"B2 low lead", 0xB2, "0000000019", Valid},
		{"B2 high lead", 0xB2, "9532013001", Valid},
		{"B3 low lead", 0xB3, "0001234560", Valid},
		{"B4 nine lead", 0xB4, "9532013001", Valid},
		{"B5 first variant", 0xB5, "1000000009", Valid},
		{"B5 high lead stays invalid", 0xB5, "8000000000", Invalid},
		{"B7 in range", 0xB7, "0001000009", Valid},
		{"B7 outside range", 0xB7, "0006000000", Valid},
		{"B8 first variant", 0xB8, "9000000006", Valid},
		{"B8 transformed fallback", 0xB8, "1234567895", Valid},
		{"B9 two zeros", 0xB9, "0010000004", Valid},
		{"B9 two zeros plus five", 0xB9, "0010000009", Valid},
		{"B9 three zeros", 0xB9, "0001000006", Valid},
		{"B9 three zeros plus five", 0xB9, "0001000001", Valid},
		{"B9 four zeros rejected", 0xB9, "0000100004", InvalidFormat},
		{"C0 delegates to 20", 0xC0, "9000000006", Valid},
		{"C1 default variant", 0xC1, "0100000000", Valid},
		{"C1 five lead", 0xC1, "5000000006", Valid},
		{"C2 fallback to 00", 0xC2, "0532013000", Valid},
		{"C3 low lead", 0xC3, "0532013000", Valid},
		{"C3 nine lead", 0xC3, "9000100005", Valid},
		{"C4 low lead", 0xC4, "0000010006", Valid},
		{"C5 six digits", 0xC5, "0000100008", Valid},
		{"C5 unchecked shape", 0xC5, "7012345678", Valid},
		{"C6 fixed prefix sum", 0xC6, "0000000009", Valid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateAccount(tt.account, tt.id, ""),
				"method %#02x account %s", tt.id, tt.account)
		})
	}
}
