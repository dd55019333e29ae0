package lut

import (
	"encoding/binary"
	"hash/adler32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFile assembles a lookup table file around an arbitrary payload,
// with the checksum computed so only the fields under test are wrong.
func buildFile(info string, count uint32, payload []byte) []byte {
	out := []byte(FileHeader)
	out = append(out, info...)
	out = append(out, '\n')
	out = binary.LittleEndian.AppendUint32(out, count)
	out = binary.LittleEndian.AppendUint32(out, adler32.Checksum(payload))
	return append(out, payload...)
}

func TestDecodeRoundTrip(t *testing.T) {
	entries := []Entry{
		{BLZ: "10000000", Method: 0x09}, // absolute
		{BLZ: "10000005", Method: 0x00}, // small forward delta
		{BLZ: "10001000", Method: 0x0A}, // two-byte forward delta
		{BLZ: "10000990", Method: 0x32}, // one-byte backward delta
		{BLZ: "10000100", Method: 0xB9}, // two-byte backward delta
		{BLZ: "20000000", Method: 0xC6}, // absolute again
		{BLZ: "20000001", Method: 0xFF}, // deleted, no mapping
	}

	data, err := Encode("Bundesbank 2024-06-03", entries)
	require.NoError(t, err)

	table, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, map[string]byte{
		"10000000": 0x09,
		"10000005": 0x00,
		"10001000": 0x0A,
		"10000990": 0x32,
		"10000100": 0xB9,
		"20000000": 0xC6,
	}, table)
}

func TestDecodeAbsoluteEntry(t *testing.T) {
	data, err := Encode("", []Entry{{BLZ: "10000000", Method: 0x09}})
	require.NoError(t, err)

	table, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, map[string]byte{"10000000": 0x09}, table)
}

func TestDecodeKeepsLeadingZeros(t *testing.T) {
	data, err := Encode("", []Entry{{BLZ: "00012345", Method: 0x06}})
	require.NoError(t, err)

	table, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, map[string]byte{"00012345": 0x06}, table)
}

func TestDecodeBadHeader(t *testing.T) {
	data, err := Encode("", []Entry{{BLZ: "10000000", Method: 0x09}})
	require.NoError(t, err)
	data[0] ^= 0x01

	_, err = Decode(data)
	assert.ErrorIs(t, err, ErrBadHeader)
}

func TestDecodeShortInput(t *testing.T) {
	_, err := Decode([]byte("BLZ"))
	assert.ErrorIs(t, err, ErrBadHeader)
}

func TestDecodeChecksumMismatch(t *testing.T) {
	data, err := Encode("info", []Entry{{BLZ: "10000000", Method: 0x09}})
	require.NoError(t, err)

	t.Run("flipped checksum byte", func(t *testing.T) {
		corrupt := append([]byte(nil), data...)
		corrupt[len(FileHeader)+len("info\n")+4] ^= 0x01
		_, err := Decode(corrupt)
		assert.ErrorIs(t, err, ErrChecksumMismatch)
	})

	t.Run("flipped payload byte", func(t *testing.T) {
		corrupt := append([]byte(nil), data...)
		corrupt[len(corrupt)-1] ^= 0x01
		_, err := Decode(corrupt)
		assert.ErrorIs(t, err, ErrChecksumMismatch)
	})
}

func TestDecodeTruncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "no info line", data: []byte(FileHeader + "no terminator")},
		{name: "missing count and checksum", data: buildFile("x", 0, nil)[:len(FileHeader)+2+3]},
		{name: "count without payload", data: buildFile("x", 1, nil)},
		{name: "absolute entry cut short", data: buildFile("x", 1, []byte{253, 0x00, 0x96})},
		{name: "missing method byte", data: buildFile("x", 1, []byte{5})},
		{name: "deleted entry without filler", data: buildFile("x", 1, []byte{5, 0xFF})},
		{name: "count exceeds entries", data: buildFile("x", 2, []byte{5, 0x09})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			assert.ErrorIs(t, err, ErrTruncated)
		})
	}
}

func TestDecodeReservedControlByte(t *testing.T) {
	_, err := Decode(buildFile("x", 1, []byte{255, 0x09}))
	assert.ErrorIs(t, err, ErrBadControlByte)
}

func TestEncodeRejectsBadInput(t *testing.T) {
	_, err := Encode("two\nlines", nil)
	assert.Error(t, err)

	for _, blz := range []string{"1234567", "123456789", "1234567a", ""} {
		_, err := Encode("", []Entry{{BLZ: blz, Method: 0x00}})
		assert.Error(t, err, "routing number %q", blz)
	}
}
