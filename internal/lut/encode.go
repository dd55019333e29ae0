package lut

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/adler32"
	"strings"
)

// Entry is one routing-number mapping in file order. Method 0xFF marks a
// deleted routing number that decodes to no mapping.
type Entry struct {
	BLZ    string
	Method byte
}

// Encode builds a complete lookup table file. info becomes the free-form
// metadata line after the header and must not contain a newline itself.
// Entries are delta-encoded in the given order; sorting them by routing
// number first produces the smallest output.
func Encode(info string, entries []Entry) ([]byte, error) {
	if strings.ContainsRune(info, '\n') {
		return nil, fmt.Errorf("lut: info line contains a newline")
	}

	var payload bytes.Buffer
	var prev uint32
	for _, e := range entries {
		blz, err := parseBLZ(e.BLZ)
		if err != nil {
			return nil, err
		}

		diff := int64(blz) - int64(prev)
		switch {
		case diff >= 0 && diff <= 250:
			payload.WriteByte(byte(diff))
		case diff > 250 && diff <= 0xFFFF:
			payload.WriteByte(ctlAddWord)
			payload.Write(binary.LittleEndian.AppendUint16(nil, uint16(diff)))
		case diff < 0 && diff >= -0xFF:
			payload.WriteByte(ctlSubByte)
			payload.WriteByte(byte(-diff))
		case diff < -0xFF && diff >= -0xFFFF:
			payload.WriteByte(ctlSubWord)
			payload.Write(binary.LittleEndian.AppendUint16(nil, uint16(-diff)))
		default:
			payload.WriteByte(ctlAbsolute)
			payload.Write(binary.LittleEndian.AppendUint32(nil, blz))
		}
		prev = blz

		payload.WriteByte(e.Method)
		if e.Method == deletedMethod {
			payload.WriteByte(0)
		}
	}

	var out bytes.Buffer
	out.WriteString(FileHeader)
	out.WriteString(info)
	out.WriteByte('\n')
	out.Write(binary.LittleEndian.AppendUint32(nil, uint32(len(entries))))
	out.Write(binary.LittleEndian.AppendUint32(nil, adler32.Checksum(payload.Bytes())))
	out.Write(payload.Bytes())
	return out.Bytes(), nil
}

func parseBLZ(s string) (uint32, error) {
	if len(s) != 8 {
		return 0, fmt.Errorf("lut: routing number %q is not 8 digits", s)
	}
	var n uint32
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("lut: routing number %q is not 8 digits", s)
		}
		n = n*10 + uint32(s[i]-'0')
	}
	return n, nil
}
