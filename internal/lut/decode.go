// Package lut reads and writes the compressed binary lookup table that maps
// German bank routing numbers to check-digit method identifiers.
package lut

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/adler32"
)

// FileHeader is the fixed 28-byte tag opening every lookup table file.
const FileHeader = "BLZ Lookup Table/Format 1.0\n"

// Delta-control bytes. Values 0-250 are taken as the difference to the
// previous routing number directly.
const (
	ctlSubWord  = 251
	ctlSubByte  = 252
	ctlAbsolute = 253
	ctlAddWord  = 254
	ctlReserved = 255
)

// deletedMethod marks an entry that carries no mapping; one filler byte
// follows it in the stream.
const deletedMethod = 0xFF

var (
	ErrBadHeader        = errors.New("lut: bad file header")
	ErrChecksumMismatch = errors.New("lut: payload checksum mismatch")
	ErrTruncated        = errors.New("lut: truncated input")
	ErrBadControlByte   = errors.New("lut: reserved control byte")
)

// Decode parses a complete lookup table file into a routing-number to
// method-identifier map. The header, the Adler-32 checksum and the entry
// count are hard preconditions; any failure returns a nil map and one of
// the sentinel errors above.
func Decode(data []byte) (map[string]byte, error) {
	if len(data) < len(FileHeader) || string(data[:len(FileHeader)]) != FileHeader {
		return nil, ErrBadHeader
	}
	rest := data[len(FileHeader):]

	// The info line is free-form metadata, terminated by the next newline.
	nl := bytes.IndexByte(rest, '\n')
	if nl < 0 {
		return nil, ErrTruncated
	}
	rest = rest[nl+1:]

	if len(rest) < 8 {
		return nil, ErrTruncated
	}
	count := binary.LittleEndian.Uint32(rest[:4])
	stored := binary.LittleEndian.Uint32(rest[4:8])
	payload := rest[8:]

	if adler32.Checksum(payload) != stored {
		return nil, ErrChecksumMismatch
	}

	table := make(map[string]byte, count)
	var prev uint32
	pos := 0
	for n := uint32(0); n < count; n++ {
		if pos >= len(payload) {
			return nil, ErrTruncated
		}
		ctl := payload[pos]
		pos++

		switch {
		case ctl <= 250:
			prev += uint32(ctl)
		case ctl == ctlSubWord:
			if pos+2 > len(payload) {
				return nil, ErrTruncated
			}
			prev -= uint32(binary.LittleEndian.Uint16(payload[pos:]))
			pos += 2
		case ctl == ctlSubByte:
			if pos+1 > len(payload) {
				return nil, ErrTruncated
			}
			prev -= uint32(payload[pos])
			pos++
		case ctl == ctlAbsolute:
			if pos+4 > len(payload) {
				return nil, ErrTruncated
			}
			prev = binary.LittleEndian.Uint32(payload[pos:])
			pos += 4
		case ctl == ctlAddWord:
			if pos+2 > len(payload) {
				return nil, ErrTruncated
			}
			prev += uint32(binary.LittleEndian.Uint16(payload[pos:]))
			pos += 2
		default:
			return nil, ErrBadControlByte
		}

		if pos >= len(payload) {
			return nil, ErrTruncated
		}
		method := payload[pos]
		pos++

		if method == deletedMethod {
			if pos >= len(payload) {
				return nil, ErrTruncated
			}
			pos++
			continue
		}
		table[fmt.Sprintf("%08d", prev)] = method
	}

	return table, nil
}
