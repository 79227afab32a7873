package uhash

import (
	"encoding/binary"
	"hash/crc32"
	"unicode/utf16"

	"github.com/samber/lo"
)

// deprecatedTable is the non-reflected CRC-32 table of polynomial 0x04C11DB7.
var deprecatedTable = func() [256]uint32 {
	table := [256]uint32{}
	for i := range table {
		crc := uint32(i) << 24
		for j := 0; j < 8; j++ {
			if crc&0x80000000 != 0 {
				crc = (crc << 1) ^ 0x04C11DB7
			} else {
				crc <<= 1
			}
		}
		table[i] = crc
	}
	return table
}()

func toUpper(ch uint16) uint16 {
	if ch >= 'a' && ch <= 'z' {
		return ch - ('a' - 'A')
	}
	return ch
}

func isPureAnsi(s string) bool {
	return lo.EveryBy([]rune(s), func(r rune) bool { return r <= 0x7F })
}

func codeUnits(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// HashCaseInsensitive is the deprecated case-insensitive hash. Narrow names
// advance the CRC once per character, wide names twice.
func HashCaseInsensitive(s string) uint32 {
	wide := !isPureAnsi(s)
	return lo.Reduce(
		codeUnits(s),
		func(hash uint32, unit uint16, _ int) uint32 {
			ch := toUpper(unit)
			hash = ((hash >> 8) & 0x00FFFFFF) ^ deprecatedTable[(hash^uint32(ch&0xFF))&0xFF]
			if wide {
				hash = ((hash >> 8) & 0x00FFFFFF) ^ deprecatedTable[(hash^uint32(ch>>8))&0xFF]
			}
			return hash
		},
		0,
	)
}

// HashCaseSensitive is the CRC-32 (IEEE) of every character widened to four
// little-endian bytes.
func HashCaseSensitive(s string) uint32 {
	units := codeUnits(s)
	bs := make([]byte, len(units)*4)
	for i, unit := range units {
		binary.LittleEndian.PutUint32(bs[i*4:], uint32(unit))
	}
	return crc32.ChecksumIEEE(bs)
}

// HashName is the value stored after each name map entry.
func HashName(s string) uint32 {
	return (HashCaseSensitive(s)&0xFFFF)<<16 | HashCaseInsensitive(s)&0xFFFF
}
