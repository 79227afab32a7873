package utypes

import (
	"encoding/binary"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Guid is an engine FGuid: four little-endian 32-bit words, 16 raw bytes on disk.
type Guid [16]byte

// NewGuid packs four words the way the engine serializes them.
func NewGuid(a, b, c, d uint32) Guid {
	guid := Guid{}
	binary.LittleEndian.PutUint32(guid[0:], a)
	binary.LittleEndian.PutUint32(guid[4:], b)
	binary.LittleEndian.PutUint32(guid[8:], c)
	binary.LittleEndian.PutUint32(guid[12:], d)
	return guid
}

// ParseGuid reads the "375EC13C-06E4-48FB-B500-84F0262A717E" form, whose hex
// digits spell the four words in order.
func ParseGuid(s string) (Guid, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Guid{}, errors.Wrapf(err, `utypes.ParseGuid error parsing "%s"`, s)
	}
	return NewGuid(
		binary.BigEndian.Uint32(id[0:]),
		binary.BigEndian.Uint32(id[4:]),
		binary.BigEndian.Uint32(id[8:]),
		binary.BigEndian.Uint32(id[12:]),
	), nil
}

func MustParseGuid(s string) Guid {
	guid, err := ParseGuid(s)
	if err != nil {
		panic(err)
	}
	return guid
}

func (g Guid) Words() [4]uint32 {
	return [4]uint32{
		binary.LittleEndian.Uint32(g[0:]),
		binary.LittleEndian.Uint32(g[4:]),
		binary.LittleEndian.Uint32(g[8:]),
		binary.LittleEndian.Uint32(g[12:]),
	}
}

func (g Guid) IsZero() bool {
	return g == Guid{}
}

func (g Guid) String() string {
	id := uuid.UUID{}
	for i, word := range g.Words() {
		binary.BigEndian.PutUint32(id[i*4:], word)
	}
	return strings.ToUpper(id.String())
}

func (g Guid) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}
