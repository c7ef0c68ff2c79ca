package utils

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SixID is a 6-byte identifier. It travels as a Crockford Base32 string in
// JSON and as BSON BinData with custom subtype 0x80 in MongoDB.
type SixID [6]byte

// NewSixID creates a new random SixID.
func NewSixID() SixID {
	var id SixID
	if _, err := rand.Read(id[:]); err != nil {
		// crypto/rand failing is effectively unrecoverable; a zero ID will
		// be caught by the duplicate-key retry on insert.
		return SixID{}
	}
	return id
}

// Crockford Base32 alphabet (uppercase, no I/L/O/U).
const crockfordAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

var crockfordDecodeMap = func() map[byte]byte {
	m := make(map[byte]byte, 64)
	for i := 0; i < len(crockfordAlphabet); i++ {
		m[crockfordAlphabet[i]] = byte(i)
	}
	lower := strings.ToLower(crockfordAlphabet)
	for i := 10; i < len(lower); i++ {
		m[lower[i]] = byte(i)
	}
	// Commonly confused characters.
	m['o'] = m['0']
	m['O'] = m['0']
	m['i'] = m['1']
	m['l'] = m['1']
	return m
}()

// String returns the Crockford Base32 representation (10 characters).
func (u SixID) String() string {
	result := make([]byte, 0, 10)
	var bits, offset uint
	for i := 0; i < 6; i++ {
		bits |= uint(u[i]) << offset
		offset += 8
		for offset >= 5 {
			result = append(result, crockfordAlphabet[bits&0x1F])
			bits >>= 5
			offset -= 5
		}
	}
	if offset > 0 {
		result = append(result, crockfordAlphabet[bits&0x1F])
	}
	return string(result)
}

// IsZero reports whether the ID is all zero bytes.
func (u SixID) IsZero() bool {
	return u == SixID{}
}

// ParseSixID decodes a Crockford Base32 string into a SixID. Hyphens and
// spaces are stripped for leniency.
func ParseSixID(s string) (SixID, error) {
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	if len(s) != 10 {
		return SixID{}, errors.New("invalid SixID: string length must be 10")
	}

	var bits uint64
	var offset uint
	var id SixID
	byteIndex := 0
	for i := 0; i < 10; i++ {
		val, ok := crockfordDecodeMap[s[i]]
		if !ok {
			return SixID{}, errors.New("invalid character in SixID")
		}
		bits |= uint64(val) << offset
		offset += 5
		for offset >= 8 && byteIndex < 6 {
			id[byteIndex] = byte(bits & 0xFF)
			byteIndex++
			bits >>= 8
			offset -= 8
		}
	}
	if byteIndex != 6 {
		return SixID{}, errors.New("invalid SixID: could not decode 6 bytes")
	}
	return id, nil
}

// MarshalJSON encodes the SixID as its Crockford Base32 string.
func (u SixID) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON decodes a SixID from its Crockford Base32 string.
func (u *SixID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseSixID(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalBSONValue stores the SixID as BinData with subtype 0x80.
func (u SixID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(primitive.Binary{Subtype: 0x80, Data: u[:]})
}

// UnmarshalBSONValue restores a SixID from BinData with subtype 0x80.
func (u *SixID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bsontype.Null {
		*u = SixID{}
		return nil
	}
	raw := bson.RawValue{Type: t, Value: data}
	var bin primitive.Binary
	if err := raw.Unmarshal(&bin); err != nil {
		return errors.New("invalid BSON type for SixID: expected binary")
	}
	if bin.Subtype != 0x80 || len(bin.Data) != 6 {
		return errors.New("invalid BSON binary for SixID: wrong subtype or length")
	}
	copy((*u)[:], bin.Data)
	return nil
}
