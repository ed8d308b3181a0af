package domain

import (
	"fmt"
	"strings"
)

const (
	parcelCodePrefix = "CLS"
	unknownCityCode  = "XXX"
	cityCodeLen      = 3
)

// NextID returns max(ids)+1, or 1 when ids is empty.
// It is recomputed from the live ids on every call, so deleting the
// current maximum lets the next create reuse that id.
func NextID(ids []int64) int64 {
	var max int64
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// CityCode derives the three-letter code of a city name: the trimmed,
// upper-cased name truncated to three runes, or right-padded with 'X'.
// A nil or empty name yields "XXX".
//
// Distinct cities sharing their first three letters get the same code
// (Nouadhibou and Nouakchott are both "NOU"); no disambiguation is done.
func CityCode(name *string) string {
	if name == nil || *name == "" {
		return unknownCityCode
	}

	normalized := []rune(strings.ToUpper(strings.TrimSpace(*name)))
	if len(normalized) >= cityCodeLen {
		return string(normalized[:cityCodeLen])
	}
	return string(normalized) + strings.Repeat("X", cityCodeLen-len(normalized))
}

// ParcelCode formats the human-readable code CLS-<ORIGIN>-<DEST>-<ID>,
// the id being zero-padded to at least four digits.
func ParcelCode(id int64, origin, destination *string) string {
	return fmt.Sprintf("%s-%s-%s-%04d", parcelCodePrefix, CityCode(origin), CityCode(destination), id)
}
