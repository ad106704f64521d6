package compact

import (
	"math"
	"slices"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Assignment pairs a name with its code.
type Assignment struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

// CodeAt returns the code at 0-based position i of the sequence
// a, b, ..., z, aa, ab, ..., az, ba, ..., zz, aaa, ...
//
// The sequence is bijective base 26: every string over a-z appears exactly
// once, shorter strings first. It panics if i is negative.
func CodeAt(i int) string {
	if i < 0 {
		panic("compact: negative code index")
	}

	var buf [16]byte

	pos := len(buf)
	for n := i; n >= 0; n = n/26 - 1 {
		pos--
		buf[pos] = alphabet[n%26]
	}

	return string(buf[pos:])
}

// IndexOf returns the position of code in the CodeAt sequence. It reports
// false for strings outside the sequence and for positions beyond
// math.MaxInt.
func IndexOf(code string) (int, bool) {
	if code == "" {
		return 0, false
	}

	var n uint64
	for i := range len(code) {
		c := code[i]
		if c < 'a' || c > 'z' {
			return 0, false
		}

		digit := uint64(c-'a') + 1
		if n > (math.MaxUint64-digit)/26 {
			return 0, false
		}

		n = n*26 + digit
	}

	if n-1 > math.MaxInt {
		return 0, false
	}

	return int(n - 1), true
}

// Assign sorts names byte-wise and gives the Nth name the Nth code. Names
// must be distinct; Assign does not check.
func Assign(names []string) []Assignment {
	sorted := slices.Clone(names)
	slices.Sort(sorted)

	out := make([]Assignment, len(sorted))
	for i, name := range sorted {
		out[i] = Assignment{Name: name, Code: CodeAt(i)}
	}

	return out
}
