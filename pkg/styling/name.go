// Package styling provides the engine's default collaborators: content
// hashing, short-name generation, and helpers that stringify and inject
// component CSS through the global sheet.
package styling

import "strconv"

// hashCode digests rule content with the djb2-xor variant. It is fast,
// stable across processes, and only ever used as a dedup key, never for
// anything adversarial.
func hashCode(s string) uint32 {
	h := uint32(5381)
	for i := len(s) - 1; i >= 0; i-- {
		h = (h * 33) ^ uint32(s[i])
	}
	return h
}

// Hash returns the content hash of the concatenated parts, in the
// string form the sheet's dedup cache is keyed by.
func Hash(parts ...string) string {
	var all string
	for _, p := range parts {
		all += p
	}
	return strconv.FormatUint(uint64(hashCode(all)), 10)
}

const nameChars = 52 // a-z A-Z

func alphabeticChar(code uint32) byte {
	if code > 25 {
		return byte(code + 39) // 26..51 -> 'A'..'Z'
	}
	return byte(code + 97) // 0..25 -> 'a'..'z'
}

// AlphabeticName turns a hash code into a short letters-only
// identifier, usable as a CSS class or animation name.
func AlphabeticName(code uint32) string {
	name := []byte{}
	x := code
	for ; x > nameChars; x = x / nameChars {
		name = append([]byte{alphabeticChar(x % nameChars)}, name...)
	}
	return string(append([]byte{alphabeticChar(x % nameChars)}, name...))
}

// Name returns the generated name for rule content: the alphabetic
// rendering of its content hash.
func Name(parts ...string) string {
	var all string
	for _, p := range parts {
		all += p
	}
	return AlphabeticName(hashCode(all))
}
