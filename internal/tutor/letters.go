package tutor

import (
	"fmt"
	"strings"
)

// NumberToLetters converts a 1-based ordinal to its letter reference:
// 1 → A, 26 → Z, 27 → AA, 28 → AB. The scheme is bijective base-26
// (there is no zero digit), so every positive integer has exactly one
// spelling. Returns "" for n < 1.
func NumberToLetters(n int) string {
	if n < 1 {
		return ""
	}
	var buf []byte
	for n > 0 {
		n--
		buf = append(buf, byte('A'+n%26))
		n /= 26
	}
	// Digits were produced least-significant first.
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// LettersToNumber is the inverse of NumberToLetters. Case-insensitive.
func LettersToNumber(s string) (int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty letter reference")
	}
	n := 0
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid letter reference %q", s)
		}
		n = n*26 + int(r-'A') + 1
	}
	return n, nil
}
