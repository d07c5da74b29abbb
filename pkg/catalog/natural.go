package catalog

import (
	"strconv"
	"unicode"
)

// naturalLess compares strings treating runs of digits as numbers,
// so "catalog/2.yaml" sorts before "catalog/10.yaml"
func naturalLess(s1, s2 string) bool {
	i, j := 0, 0
	for i < len(s1) && j < len(s2) {
		if isDigit(s1[i]) && isDigit(s2[j]) {
			start1, start2 := i, j
			for i < len(s1) && isDigit(s1[i]) {
				i++
			}
			for j < len(s2) && isDigit(s2[j]) {
				j++
			}
			n1, err1 := strconv.ParseUint(s1[start1:i], 10, 64)
			n2, err2 := strconv.ParseUint(s2[start2:j], 10, 64)
			if err1 == nil && err2 == nil && n1 != n2 {
				return n1 < n2
			}
			if err1 != nil || err2 != nil {
				if a, b := s1[start1:i], s2[start2:j]; a != b {
					return a < b
				}
			}
			continue
		}
		if s1[i] != s2[j] {
			return s1[i] < s2[j]
		}
		i++
		j++
	}
	return len(s1)-i < len(s2)-j
}

func isDigit(b byte) bool {
	return unicode.IsDigit(rune(b))
}
