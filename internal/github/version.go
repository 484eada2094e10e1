package github

import "strings"

// CompareVersions compares two version strings numerically after
// normalization: -1 if a < b, 0 if equal, 1 if a > b. Missing segments
// compare as zero, so "14.1" equals "14.1.0".
func CompareVersions(a, b string) int {
	va := splitNumeric(NormalizeVersion(a))
	vb := splitNumeric(NormalizeVersion(b))
	n := len(va)
	if len(vb) > n {
		n = len(vb)
	}
	for i := 0; i < n; i++ {
		ai, bi := 0, 0
		if i < len(va) {
			ai = va[i]
		}
		if i < len(vb) {
			bi = vb[i]
		}
		if ai > bi {
			return 1
		}
		if ai < bi {
			return -1
		}
	}
	return 0
}

// NormalizeVersion strips any non-numeric prefix and suffix, so both
// "ripgrep 14.1.0 (rev ...)" and "v14.1.0" normalize to "14.1.0".
func NormalizeVersion(s string) string {
	s = strings.TrimSpace(s)
	start := 0
	for start < len(s) && (s[start] < '0' || s[start] > '9') {
		start++
	}
	s = s[start:]
	end := 0
	for end < len(s) {
		c := s[end]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		end++
	}
	return s[:end]
}

func splitNumeric(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ".")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n := 0
		for i := 0; i < len(p); i++ {
			if p[i] < '0' || p[i] > '9' {
				break
			}
			n = n*10 + int(p[i]-'0')
		}
		out = append(out, n)
	}
	return out
}
