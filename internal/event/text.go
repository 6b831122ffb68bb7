package event

import "golang.org/x/text/unicode/norm"

// Normalize returns s in Unicode normalization form C.
// ASCII input is returned unchanged.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// ContainsFold reports whether substr is within s under ASCII case folding.
// Bytes outside A-Z are compared exactly. An empty substr matches everything.
func ContainsFold(s, substr string) bool {
	n := len(substr)
	if n == 0 {
		return true
	}
	for i := 0; i+n <= len(s); i++ {
		if equalFoldASCII(s[i:i+n], substr) {
			return true
		}
	}
	return false
}

func equalFoldASCII(a, b string) bool {
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
