package radial

// AlphaNumerate converts a zero-based series index to the alphabetic suffix
// used in generated series class names: 0 is "a", 25 is "z", 26 is "aa" and
// so on (bijective base 26). Negative indices return "a".
func AlphaNumerate(index int) string {
	if index < 0 {
		index = 0
	}
	// Build digits least-significant first.
	var buf [8]byte
	n := len(buf)
	for {
		n--
		buf[n] = byte('a' + index%26)
		index = index/26 - 1
		if index < 0 {
			break
		}
	}
	return string(buf[n:])
}
