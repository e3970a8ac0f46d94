package conv

// Utoa writes the base-10 representation of u into buf and returns the
// used tail slice. buf should be length >= 20 for uint64.
// No allocations; no fmt/strconv dependency (firmware-safe).
func Utoa(buf []byte, u uint64) []byte {
	i := len(buf)
	if i == 0 {
		return buf[:0]
	}
	if u == 0 {
		i--
		buf[i] = '0'
		return buf[i:]
	}
	for u > 0 && i > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	return buf[i:]
}

// Itoa is Utoa with a sign for negative n.
func Itoa(buf []byte, n int64) []byte {
	if n >= 0 {
		return Utoa(buf, uint64(n))
	}
	s := Utoa(buf[1:], uint64(-n))
	// s aliases buf; step back one byte for the sign.
	start := len(buf) - len(s) - 1
	buf[start] = '-'
	return buf[start:]
}
