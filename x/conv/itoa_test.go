package conv

import "testing"

func TestUtoa(t *testing.T) {
	cases := []struct {
		u    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{10, "10"},
		{99, "99"},
		{12345, "12345"},
		{18446744073709551615, "18446744073709551615"},
	}
	var buf [20]byte
	for _, c := range cases {
		if got := string(Utoa(buf[:], c.u)); got != c.want {
			t.Errorf("Utoa(%d) = %q, want %q", c.u, got, c.want)
		}
	}
}

func TestUtoaTruncatesOnShortBuf(t *testing.T) {
	var buf [2]byte
	// Only the low-order digits fit.
	if got := string(Utoa(buf[:], 12345)); got != "45" {
		t.Errorf("Utoa short buf = %q, want %q", got, "45")
	}
	if got := string(Utoa(nil, 5)); got != "" {
		t.Errorf("Utoa nil buf = %q, want empty", got)
	}
}

func TestItoa(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{21, "21"},
		{-1, "-1"},
		{-42, "-42"},
	}
	var buf [21]byte
	for _, c := range cases {
		if got := string(Itoa(buf[:], c.n)); got != c.want {
			t.Errorf("Itoa(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}
