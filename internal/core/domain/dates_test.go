package domain

import "testing"

func TestPadDateLower(t *testing.T) {
	cases := map[string]string{
		"1808":       "1808-01-01",
		"1808-03":    "1808-03-01",
		"1808-03-12": "1808-03-12",
		"":           "",
	}
	for in, want := range cases {
		if got := PadDateLower(in); got != want {
			t.Errorf("PadDateLower(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPadDateUpper(t *testing.T) {
	cases := map[string]string{
		"1808":       "1808-12-31",
		"1808-02":    "1808-02-31",
		"1808-03-12": "1808-03-12",
		"":           "",
	}
	for in, want := range cases {
		if got := PadDateUpper(in); got != want {
			t.Errorf("PadDateUpper(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDateWithin(t *testing.T) {
	cases := []struct {
		date, notBefore, notAfter string
		want                      bool
	}{
		{"1808-03-12", "1808", "1808", true},
		{"1808-03-12", "1808-03", "1808-03", true},
		{"1808-03-12", "1808-04", "1808-12", false},
		{"1807", "1807-06", "1808", true},
		{"1808-03-12", "", "", true},
		{"1808-03-12", "1808-03-12", "1808-03-12", true},
		{"", "", "", true},
		{"", "1808", "", false},
	}
	for _, c := range cases {
		if got := DateWithin(c.date, c.notBefore, c.notAfter); got != c.want {
			t.Errorf("DateWithin(%q, %q, %q) = %v, want %v", c.date, c.notBefore, c.notAfter, got, c.want)
		}
	}
}
