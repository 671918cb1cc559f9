package money

import "testing"

func TestFormatMinor(t *testing.T) {
	cases := map[int64]string{
		0:      "0.00",
		5:      "0.05",
		500:    "5.00",
		123456: "1234.56",
		-250:   "-2.50",
	}
	for input, want := range cases {
		if got := FormatMinor(input); got != want {
			t.Fatalf("FormatMinor(%d) = %q, want %q", input, got, want)
		}
	}
}
