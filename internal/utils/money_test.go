package utils

import "testing"

func TestFormatINRIndianGrouping(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Rs 0"},
		{800, "Rs 800"},
		{1500, "Rs 1,500"},
		{100000, "Rs 1,00,000"},
		{2350000, "Rs 23,50,000"},
		{10000000, "Rs 1,00,00,000"},
		{-1500, "-Rs 1,500"},
	}
	for _, tc := range cases {
		if got := FormatINR(tc.amount); got != tc.want {
			t.Fatalf("FormatINR(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
