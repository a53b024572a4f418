package utils

import (
	"fmt"
	"strconv"
)

// FormatINR renders an integer rupee amount with Indian digit
// grouping: the last three digits form one group, the rest pair up
// (1,00,000 for one lakh).
func FormatINR(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%sRs %s", sign, groupIndian(amount))
}

func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	out := "," + tail
	for len(head) > 2 {
		out = "," + head[len(head)-2:] + out
		head = head[:len(head)-2]
	}
	return head + out
}
