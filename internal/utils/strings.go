package utils

import (
	"strconv"
	"strings"
)

// PadInt left pads num with zeros to width digits
func PadInt(num, width int) string {
	str := strconv.Itoa(num)
	if num < 0 {
		return str
	}

	padding := width - len(str)
	if padding > 0 {
		str = strings.Repeat("0", padding) + str
	}

	return str
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if n <= 0 || len(runes) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}

	return string(runes[:n-1]) + "…"
}
