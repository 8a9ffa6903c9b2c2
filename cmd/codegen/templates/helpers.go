package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// pairedStrings joins "<left><i><right><i>" for every i below count.
func pairedStrings(left, right string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(left)
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(right)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
