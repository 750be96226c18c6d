package checklist

import (
	"fmt"
	"strings"
)

// ColumnLabel converts a zero-based column index to its spreadsheet letter
// label using the bijective base-26 scheme: 0→"A", 25→"Z", 26→"AA".
func ColumnLabel(index int) string {
	if index < 0 {
		return ""
	}
	var b []byte
	n := index
	for {
		b = append([]byte{byte('A' + n%26)}, b...)
		n = n/26 - 1
		if n < 0 {
			break
		}
	}
	return string(b)
}

// ColumnIndex is the inverse of ColumnLabel: "A"→0, "Z"→25, "AA"→26.
func ColumnIndex(label string) (int, error) {
	label = strings.ToUpper(strings.TrimSpace(label))
	if label == "" {
		return 0, fmt.Errorf("empty column label")
	}
	n := 0
	for _, r := range label {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid column label %q", label)
		}
		n = n*26 + int(r-'A') + 1
	}
	return n - 1, nil
}
