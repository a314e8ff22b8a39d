package queue

import (
	"fmt"
	"strings"
)

// Format renders items, given front first, in display order: rear item first,
// one per line, each indented by a single space and separated by commas:
//
//	[
//	 11,
//	 7,
//	 2
//	]
//
// An empty slice renders as "[]". Items are printed with the %v verb.
func Format[T any](items []T) string {
	if len(items) == 0 {
		return "[]"
	}

	var sb strings.Builder
	sb.WriteString("[\n")
	for i := len(items) - 1; i >= 0; i-- {
		sb.WriteByte(' ')
		fmt.Fprint(&sb, items[i])
		if i > 0 {
			sb.WriteString(",\n")
		}
	}
	sb.WriteString("\n]")
	return sb.String()
}
