// Package linetest helps tests build multi-line source fixtures without
// embedding raw "\n" escapes or fighting gofmt over indentation.
package linetest

import "strings"

// JoinLF joins multiple lines with LF line endings.
//
// Example:
//
//	src := linetest.JoinLF(
//		"func main() {",
//		"\tfmt.Println(\"hi\")",
//		"}",
//	) // -> "func main() {\n\tfmt.Println(\"hi\")\n}"
func JoinLF(lines ...string) string {
	return strings.Join(lines, "\n")
}

// JoinCRLF joins multiple lines with CRLF line endings, for fixtures that
// exercise CRLF-terminated source files.
func JoinCRLF(lines ...string) string {
	var sb strings.Builder

	for i, l := range lines {
		if i > 0 {
			sb.WriteString("\r\n")
		}

		sb.WriteString(l)
	}

	return sb.String()
}
