package html

import "strings"

var replacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Encode escapes text for use as element content. Quotes are escaped too,
// existing entities are encoded again ("&nbsp;" becomes "&amp;nbsp;") and
// invalid UTF-8 sequences are replaced with U+FFFD.
func Encode(content string) string {
	return replacer.Replace(strings.ToValidUTF8(content, "\uFFFD"))
}

// EncodeAttribute escapes a value for use inside a double quoted attribute.
func EncodeAttribute(value string) string {
	return replacer.Replace(strings.ToValidUTF8(value, "\uFFFD"))
}
