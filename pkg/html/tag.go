package html

import (
	"errors"
	"slices"
	"strings"
)

// ErrEmptyTagName is returned when a tag is rendered without a name.
var ErrEmptyTagName = errors.New("Tag name cannot be empty.")

// voidElements cannot have children and render without a closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoid reports whether name is an HTML5 void element.
func IsVoid(name string) bool {
	return voidElements[strings.ToLower(strings.TrimSpace(name))]
}

// Tag renders an element. Void elements ignore content and never emit a
// closing tag.
func Tag(name string, attrs Attributes, content string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyTagName
	}

	var builder strings.Builder
	builder.Grow(len(name)*2 + len(content) + 32)
	builder.WriteByte('<')
	builder.WriteString(name)
	builder.WriteString(RenderAttributes(attrs))
	builder.WriteByte('>')
	if IsVoid(name) {
		return builder.String(), nil
	}
	builder.WriteString(content)
	builder.WriteString("</")
	builder.WriteString(name)
	builder.WriteByte('>')
	return builder.String(), nil
}

// Block renders a container element whose content sits on its own lines:
//
//	<div>
//	content
//	</div>
//
// Empty content renders an empty element.
func Block(name string, attrs Attributes, content string) (string, error) {
	if content == "" {
		return Tag(name, attrs, "")
	}
	return Tag(name, attrs, "\n"+content+"\n")
}

// Lines joins non-empty fragments with newlines.
func Lines(fragments ...string) string {
	kept := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		if fragment == "" {
			continue
		}
		kept = append(kept, fragment)
	}
	return strings.Join(kept, "\n")
}

// attributeOrder fixes the position of well known attributes; anything else
// follows in name order.
var attributeOrder = []string{
	"type",
	"id",
	"class",
	"name",
	"value",
	"href",
	"loading",
	"src",
	"srcset",
	"for",
	"form",
	"action",
	"method",
	"selected",
	"checked",
	"readonly",
	"disabled",
	"multiple",
	"size",
	"maxlength",
	"minlength",
	"width",
	"height",
	"rows",
	"cols",
	"alt",
	"title",
	"rel",
	"media",
}

var attributeRank = func() map[string]int {
	ranks := make(map[string]int, len(attributeOrder))
	for idx, name := range attributeOrder {
		ranks[name] = idx
	}
	return ranks
}()

// booleanAttributes render bare when "true" and are dropped when "false".
var booleanAttributes = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"ismap":           true,
	"itemscope":       true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"nomodule":        true,
	"novalidate":      true,
	"open":            true,
	"playsinline":     true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// RenderAttributes renders attrs with a leading space per attribute.
func RenderAttributes(attrs Attributes) string {
	if len(attrs) == 0 {
		return ""
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		if strings.TrimSpace(name) == "" {
			continue
		}
		names = append(names, name)
	}
	slices.SortFunc(names, compareAttributeNames)

	var builder strings.Builder
	for _, name := range names {
		value := attrs[name]
		if booleanAttributes[name] {
			switch value {
			case "true":
				builder.WriteByte(' ')
				builder.WriteString(name)
				continue
			case "false":
				continue
			}
		}
		builder.WriteByte(' ')
		builder.WriteString(name)
		builder.WriteString(`="`)
		builder.WriteString(EncodeAttribute(value))
		builder.WriteByte('"')
	}
	return builder.String()
}

func compareAttributeNames(a, b string) int {
	rankA, knownA := attributeRank[a]
	rankB, knownB := attributeRank[b]
	switch {
	case knownA && knownB:
		return rankA - rankB
	case knownA:
		return -1
	case knownB:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
