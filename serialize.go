package jsonrepair

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf16"
)

// serialize renders a value tree as compact JSON text. With ensureASCII,
// every code point above 0x7f is written as a \u escape (surrogate pairs
// for the astral planes), matching the common json.dumps default.
func serialize(v Value, ensureASCII bool) string {
	var buf bytes.Buffer
	writeValue(&buf, v, ensureASCII)
	return buf.String()
}

func writeValue(buf *bytes.Buffer, v Value, ensureASCII bool) {
	switch v.Kind {
	case KindBool:
		if v.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindInt:
		buf.WriteString(v.Int.String())
	case KindFloat:
		buf.WriteString(formatFloat(v.Float))
	case KindString:
		buf.WriteByte('"')
		writeEscapedString(buf, v.Str, ensureASCII)
		buf.WriteByte('"')
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.Arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeValue(buf, item, ensureASCII)
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		first := true
		v.Obj.Each(func(key string, value Value) {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			buf.WriteByte('"')
			writeEscapedString(buf, key, ensureASCII)
			buf.WriteByte('"')
			buf.WriteByte(':')
			writeValue(buf, value, ensureASCII)
		})
		buf.WriteByte('}')
	default:
		buf.WriteString("null")
	}
}

func writeEscapedString(buf *bytes.Buffer, value string, ensureASCII bool) {
	for _, r := range value {
		switch r {
		case '\\':
			buf.WriteString(`\\`)
		case '"':
			buf.WriteString(`\"`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				buf.WriteString(`\u`)
				buf.WriteString(hex4(r))
				continue
			}
			if ensureASCII && r > 0x7f {
				if r > 0xffff {
					for _, rr := range utf16.Encode([]rune{r}) {
						buf.WriteString(`\u`)
						buf.WriteString(hex4(rune(rr)))
					}
					continue
				}
				buf.WriteString(`\u`)
				buf.WriteString(hex4(r))
				continue
			}
			buf.WriteRune(r)
		}
	}
}

func hex4(r rune) string {
	s := strconv.FormatInt(int64(r), 16)
	return strings.Repeat("0", 4-len(s)) + strings.ToLower(s)
}

// formatFloat keeps the decimal point so a repaired float reads back as a
// float: 2 serializes as 2.0, not 2.
func formatFloat(value float64) string {
	formatted := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.Contains(formatted, ".") {
		formatted += ".0"
	}
	return formatted
}
