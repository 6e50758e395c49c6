package jsonrepair

import "unicode"

// parseLiteral recognizes true, false, and null case-insensitively, so that
// TRUE, False, and NULL repair to their lowercase JSON forms. On a partial
// or failed match the scanner is restored and the second return is false.
func (p *parser) parseLiteral() (Value, bool) {
	ch, ok := p.s.peek(0)
	if !ok {
		return Value{}, false
	}
	var token string
	var value Value
	switch unicode.ToLower(ch) {
	case 't':
		token, value = "true", Bool(true)
	case 'f':
		token, value = "false", Bool(false)
	case 'n':
		token, value = "null", Null
	default:
		return Value{}, false
	}
	start := p.s.save()
	for _, want := range token {
		got, ok := p.s.peek(0)
		if !ok || unicode.ToLower(got) != want {
			p.s.restore(start)
			return Value{}, false
		}
		p.s.advance()
	}
	return value, true
}
