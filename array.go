package jsonrepair

import "unicode"

// parseArray collects values until a closing bracket, a closing brace, or
// end of input. It tolerates loose separators, drops '...' truncation
// markers, and recognizes the "string that is actually a key" shape, where
// a quoted token followed by a colon means an object lost its brace.
func (p *parser) parseArray() Value {
	arr := []Value{}
	p.ctx.push(frameArray)
	for {
		p.s.skipWS()
		ch, ok := p.s.peek(0)
		if !ok || ch == ']' || ch == '}' {
			break
		}
		if ch == '#' || ch == '/' {
			p.parseComment()
			continue
		}
		var value Value
		sawStop := false
		if isStringDelimiter(ch) {
			i := p.s.skipToCharacter(ch, 1)
			i = p.s.skipWhitespacesAt(i + 1)
			if next, ok := p.s.peek(i); ok && next == ':' {
				value = p.parseObject()
			} else {
				value = p.parseString()
			}
		} else {
			out := p.parseValue()
			if out.stop {
				sawStop = true
			} else {
				value = out.value
			}
		}

		switch {
		case sawStop:
			// the terminator is handled at the top of the loop
		case isStrictlyEmpty(value):
			if next, ok := p.s.peek(0); !ok || (next != ']' && next != ',') {
				p.s.advance()
			} else {
				arr = append(arr, value)
			}
		case value.Kind == KindString && value.Str == "...":
			if prev, ok := p.s.peek(-1); ok && prev == '.' {
				p.log("while parsing an array, found a stray '...'; ignoring it")
			} else {
				arr = append(arr, value)
			}
		default:
			arr = append(arr, value)
		}

		for {
			ch, ok := p.s.peek(0)
			if !ok || ch == ']' || (!unicode.IsSpace(ch) && ch != ',') {
				break
			}
			p.s.advance()
		}
	}

	if ch, ok := p.s.peek(0); ok {
		if ch != ']' {
			p.log("while parsing an array, missed the closing ], ignoring it")
		}
		// tolerant closer: consume ] or the } that stopped the loop
		p.s.advance()
	}
	p.ctx.pop()
	return Arr(arr)
}
