package jsonrepair

import "unicode"

// outcome is the dispatcher's return channel. stop marks the sentinel case:
// the scanner reached end of input, or it refused to consume a terminator
// that belongs to an enclosing structure. A stop outcome carries no value
// and is never stored inside an Arr or Obj.
type outcome struct {
	value Value
	stop  bool
}

func valueOutcome(v Value) outcome { return outcome{value: v} }

var stopOutcome = outcome{stop: true}

// parseValue decides which parser to invoke from the current character,
// consuming garbage a code point at a time until something recognizable
// turns up. Every branch either consumes input or returns, so the loop
// always terminates.
func (p *parser) parseValue() outcome {
	for {
		ch, ok := p.s.peek(0)
		if !ok {
			return stopOutcome
		}
		switch {
		case ch == '{':
			p.s.advance()
			return valueOutcome(p.parseObject())
		case ch == '[':
			p.s.advance()
			return valueOutcome(p.parseArray())
		case ch == '#' || ch == '/':
			p.parseComment()
		case isStringDelimiter(ch) || unicode.IsLetter(ch):
			if p.ctx.empty() && !isStringDelimiter(ch) {
				// bare words at the top level are only ever literals;
				// anything else is surrounding prose
				if v, ok := p.parseLiteral(); ok {
					return valueOutcome(v)
				}
				p.s.advance()
				continue
			}
			return valueOutcome(p.parseString())
		case unicode.IsDigit(ch) || ch == '-' || ch == '.':
			v, ok := p.parseNumber()
			if !ok {
				p.s.advance()
				continue
			}
			return valueOutcome(v)
		case ch == ']' && p.ctx.is(frameArray):
			return stopOutcome
		case ch == '}' && (p.ctx.is(frameObjectKey) || p.ctx.is(frameObjectValue)):
			return stopOutcome
		default:
			p.s.advance()
		}
	}
}
