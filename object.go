package jsonrepair

import (
	"strings"
	"unicode"
)

// parseObject collects key/value pairs, tolerating missing quotes, colons,
// and commas. The caller has already consumed the opening brace.
func (p *parser) parseObject() Value {
	obj := NewObject()
	start := p.s.save()
	closed := false
	for {
		// skip whitespace and stray separators between pairs
		for {
			ch, ok := p.s.peek(0)
			if !ok || (ch != ',' && !unicode.IsSpace(ch)) {
				break
			}
			p.s.advance()
		}
		ch, ok := p.s.peek(0)
		if !ok || ch == ']' {
			break
		}
		if ch == '}' {
			p.s.advance()
			closed = true
			break
		}

		p.ctx.push(frameObjectKey)
		rollback := p.s.save()
		key := ""
		strayColon := false
		for {
			ch, ok := p.s.peek(0)
			if !ok {
				break
			}
			rollback = p.s.save()
			if ch == '[' && key == "" {
				if p.mergeDanglingArray(obj) {
					continue
				}
				// a bracketed key: use the first element's string form
				p.s.advance()
				if bracket := p.parseArray(); len(bracket.Arr) > 0 {
					p.log("while parsing an object, found a bracketed key")
					key = stringForm(bracket.Arr[0])
				}
				break
			}
			if ch == '{' {
				p.s.advance()
				continue
			}
			preKey := p.s.save()
			key = stringForm(p.parseString())
			if key != "" {
				break
			}
			if p.s.pos == preKey {
				// the string parser refused a structural character
				if c, ok := p.s.peek(0); ok && c == ':' {
					strayColon = true
				}
				break
			}
			p.s.skipWS()
			if c, ok := p.s.peek(0); !ok || c == ':' || c == '}' || c == ']' {
				break
			}
		}

		if strayColon {
			p.log("while parsing an object, found a : before any key; discarding the pair")
			p.s.advance()
			p.ctx.pop()
			p.ctx.push(frameObjectValue)
			p.s.skipWS()
			if c, ok := p.s.peek(0); ok && c != ',' && c != '}' {
				p.parseValue()
			}
			p.ctx.pop()
			continue
		}
		if key == "" {
			if c, ok := p.s.peek(0); !ok || c != ':' {
				p.ctx.pop()
				continue
			}
		}

		if key != "" && obj.Has(key) {
			p.log("while parsing an object, found a duplicate key; closing the object here and reopening a fresh one")
			p.s.restore(rollback)
			p.s.insertRune(rollback, '{')
			p.ctx.pop()
			return ObjValue(obj)
		}

		p.s.skipWS()
		sawColon := false
		if c, ok := p.s.peek(0); ok && c == ':' {
			p.s.advance()
			sawColon = true
		} else if ok {
			p.log("while parsing an object, missed a : after a key")
		}
		p.ctx.pop()
		p.ctx.push(frameObjectValue)
		p.s.skipWS()

		value := Str("")
		hadValue := false
		if c, ok := p.s.peek(0); ok && (c == ',' || c == '}') {
			p.log("while parsing an object, found a stray " + string(c) + " where a value should be, ignoring it")
		} else if ok {
			if out := p.parseValue(); !out.stop {
				value = out.value
				hadValue = true
			}
		}

		if !sawColon {
			if !hadValue {
				if key == "true" || key == "false" || key == "null" {
					// a stray literal, not a key
					p.ctx.pop()
					break
				}
				p.log("while parsing an object, found a bare key with no value, assuming true")
				value = Bool(true)
			} else {
				p.s.skipWS()
				if c, ok := p.s.peek(0); ok && c == ':' {
					p.s.advance()
					p.log("while parsing an object, the value after a bare key was actually the next key")
					if key != "true" && key != "false" && key != "null" {
						obj.Set(key, Bool(true))
					}
					key = stringForm(value)
					value = Str("")
					p.s.skipWS()
					if c, ok := p.s.peek(0); ok && c != ',' && c != '}' {
						if out := p.parseValue(); !out.stop {
							value = out.value
						}
					}
				}
			}
		}
		p.ctx.pop()
		obj.Set(key, value)

		if c, ok := p.s.peek(0); ok && (c == ',' || c == '\'' || c == '"') {
			p.s.advance()
		}
	}

	if !closed {
		if c, ok := p.s.peek(0); ok && c == '}' {
			p.s.advance()
		}
	}

	if obj.Len() == 0 && p.s.pos-start > 2 {
		if p.ctx.empty() {
			if p.s.pos-start <= 3 {
				return ObjValue(obj)
			}
			if strings.TrimSpace(p.s.sliceString(0, start-1)) == "" {
				return ObjValue(obj)
			}
		}
		p.log("parsed object is empty, trying to parse the span as an array instead")
		p.s.restore(start)
		return p.parseArray()
	}
	if !p.ctx.empty() {
		if c, ok := p.s.peek(0); ok && c == '}' && !p.ctx.is(frameObjectKey) && !p.ctx.is(frameObjectValue) {
			p.log("found an extra closing brace, skipping it")
			p.s.advance()
		}
		return ObjValue(obj)
	}

	// at the top level, `}, "key": ...` means the brace closed too early
	p.s.skipWS()
	if c, ok := p.s.peek(0); !ok || c != ',' {
		return ObjValue(obj)
	}
	p.s.advance()
	p.s.skipWS()
	if c, ok := p.s.peek(0); !ok || !isStringDelimiter(c) {
		return ObjValue(obj)
	}
	p.log("found a comma and a string delimiter after the closing brace, merging the additional pairs")
	if more := p.parseObject(); more.Kind == KindObject {
		obj.Merge(more.Obj)
	}
	return ObjValue(obj)
}

// mergeDanglingArray absorbs a bracketed group that appears where a key was
// expected into the previous value, when that value is already an array.
// `"a": [1] [2]` becomes `"a": [1, 2]`; a group holding a single nested
// array is flattened into the target; groups following same-length rows are
// kept as rows. Reports whether a merge happened; on false the scanner has
// not moved.
func (p *parser) mergeDanglingArray(obj *Object) bool {
	prevKey, ok := obj.LastKey()
	if !ok {
		return false
	}
	prev, _ := obj.Get(prevKey)
	if prev.Kind != KindArray {
		return false
	}
	p.log("while parsing an object, found a dangling array; merging it into the previous value")
	p.s.advance()
	target := append([]Value(nil), prev.Arr...)
	group := p.parseArray().Arr

	var rowLengths []int
	for _, item := range target {
		if item.Kind == KindArray {
			rowLengths = append(rowLengths, len(item.Arr))
		}
	}
	rowLen := 0
	if len(rowLengths) > 0 {
		rowLen = rowLengths[0]
		for _, n := range rowLengths[1:] {
			if n != rowLen {
				rowLen = 0
				break
			}
		}
	}

	if rowLen > 0 {
		var tail []Value
		for len(target) > 0 && target[len(target)-1].Kind != KindArray {
			tail = append(tail, target[len(target)-1])
			target = target[:len(target)-1]
		}
		if len(tail) > 0 {
			reverseValues(tail)
			if len(tail)%rowLen == 0 {
				p.log("while parsing an object, found row values without an inner array; grouping them into rows")
				for i := 0; i < len(tail); i += rowLen {
					row := append([]Value(nil), tail[i:i+rowLen]...)
					target = append(target, Arr(row))
				}
			} else {
				target = append(target, tail...)
			}
		}
		if len(group) > 0 {
			allRows := true
			for _, item := range group {
				if item.Kind != KindArray {
					allRows = false
					break
				}
			}
			if allRows {
				target = append(target, group...)
			} else {
				target = append(target, Arr(group))
			}
		}
	} else if len(group) == 1 && group[0].Kind == KindArray {
		target = append(target, group[0].Arr...)
	} else {
		target = append(target, group...)
	}

	obj.Set(prevKey, Arr(target))
	p.s.skipWS()
	if c, ok := p.s.peek(0); ok && c == ',' {
		p.s.advance()
	}
	p.s.skipWS()
	return true
}

func reverseValues(values []Value) {
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
}
