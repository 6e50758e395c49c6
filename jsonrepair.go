package jsonrepair

import "strings"

// Option configures the repairer.
type Option func(*options)

type options struct {
	ensureASCII *bool
}

// WithEnsureASCII sets whether Repair escapes non-ASCII characters in its
// output. The default is true.
func WithEnsureASCII(value bool) Option {
	return func(o *options) {
		v := value
		o.ensureASCII = &v
	}
}

func applyOptions(opts []Option) options {
	var cfg options
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (o options) ensureASCIIValue() bool {
	if o.ensureASCII == nil {
		return true
	}
	return *o.ensureASCII
}

// Repair takes potentially malformed JSON-like text, typically produced by
// a large language model, and returns well-formed JSON text. It never
// fails; when no value can be recovered at all it returns the empty
// string.
func Repair(input string, opts ...Option) string {
	cfg := applyOptions(opts)
	p := newParser(input, false)
	value := p.parse()
	if value.IsNothing() {
		return ""
	}
	return serialize(value, cfg.ensureASCIIValue())
}

// Parse repairs input and returns the value tree instead of serialized
// text. The result is Nothing when no value could be recovered.
func Parse(input string) Value {
	p := newParser(input, false)
	return p.parse()
}

// ParseWithLog is Parse with a trail of the repair decisions that fired,
// each paired with a window of the surrounding input.
func ParseWithLog(input string) (Value, []LogEntry) {
	p := newParser(input, true)
	value := p.parse()
	logs := p.logs
	if logs == nil {
		logs = []LogEntry{}
	}
	return value, logs
}

// parse drives the dispatcher over the whole input, producing one value or
// a concatenation of values. Consecutive top-level values of the same
// composite shape collapse to the later one, so a model that restates a
// corrected object replaces its earlier attempt.
func (p *parser) parse() Value {
	out := p.parseValue()
	if out.stop {
		return Nothing
	}
	value := out.value
	for value.Kind == KindString && value.Str == "" && !p.s.eos() {
		// an empty leading string is usually prose the string parser gave
		// up on; keep it only when nothing else follows
		mark := p.s.save()
		p.s.advance()
		next := p.parseValue()
		if next.stop {
			p.s.restore(mark)
			break
		}
		value = next.value
	}
	if p.s.eos() {
		return value
	}

	p.log("the parser returned early, checking for more json elements")
	values := []Value{value}
	for !p.s.eos() {
		p.ctx.clear()
		out := p.parseValue()
		if out.stop {
			break
		}
		v := out.value
		if v.Kind == KindString {
			if v.Str == "" {
				p.s.advance()
				continue
			}
			if trimmed := strings.TrimSpace(v.Str); trimmed != "" && strings.Trim(trimmed, "]}") == "" {
				p.log("found a string of closing brackets between elements, ignoring it")
				continue
			}
		}
		if sameShape(values[len(values)-1], v) {
			values = values[:len(values)-1]
		}
		values = append(values, v)
	}
	if len(values) == 1 {
		p.log("there were no more elements, returning the element itself")
		return values[0]
	}
	return Arr(values)
}
