// Package jsonrepair repairs malformed JSON-like text into a well-formed
// value tree. It tolerates the common ways large language models and
// hand-edited text violate the JSON grammar: missing quotes, stray commas
// and colons, unescaped control characters, mixed quotation marks,
// comments, truncated structures, and concatenated documents. The parser
// never fails; worst case it returns a best-effort guess.
package jsonrepair

import "math/big"

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindNothing marks the absence of a parsed value. It is only ever
	// returned at the top level (see Parse) and is never nested inside an
	// Arr or Obj.
	KindNothing Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

// Value is a tagged union over the repaired JSON value space: null, bool,
// arbitrary-precision int, float64, string, ordered array, and ordered
// object. Only the field matching Kind is meaningful.
type Value struct {
	Kind  Kind
	Bool  bool
	Int   *big.Int
	Float float64
	Str   string
	Arr   []Value
	Obj   *Object
}

// Nothing is the "no value parsed" marker, distinct from Null.
var Nothing = Value{Kind: KindNothing}

// Null is the JSON null value.
var Null = Value{Kind: KindNull}

// Bool wraps a boolean as a Value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Int wraps an arbitrary-precision integer as a Value.
func Int(i *big.Int) Value { return Value{Kind: KindInt, Int: i} }

// IntFromInt64 wraps a machine int as an arbitrary-precision Value.
func IntFromInt64(i int64) Value { return Value{Kind: KindInt, Int: big.NewInt(i)} }

// Float wraps an IEEE-754 double as a Value.
func Float(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// Str wraps a string as a Value.
func Str(s string) Value { return Value{Kind: KindString, Str: s} }

// Arr wraps an ordered sequence of values as a Value.
func Arr(items []Value) Value { return Value{Kind: KindArray, Arr: items} }

// ObjValue wraps an Object as a Value.
func ObjValue(o *Object) Value { return Value{Kind: KindObject, Obj: o} }

// IsNothing reports whether v is the top-level "no value" marker.
func (v Value) IsNothing() bool { return v.Kind == KindNothing }

// Object is an ordered mapping from string keys to Values. Insertion order
// is preserved; setting an existing key updates it in place rather than
// moving it to the end.
type Object struct {
	keys  []string
	index map[string]int
	vals  []Value
}

// NewObject returns an empty, ready-to-use Object.
func NewObject() *Object {
	return &Object{index: map[string]int{}}
}

// Set assigns key to value, preserving the key's original position if it
// already exists (last write wins, in place).
func (o *Object) Set(key string, value Value) {
	if idx, ok := o.index[key]; ok {
		o.vals[idx] = value
		return
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, value)
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	idx, ok := o.index[key]
	if !ok {
		return Value{}, false
	}
	return o.vals[idx], true
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.index[key]
	return ok
}

// Len returns the number of entries.
func (o *Object) Len() int { return len(o.keys) }

// LastKey returns the most recently inserted key, in insertion order.
func (o *Object) LastKey() (string, bool) {
	if len(o.keys) == 0 {
		return "", false
	}
	return o.keys[len(o.keys)-1], true
}

// Keys returns the keys in insertion order. The caller must not mutate it.
func (o *Object) Keys() []string { return o.keys }

// Each calls fn for every entry in insertion order.
func (o *Object) Each(fn func(key string, value Value)) {
	for i, k := range o.keys {
		fn(k, o.vals[i])
	}
}

// Merge copies other's entries into o, in other's order, with other's
// values winning on key collision.
func (o *Object) Merge(other *Object) {
	other.Each(func(key string, value Value) {
		o.Set(key, value)
	})
}

// isStrictlyEmpty reports whether v is an empty string, array, or object.
// The array parser uses it to decide whether a just-parsed value is garbage
// worth skipping rather than appending.
func isStrictlyEmpty(v Value) bool {
	switch v.Kind {
	case KindString:
		return v.Str == ""
	case KindArray:
		return len(v.Arr) == 0
	case KindObject:
		return v.Obj == nil || v.Obj.Len() == 0
	default:
		return false
	}
}

// sameShape reports whether a and b are both arrays or both objects, the
// condition for the top-level driver's same-type collapse.
func sameShape(a, b Value) bool {
	if a.Kind == KindArray && b.Kind == KindArray {
		return true
	}
	if a.Kind == KindObject && b.Kind == KindObject {
		return true
	}
	return false
}

// stringForm renders a value the way it would appear as an object key.
func stringForm(v Value) string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		return v.Int.String()
	case KindFloat:
		return formatFloat(v.Float)
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNull:
		return "null"
	default:
		return ""
	}
}
