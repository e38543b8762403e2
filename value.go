package prettytable

import (
	"fmt"
	"regexp"
	"strconv"
)

// Kind identifies the variant held by a [Value].
type Kind int

const (
	KindEmpty Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
)

// Value is a single cell. It holds exactly one of an empty marker, a
// string, an integer, a float, or a bool.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
}

// Empty returns the empty value. It renders as "".
func Empty() Value { return Value{} }

// Str returns a string value.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// ValueOf converts a Go value into a cell value without reflection.
// Unsupported types yield [ErrUnsupportedValueType].
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Empty(), nil
	case Value:
		return x, nil
	case string:
		return Str(x), nil
	case []byte:
		return Str(string(x)), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return uintValue(uint64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return uintValue(x), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case bool:
		return Bool(x), nil
	case fmt.Stringer:
		return Str(x.String()), nil
	case error:
		return Str(x.Error()), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValueType, v)
	}
}

// Values larger than MaxInt64 keep their digits as text.
func uintValue(u uint64) Value {
	if u > 1<<63-1 {
		return Str(strconv.FormatUint(u, 10))
	}
	return Int(int64(u))
}

// Kind returns the kind of value held.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether v is the empty value.
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// IsNumber reports whether v holds an integer or a float.
func (v Value) IsNumber() bool { return v.kind == KindInt || v.kind == KindFloat }

// Any returns the underlying Go value: nil, string, int64, float64 or bool.
func (v Value) Any() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// String returns the canonical display form.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// Format renders the value using printf fragments for numbers. Empty
// fragments fall back to [Value.String].
func (v Value) Format(intFormat, floatFormat string) string {
	switch {
	case v.kind == KindInt && intFormat != "":
		return fmt.Sprintf("%"+intFormat+"d", v.i)
	case v.kind == KindFloat && floatFormat != "":
		return fmt.Sprintf("%"+floatFormat+"f", v.f)
	default:
		return v.String()
	}
}

func (v Value) float() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

var (
	intFormatRe   = regexp.MustCompile(`^[+-]? ?0?[0-9]*$`)
	floatFormatRe = regexp.MustCompile(`^[+-]? ?0?[0-9]*(\.[0-9]*)?$`)
)

func validIntFormat(s string) bool   { return s == "" || intFormatRe.MatchString(s) }
func validFloatFormat(s string) bool { return s == "" || floatFormatRe.MatchString(s) }
