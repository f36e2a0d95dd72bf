package tart

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValueKind tags the runtime value universe: string, vector, lambda and
// builtin.
type ValueKind int

const (
	ValueString ValueKind = iota
	ValueVector
	ValueLambda
	ValueBuiltin
)

func (k ValueKind) String() string {
	switch k {
	case ValueString:
		return "string"
	case ValueVector:
		return "vector"
	case ValueLambda:
		return "lambda"
	case ValueBuiltin:
		return "builtin"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the four runtime value kinds. A Value is
// immutable after creation; in particular a vector is produced whole and
// never edited in place.
type Value struct {
	kind    ValueKind
	str     string
	vec     []*Value
	lambda  *Lambda
	builtin *Builtin
}

// AsValue wraps a native representation into a *Value. Supported types are
// string, []*Value, *Lambda and *Builtin; anything else panics, because it
// would mean a bug inside the runtime rather than a document error.
func AsValue(i any) *Value {
	switch v := i.(type) {
	case string:
		return &Value{kind: ValueString, str: v}
	case []*Value:
		return &Value{kind: ValueVector, vec: v}
	case *Lambda:
		return &Value{kind: ValueLambda, lambda: v}
	case *Builtin:
		return &Value{kind: ValueBuiltin, builtin: v}
	default:
		panic(fmt.Sprintf("unsupported value type %T", i))
	}
}

func emptyStringValue() *Value {
	return &Value{kind: ValueString}
}

func (v *Value) Kind() ValueKind {
	return v.kind
}

func (v *Value) IsString() bool {
	return v.kind == ValueString
}

func (v *Value) IsVector() bool {
	return v.kind == ValueVector
}

func (v *Value) IsLambda() bool {
	return v.kind == ValueLambda
}

func (v *Value) IsBuiltin() bool {
	return v.kind == ValueBuiltin
}

// Str returns the underlying string of a string value ("" for any other
// kind).
func (v *Value) Str() string {
	return v.str
}

// Vector returns the underlying elements of a vector value (nil for any
// other kind).
func (v *Value) Vector() []*Value {
	return v.vec
}

// Lambda returns the underlying lambda of a lambda value (nil for any other
// kind).
func (v *Value) Lambda() *Lambda {
	return v.lambda
}

// Builtin returns the underlying builtin of a builtin value (nil for any
// other kind).
func (v *Value) Builtin() *Builtin {
	return v.builtin
}

// Stringify renders the value for document output. Strings render as
// themselves; vectors stringify their elements, drop the empty ones and
// join the rest with a single space; lambdas render a diagnostic form.
// Builtins cannot be stringified.
func (v *Value) Stringify() (string, error) {
	switch v.kind {
	case ValueString:
		return v.str, nil
	case ValueVector:
		parts := make([]string, 0, len(v.vec))
		for _, elem := range v.vec {
			s, err := elem.Stringify()
			if err != nil {
				return "", err
			}
			if s == "" {
				continue
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, " "), nil
	case ValueLambda:
		return v.lambda.String(), nil
	case ValueBuiltin:
		return "", errors.New("attempted to stringify builtin")
	default:
		panic(fmt.Sprintf("unknown value kind %d", v.kind))
	}
}

// String implements fmt.Stringer for debugging output only. Unlike
// Stringify it never fails; builtins render a placeholder form.
func (v *Value) String() string {
	if v.kind == ValueBuiltin {
		return fmt.Sprintf("[builtin %s]", v.builtin.name)
	}
	s, _ := v.Stringify()
	return s
}

// joinWhitespaceAware combines already-stringified parts into a single
// string. Empty parts are dropped; between two adjacent parts a single
// ASCII space is inserted unless the boundary already has whitespace on
// either side. This lets authors interleave text and bracketed calls with
// natural spacing while explicit "\n" or "\t" strings control layout
// without double-spacing.
func joinWhitespaceAware(parts []string) string {
	var sb strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		if sb.Len() > 0 && !endsWithSpace(sb.String()) && !startsWithSpace(part) {
			sb.WriteByte(' ')
		}
		sb.WriteString(part)
	}
	return sb.String()
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}

func endsWithSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(r)
}
