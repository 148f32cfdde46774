// Copyright (C) 2024 M. Felian. All Rights Reserved.

package jval

import "fmt"

// A Value is an arbitrary JSON value. The set of types implementing Value
// is closed: Object, Array, String, Number, Bool, and Null.
type Value interface{ jsonValue() }

// An Object is a collection of key-value members. Keys are unique and
// unordered; parsing an object with a repeated key keeps the value of the
// last occurrence.
type Object map[string]Value

// An Array is an ordered sequence of values.
type Array []Value

// A String is a string value. Its content is the decoded text of the
// source literal, with all escape sequences undone.
type String string

// A Number is a numeric value, stored in double precision. Integers beyond
// 2^53 and exact decimal fractions lose precision.
type Number float64

// A Bool is a Boolean constant, true or false.
type Bool bool

// The two Bool values.
const (
	True  Bool = true
	False Bool = false
)

// Null represents the JSON null constant.
type Null struct{}

func (Object) jsonValue() {}
func (Array) jsonValue()  {}
func (String) jsonValue() {}
func (Number) jsonValue() {}
func (Bool) jsonValue()   {}
func (Null) jsonValue()   {}

// A TypeError reports a failed narrowing conversion from a generic Value
// to a concrete type.
type TypeError struct {
	Value  Value  // the value that was narrowed
	Target string // the name of the requested type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("cannot convert %T to %s", e.Value, e.Target)
}

// As narrows v to concrete type T. If v is not a T, it returns the zero
// value of T and a *TypeError.
func As[T Value](v Value) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var zero T
	return zero, &TypeError{Value: v, Target: fmt.Sprintf("%T", zero)}
}

// Must narrows v to concrete type T or panics.
//
// Must is a convenience for tests and for call sites that have already
// established the shape of v. It must not be used on untrusted input;
// narrow with As instead.
func Must[T Value](v Value) T {
	t, err := As[T](v)
	if err != nil {
		panic(err)
	}
	return t
}

// ToValue converts v into a Value. It accepts any Value (returned
// unmodified), nil, bool, string, any built-in integer or floating type,
// []any, and map[string]any. ToValue panics if v is any other type.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case nil:
		return Null{}
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case float64:
		return Number(t)
	case float32:
		return Number(t)
	case int:
		return Number(t)
	case int8:
		return Number(t)
	case int16:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case uint:
		return Number(t)
	case uint8:
		return Number(t)
	case uint16:
		return Number(t)
	case uint32:
		return Number(t)
	case uint64:
		return Number(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case map[string]any:
		out := make(Object, len(t))
		for key, elt := range t {
			out[key] = ToValue(elt)
		}
		return out
	default:
		panic(fmt.Sprintf("cannot convert %T to a JSON value", v))
	}
}
