// Package optional provides a presence-aware value for partial updates.
//
// A Value distinguishes "not sent" from "sent", including "sent as the zero
// value". JSON decoding marks a Value as set whenever its key appears in the
// document, null included; IsNull tells an explicit null apart from a value.
package optional

import "encoding/json"

// Value holds an optionally present T.
type Value[T any] struct {
	value T
	set   bool
	null  bool
}

// Of returns a present Value.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Null returns a Value supplied as an explicit null.
func Null[T any]() Value[T] {
	return Value[T]{set: true, null: true}
}

// IsSet reports whether the value was supplied.
func (v Value[T]) IsSet() bool {
	return v.set
}

// IsNull reports whether the value was supplied as JSON null.
func (v Value[T]) IsNull() bool {
	return v.set && v.null
}

// Present reports whether a non-null value was supplied.
func (v Value[T]) Present() bool {
	return v.set && !v.null
}

// Get returns the value and whether it was supplied.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.set
}

// OrElse returns the value when set, fallback otherwise.
func (v Value[T]) OrElse(fallback T) T {
	if v.set {
		return v.value
	}
	return fallback
}

func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.set = true
	v.null = string(data) == "null"
	if v.null {
		var zero T
		v.value = zero
		return nil
	}
	return json.Unmarshal(data, &v.value)
}

func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.set || v.null {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}
