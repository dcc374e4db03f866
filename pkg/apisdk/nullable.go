package apisdk

import (
	"bytes"
	"encoding/json"
)

// Nullable tells an absent field apart from an explicit null. Use it with
// the omitzero tag option so an unset value is left out of the body.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// Null returns a Nullable that encodes as an explicit null.
func Null[T any]() Nullable[T] { return Nullable[T]{Set: true} }

// Some returns a Nullable holding v.
func Some[T any](v T) Nullable[T] { return Nullable[T]{Set: true, Value: &v} }

// IsNull reports whether the field was sent as null.
func (n Nullable[T]) IsNull() bool { return n.Set && n.Value == nil }

func (n Nullable[T]) IsZero() bool { return !n.Set }

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}
