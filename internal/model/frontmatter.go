package model

import (
	"slices"
	"strings"
)

// Recognized front-matter keys. Keys outside this set are carried through
// opaquely and never interpreted.
const (
	KeyName         = "name"
	KeyDescription  = "description"
	KeyTools        = "tools"
	KeyAllowedTools = "allowed-tools"
	KeyModel        = "model"
	KeyArgumentHint = "argument-hint"
)

// ListKeys returns the recognized keys whose values are comma-separated
// lists. All other values stay scalar strings.
func ListKeys() []string {
	return []string{KeyTools, KeyAllowedTools}
}

// IsListKey returns true if values under key are split into lists.
func IsListKey(key string) bool {
	return slices.Contains(ListKeys(), key)
}

// ValueKind discriminates the two front-matter value representations.
type ValueKind int

const (
	// KindString is a scalar string value.
	KindString ValueKind = iota
	// KindList is an ordered list of strings.
	KindList
)

// Value is a single front-matter value: either a scalar string or an
// ordered list of strings. The zero Value is an empty scalar.
type Value struct {
	kind ValueKind
	str  string
	list []string
}

// StringValue creates a scalar value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// ListValue creates an ordered list value.
func ListValue(items ...string) Value {
	return Value{kind: KindList, list: slices.Clone(items)}
}

// Kind returns the value's representation.
func (v Value) Kind() ValueKind {
	return v.kind
}

// String returns the scalar form. List values render as a comma-joined
// string, which is also their serialized form.
func (v Value) String() string {
	if v.kind == KindList {
		return strings.Join(v.list, ", ")
	}
	return v.str
}

// List returns the list form. Scalar values become a single-element list;
// an empty scalar becomes an empty list.
func (v Value) List() []string {
	if v.kind == KindList {
		return slices.Clone(v.list)
	}
	if v.str == "" {
		return nil
	}
	return []string{v.str}
}

// Equal reports whether two values have the same kind and contents.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind == KindList {
		return slices.Equal(v.list, other.list)
	}
	return v.str == other.str
}

// FrontMatter is the parsed metadata header of a document. It preserves
// key insertion order for serialization while providing constant-time
// lookup. Nil methods are safe: a nil FrontMatter behaves as empty.
type FrontMatter struct {
	keys   []string
	values map[string]Value
}

// NewFrontMatter creates an empty front-matter mapping.
func NewFrontMatter() *FrontMatter {
	return &FrontMatter{values: make(map[string]Value)}
}

// Set stores a value under key. The first insertion fixes the key's
// position; later sets replace the value in place.
func (fm *FrontMatter) Set(key string, v Value) {
	if fm.values == nil {
		fm.values = make(map[string]Value)
	}
	if _, ok := fm.values[key]; !ok {
		fm.keys = append(fm.keys, key)
	}
	fm.values[key] = v
}

// Get returns the value stored under key.
func (fm *FrontMatter) Get(key string) (Value, bool) {
	if fm == nil {
		return Value{}, false
	}
	v, ok := fm.values[key]
	return v, ok
}

// GetString returns the scalar form of the value under key, or "" when
// the key is absent.
func (fm *FrontMatter) GetString(key string) string {
	v, ok := fm.Get(key)
	if !ok {
		return ""
	}
	return v.String()
}

// GetList returns the list form of the value under key, or nil when the
// key is absent.
func (fm *FrontMatter) GetList(key string) []string {
	v, ok := fm.Get(key)
	if !ok {
		return nil
	}
	return v.List()
}

// Has returns true if key is present.
func (fm *FrontMatter) Has(key string) bool {
	_, ok := fm.Get(key)
	return ok
}

// Keys returns the keys in insertion order.
func (fm *FrontMatter) Keys() []string {
	if fm == nil {
		return nil
	}
	return slices.Clone(fm.keys)
}

// Len returns the number of keys.
func (fm *FrontMatter) Len() int {
	if fm == nil {
		return 0
	}
	return len(fm.keys)
}

// Equal reports whether two mappings hold the same keys and values.
// Key order is irrelevant for equality.
func (fm *FrontMatter) Equal(other *FrontMatter) bool {
	if fm.Len() != other.Len() {
		return false
	}
	for _, k := range fm.Keys() {
		a, _ := fm.Get(k)
		b, ok := other.Get(k)
		if !ok || !a.Equal(b) {
			return false
		}
	}
	return true
}
