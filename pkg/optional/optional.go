// Package optional provides a generic presence-tracking container. It lets a
// builder distinguish a field that was never set from a field explicitly set
// to its type's zero value, without resorting to sentinel values.
package optional

// Value holds a value of type T together with a flag recording whether the
// value was ever set. The zero Value is unset.
type Value[T any] struct {
	value T
	set   bool
}

// Of returns a Value already holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

// Set stores v and marks the Value as set. Setting twice overwrites the
// previous value.
func (v *Value[T]) Set(value T) {
	v.value = value
	v.set = true
}

// Get returns the stored value and whether it was ever set.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.set
}

// IsSet reports whether the Value was ever set.
func (v Value[T]) IsSet() bool {
	return v.set
}

// Or returns the stored value when set, otherwise def.
func (v Value[T]) Or(def T) T {
	if v.set {
		return v.value
	}
	return def
}
