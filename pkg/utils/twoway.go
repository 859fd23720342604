package utils

import (
	"errors"
	"fmt"
)

// ErrAmbiguousMapping is returned when a key or value is inserted with a
// mapping that conflicts with an existing entry.
var ErrAmbiguousMapping = errors.New("ambiguous mapping")

// TwoWayMap is a bidirectional map: every key maps to exactly one value
// and every value back to exactly one key.
type TwoWayMap[K comparable, V comparable] struct {
	forward map[K]V
	reverse map[V]K
}

// NewTwoWayMap returns an empty bidirectional map.
func NewTwoWayMap[K comparable, V comparable]() *TwoWayMap[K, V] {
	return &TwoWayMap[K, V]{
		forward: make(map[K]V),
		reverse: make(map[V]K),
	}
}

// Set inserts a key/value pair. Reinserting an identical pair is a no-op;
// inserting a key or value that already maps elsewhere fails.
func (m *TwoWayMap[K, V]) Set(key K, value V) error {
	if v, ok := m.forward[key]; ok {
		if v == value {
			return nil
		}
		return fmt.Errorf("%w: key %v already maps to %v", ErrAmbiguousMapping, key, v)
	}
	if k, ok := m.reverse[value]; ok {
		return fmt.Errorf("%w: value %v already maps to %v", ErrAmbiguousMapping, value, k)
	}
	m.forward[key] = value
	m.reverse[value] = key
	return nil
}

// Get looks up the value for a key.
func (m *TwoWayMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.forward[key]
	return v, ok
}

// GetKey looks up the key for a value.
func (m *TwoWayMap[K, V]) GetKey(value V) (K, bool) {
	k, ok := m.reverse[value]
	return k, ok
}

// Delete removes a key and its value.
func (m *TwoWayMap[K, V]) Delete(key K) {
	if v, ok := m.forward[key]; ok {
		delete(m.forward, key)
		delete(m.reverse, v)
	}
}

// Len reports the number of pairs.
func (m *TwoWayMap[K, V]) Len() int {
	return len(m.forward)
}
