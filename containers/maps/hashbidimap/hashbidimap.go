// Copyright (c) 2015, Emir Pasic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hashbidimap implements a bidirectional map backed by two hashmaps.
//
// A bidirectional map, or hash bag, is an associative data structure in which the (key,value) pairs form a one-to-one correspondence.
// Thus the binary relation is functional in each direction: value can also act as a key to key.
// A pair (a,b) thus provides a unique coupling between 'a' and 'b' so that 'b' can be found when 'a' is used as a key and 'a' can be found when 'b' is used as a key.
//
// Elements are unordered in the map.
//
// Structure is not thread safe.
//
// Reference: https://en.wikipedia.org/wiki/Bidirectional_map
package hashbidimap

import (
	"errors"
	"fmt"
	"strings"

	"mlib.com/keyval/containers/maps"
)

// Assert Map implementation
var _ maps.BidiMap[string, int] = (*Map[string, int])(nil)

// ErrInsert is returned by Insert when the key, the value, or both are
// already bound. The map is left unchanged.
var ErrInsert = errors.New("hashbidimap: key or value already present")

// entry is one bound pair. Both indexes point at the same entry.
type entry[K comparable, V comparable] struct {
	key   K
	value V
}

// Map holds the elements in two go's native maps sharing one entry per pair.
type Map[K comparable, V comparable] struct {
	forwardMap map[K]*entry[K, V]
	inverseMap map[V]*entry[K, V]
}

// New instantiates a bidirectional map.
func New[K comparable, V comparable]() *Map[K, V] {
	return &Map[K, V]{
		forwardMap: make(map[K]*entry[K, V]),
		inverseMap: make(map[V]*entry[K, V]),
	}
}

// Insert binds key to value. It fails with ErrInsert, without touching the
// map, if key is already bound or value is already bound.
func (m *Map[K, V]) Insert(key K, value V) error {
	if m.ContainsKey(key) || m.ContainsValue(value) {
		return ErrInsert
	}
	e := &entry[K, V]{key: key, value: value}
	m.forwardMap[key] = e
	m.inverseMap[value] = e
	return nil
}

// GetByKey returns the value bound to key.
// Second return parameter is true if key was found, otherwise false.
func (m *Map[K, V]) GetByKey(key K) (value V, found bool) {
	if e, ok := m.forwardMap[key]; ok {
		return e.value, true
	}
	return
}

// GetByValue returns the key bound to value.
// Second return parameter is true if value was found, otherwise false.
func (m *Map[K, V]) GetByValue(value V) (key K, found bool) {
	if e, ok := m.inverseMap[value]; ok {
		return e.key, true
	}
	return
}

// RemoveByKey unbinds key and its value, returning the value.
// Nothing happens and found is false if key is not bound.
func (m *Map[K, V]) RemoveByKey(key K) (value V, found bool) {
	e, ok := m.forwardMap[key]
	if !ok {
		return
	}
	m.remove(e)
	return e.value, true
}

// RemoveByValue unbinds value and its key, returning the key.
// Nothing happens and found is false if value is not bound.
func (m *Map[K, V]) RemoveByValue(value V) (key K, found bool) {
	e, ok := m.inverseMap[value]
	if !ok {
		return
	}
	m.remove(e)
	return e.key, true
}

func (m *Map[K, V]) remove(e *entry[K, V]) {
	delete(m.forwardMap, e.key)
	delete(m.inverseMap, e.value)
}

// ContainsKey reports whether key is bound.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.forwardMap[key]
	return ok
}

// ContainsValue reports whether value is bound.
func (m *Map[K, V]) ContainsValue(value V) bool {
	_, ok := m.inverseMap[value]
	return ok
}

// Contains reports whether key and value are both bound. It does not check
// that they are bound to each other, use IsPaired for that.
func (m *Map[K, V]) Contains(key K, value V) bool {
	return m.ContainsValue(value) && m.ContainsKey(key)
}

// IsPaired reports whether key is bound to exactly value.
func (m *Map[K, V]) IsPaired(key K, value V) bool {
	e, ok := m.forwardMap[key]
	return ok && e.value == value
}

// Empty returns true if map does not contain any elements
func (m *Map[K, V]) Empty() bool {
	return m.Size() == 0
}

// Size returns number of elements in the map.
func (m *Map[K, V]) Size() int {
	return len(m.forwardMap)
}

// Keys returns all keys (random order).
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.forwardMap))
	for k := range m.forwardMap {
		keys = append(keys, k)
	}
	return keys
}

// Values returns all values (random order).
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, len(m.inverseMap))
	for v := range m.inverseMap {
		values = append(values, v)
	}
	return values
}

// Each calls the given function once for each pair (random order).
func (m *Map[K, V]) Each(f func(key K, value V)) {
	for _, e := range m.forwardMap {
		f(e.key, e.value)
	}
}

// Clear removes all elements from the map.
func (m *Map[K, V]) Clear() {
	m.forwardMap = make(map[K]*entry[K, V])
	m.inverseMap = make(map[V]*entry[K, V])
}

// String returns a string representation of container
func (m *Map[K, V]) String() string {
	str := "HashBidiMap\n"
	items := make([]string, 0, len(m.forwardMap))
	for _, e := range m.forwardMap {
		items = append(items, fmt.Sprintf("%v:%v", e.key, e.value))
	}
	str += strings.Join(items, ", ")
	return str
}
