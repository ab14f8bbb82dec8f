// Copyright (c) 2015, Emir Pasic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package maps provides abstract map interfaces.
//
// A bidirectional map is an associative container holding a one-to-one
// correspondence between a set of keys and a set of values: every key is
// bound to exactly one value and every value to exactly one key, so either
// side can be used to look up or remove the pair.
//
// Reference: https://en.wikipedia.org/wiki/Bidirectional_map
package maps

import "mlib.com/keyval/containers"

// BidiMap interface that all bidirectional maps implement.
//
// Insert never overwrites: binding a key or value that is already present
// fails and leaves the map unchanged.
type BidiMap[K comparable, V comparable] interface {
	Insert(key K, value V) error
	GetByKey(key K) (value V, found bool)
	GetByValue(value V) (key K, found bool)
	RemoveByKey(key K) (value V, found bool)
	RemoveByValue(value V) (key K, found bool)
	Keys() []K

	ContainsKey(key K) bool
	ContainsValue(value V) bool
	// Contains reports whether key and value are both present, each on its
	// own side. They need not be bound to each other; see IsPaired.
	Contains(key K, value V) bool
	IsPaired(key K, value V) bool

	containers.Container[V]
	containers.EnumerableWithKey[K, V]
	// Empty() bool
	// Size() int
	// Clear()
	// Values() []V
	// String() string
}
