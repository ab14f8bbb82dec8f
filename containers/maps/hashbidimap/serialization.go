// Copyright (c) 2015, Emir Pasic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashbidimap

import (
	"encoding/json"
	"fmt"

	"sigs.k8s.io/yaml"

	"mlib.com/keyval/containers"
)

// Assert Serialization implementation
var _ containers.JSONSerializer = (*Map[string, int])(nil)
var _ containers.JSONDeserializer = (*Map[string, int])(nil)
var _ containers.YAMLSerializer = (*Map[string, int])(nil)
var _ containers.YAMLDeserializer = (*Map[string, int])(nil)

// ToJSON outputs the JSON representation of the map as an object of key to value.
func (m *Map[K, V]) ToJSON() ([]byte, error) {
	elements := make(map[K]V, len(m.forwardMap))
	for k, e := range m.forwardMap {
		elements[k] = e.value
	}
	return json.Marshal(&elements)
}

// FromJSON replaces the map content with the input JSON representation.
// The receiver is left untouched if the input is malformed or binds one value to several keys.
func (m *Map[K, V]) FromJSON(data []byte) error {
	elements := make(map[K]V)
	if err := json.Unmarshal(data, &elements); err != nil {
		return fmt.Errorf("hashbidimap: decode: %w", err)
	}
	return m.load(elements)
}

// UnmarshalJSON @implements json.Unmarshaler
func (m *Map[K, V]) UnmarshalJSON(bytes []byte) error {
	return m.FromJSON(bytes)
}

// MarshalJSON @implements json.Marshaler
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	return m.ToJSON()
}

// ToYAML outputs the YAML representation of the map as a mapping of key to value.
func (m *Map[K, V]) ToYAML() ([]byte, error) {
	return yaml.Marshal(m)
}

// FromYAML replaces the map content with the input YAML representation,
// with the same guarantees as FromJSON.
func (m *Map[K, V]) FromYAML(data []byte) error {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("hashbidimap: decode: %w", err)
	}
	return m.FromJSON(jsonData)
}

// load builds the indexes aside and swaps them in only once every pair was accepted.
func (m *Map[K, V]) load(elements map[K]V) error {
	fresh := New[K, V]()
	for k, v := range elements {
		if err := fresh.Insert(k, v); err != nil {
			return fmt.Errorf("hashbidimap: value %v bound to more than one key: %w", v, err)
		}
	}
	m.forwardMap = fresh.forwardMap
	m.inverseMap = fresh.inverseMap
	return nil
}
