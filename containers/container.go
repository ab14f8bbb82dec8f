package containers

// Container is base interface that all data structures implement.
type Container[T any] interface {
	Empty() bool
	Size() int
	Clear()
	Values() []T
	String() string
}

// JSONSerializer provides JSON serialization
type JSONSerializer interface {
	// ToJSON outputs the JSON representation of containers's elements.
	ToJSON() ([]byte, error)
	// MarshalJSON @implements json.Marshaler
	MarshalJSON() ([]byte, error)
}

// JSONDeserializer provides JSON deserialization
type JSONDeserializer interface {
	// FromJSON populates containers's elements from the input JSON representation.
	FromJSON([]byte) error
	// UnmarshalJSON @implements json.Unmarshaler
	UnmarshalJSON([]byte) error
}

// YAMLSerializer provides YAML serialization
type YAMLSerializer interface {
	// ToYAML outputs the YAML representation of containers's elements.
	ToYAML() ([]byte, error)
}

// YAMLDeserializer provides YAML deserialization
type YAMLDeserializer interface {
	// FromYAML populates containers's elements from the input YAML representation.
	FromYAML([]byte) error
}

// EnumerableWithKey provides functions for containers whose elements are key/value pairs.
type EnumerableWithKey[K any, V any] interface {
	// Each calls the given function once for each element, passing that element's key and value.
	Each(func(key K, value V))
}
