package models

// Value is a generic type to represent any decoded JSON value.
// The possible underlying types are:
//
//	nil          JSON null
//	bool         JSON true/false
//	json.Number  JSON number, kept as its exact source text
//	string       JSON string
//	Object       JSON object
//	Array        JSON array
type Value interface{}

// Member is a single key-value pair inside an Object.
type Member struct {
	Key   string
	Value Value
}

// Object represents a JSON object as an ordered collection of members.
// A slice rather than a map so that key insertion order survives a
// decode/encode round trip.
type Object []Member

// Array represents a JSON array.
type Array []Value

// Set adds or replaces the member with the given key and returns the
// updated object. A duplicate key keeps the position of its first
// occurrence while taking the latest value.
func (o Object) Set(key string, v Value) Object {
	for i := range o {
		if o[i].Key == key {
			o[i].Value = v
			return o
		}
	}
	return append(o, Member{Key: key, Value: v})
}

// Get returns the value for key and whether the key is present.
func (o Object) Get(key string) (Value, bool) {
	for i := range o {
		if o[i].Key == key {
			return o[i].Value, true
		}
	}
	return nil, false
}

// Keys returns the object's keys in insertion order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i := range o {
		keys[i] = o[i].Key
	}
	return keys
}

// Equal reports whether two values are structurally equal. Object member
// order is significant, matching what the encoder would emit.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Object:
		bv, ok := b.(Object)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i].Key != bv[i].Key || !Equal(av[i].Value, bv[i].Value) {
				return false
			}
		}
		return true
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
