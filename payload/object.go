package payload

// Object represents an insertion ordered keyed mapping
type Object struct {
	keys   []string
	values map[string]interface{}
}

// NewObject creates an object
func NewObject(capacity int) *Object {
	return &Object{keys: make([]string, 0, capacity), values: make(map[string]interface{}, capacity)}
}

// ObjectOf creates an object with supplied key value pairs, pairs has to be even
func ObjectOf(pairs ...interface{}) *Object {
	ret := NewObject(len(pairs) / 2)
	for i := 0; i+1 < len(pairs); i += 2 {
		key, _ := pairs[i].(string)
		ret.Set(key, pairs[i+1])
	}
	return ret
}

// Set sets value, an existing key keeps its position
func (o *Object) Set(key string, value interface{}) {
	if o.values == nil {
		o.values = make(map[string]interface{})
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns value for the key
func (o *Object) Get(key string) (interface{}, bool) {
	if o == nil {
		return nil, false
	}
	value, ok := o.values[key]
	return value, ok
}

// Delete removes key
func (o *Object) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, candidate := range o.keys {
		if candidate == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns keys in insertion order
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string{}, o.keys...)
}

// Len returns number of keys
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Visit iterates over key value pairs in insertion order
func (o *Object) Visit(f func(key string, value interface{}) (bool, error)) error {
	if o == nil {
		return nil
	}
	for _, key := range o.keys {
		continueVisit, err := f(key, o.values[key])
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// Map returns shallow map representation
func (o *Object) Map() map[string]interface{} {
	if o == nil {
		return nil
	}
	ret := make(map[string]interface{}, len(o.keys))
	for _, key := range o.keys {
		ret[key] = o.values[key]
	}
	return ret
}
