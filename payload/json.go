package payload

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/francoispqt/gojay"
	"github.com/viant/personnel/visitor"
)

var nullJSON = gojay.EmbeddedJSON("null")

// List represents ordered sequence
type List []interface{}

// MarshalJSONObject implements gojay.MarshalerJSONObject, values have to be normalized
func (o *Object) MarshalJSONObject(enc *gojay.Encoder) {
	for _, key := range o.keys {
		encodeKey(enc, key, o.values[key])
	}
}

// IsNil implements gojay.MarshalerJSONObject
func (o *Object) IsNil() bool {
	return o == nil
}

// UnmarshalJSONObject implements gojay.UnmarshalerJSONObject
func (o *Object) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	value, err := decodeValue(dec)
	if err != nil {
		return fmt.Errorf("%v: %w", key, err)
	}
	o.Set(key, value)
	return nil
}

// NKeys implements gojay.UnmarshalerJSONObject, zero decodes all keys
func (o *Object) NKeys() int {
	return 0
}

// MarshalJSONArray implements gojay.MarshalerJSONArray, elements have to be normalized
func (l List) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range l {
		encodeElement(enc, item)
	}
}

// IsNil implements gojay.MarshalerJSONArray
func (l List) IsNil() bool {
	return l == nil
}

// UnmarshalJSONArray implements gojay.UnmarshalerJSONArray
func (l *List) UnmarshalJSONArray(dec *gojay.Decoder) error {
	value, err := decodeValue(dec)
	if err != nil {
		return err
	}
	*l = append(*l, value)
	return nil
}

// decodeValue decodes the next value, numbers are kept as json.Number so large identifiers do not lose precision
func decodeValue(dec *gojay.Decoder) (interface{}, error) {
	var raw gojay.EmbeddedJSON
	if err := dec.EmbeddedJSON(&raw); err != nil {
		return nil, err
	}
	return decodeRaw(raw)
}

func decodeRaw(data []byte) (interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var ret interface{}
	if err := decoder.Decode(&ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Marshal encodes payload tree as JSON, *Object keys keep insertion order, plain map keys are sorted
func Marshal(value interface{}) ([]byte, error) {
	normalized, err := normalize(value)
	if err != nil {
		return nil, err
	}
	switch actual := normalized.(type) {
	case *Object:
		return gojay.MarshalJSONObject(actual)
	case List:
		return gojay.MarshalJSONArray(actual)
	case gojay.EmbeddedJSON:
		return []byte(actual), nil
	}
	return json.Marshal(normalized)
}

// Unmarshal decodes JSON document, top level object is decoded as *Object, top level array as []interface{},
// numbers are decoded as json.Number
func Unmarshal(data []byte) (interface{}, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	switch data[0] {
	case '{':
		ret := NewObject(8)
		if err := gojay.UnmarshalJSONObject(data, ret); err != nil {
			return nil, fmt.Errorf("failed to decode object: %w", err)
		}
		return ret, nil
	case '[':
		var ret List
		if err := gojay.UnmarshalJSONArray(data, &ret); err != nil {
			return nil, fmt.Errorf("failed to decode array: %w", err)
		}
		if ret == nil {
			ret = List{}
		}
		return []interface{}(ret), nil
	}
	ret, err := decodeRaw(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode value: %w", err)
	}
	return ret, nil
}

// normalize converts a payload tree into gojay encodable nodes
func normalize(value interface{}) (interface{}, error) {
	switch actual := value.(type) {
	case nil:
		return nullJSON, nil
	case string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return actual, nil
	case float32:
		return normalizeFloat(float64(actual))
	case float64:
		return normalizeFloat(actual)
	case json.Number:
		return gojay.EmbeddedJSON(actual), nil
	case []byte:
		return base64.StdEncoding.EncodeToString(actual), nil
	case *Attachment:
		return nil, fmt.Errorf("unsupported JSON value: attachment %v", actual.Name)
	case *Object:
		if actual == nil {
			return nullJSON, nil
		}
		ret := NewObject(actual.Len())
		err := actual.Visit(func(key string, item interface{}) (bool, error) {
			normalized, err := normalize(item)
			if err != nil {
				return false, fmt.Errorf("%v: %w", key, err)
			}
			ret.Set(key, normalized)
			return true, nil
		})
		return ret, err
	case List:
		if actual == nil {
			return nullJSON, nil
		}
		return normalizeSequence(actual)
	}
	if isNilContainer(value) {
		return nullJSON, nil
	}
	if visitor.IsStringKeyMap(value) {
		visit, err := visitor.AnyMapVisitorOf(value)
		if err != nil {
			return nil, err
		}
		ret := NewObject(4)
		err = visit.Each(func(key string, item any) error {
			normalized, err := normalize(item)
			if err != nil {
				return fmt.Errorf("%v: %w", key, err)
			}
			ret.Set(key, normalized)
			return nil
		})
		return ret, err
	}
	if visitor.IsSequence(value) {
		return normalizeSequence(value)
	}
	if IsBinary(value) {
		return nil, fmt.Errorf("unsupported JSON value: %T", value)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return gojay.EmbeddedJSON(data), nil
}

// isNilContainer returns true for a typed nil map or slice
func isNilContainer(value interface{}) bool {
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Map, reflect.Slice:
		return rValue.IsNil()
	}
	return false
}

func normalizeSequence(value interface{}) (interface{}, error) {
	visit, err := visitor.AnySliceVisitorOf(value)
	if err != nil {
		return nil, err
	}
	ret := List{}
	err = visit(func(i int, item any) (bool, error) {
		normalized, err := normalize(item)
		if err != nil {
			return false, fmt.Errorf("[%v]: %w", i, err)
		}
		ret = append(ret, normalized)
		return true, nil
	})
	return ret, err
}

func normalizeFloat(value float64) (interface{}, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("unsupported JSON value: %v", value)
	}
	return value, nil
}

func encodeKey(enc *gojay.Encoder, key string, value interface{}) {
	switch actual := value.(type) {
	case string:
		enc.StringKey(key, actual)
	case bool:
		enc.BoolKey(key, actual)
	case int:
		enc.IntKey(key, actual)
	case int8:
		enc.Int64Key(key, int64(actual))
	case int16:
		enc.Int64Key(key, int64(actual))
	case int32:
		enc.Int64Key(key, int64(actual))
	case int64:
		enc.Int64Key(key, actual)
	case uint:
		enc.Uint64Key(key, uint64(actual))
	case uint8:
		enc.Uint64Key(key, uint64(actual))
	case uint16:
		enc.Uint64Key(key, uint64(actual))
	case uint32:
		enc.Uint64Key(key, uint64(actual))
	case uint64:
		enc.Uint64Key(key, actual)
	case float64:
		enc.Float64Key(key, actual)
	case *Object:
		enc.ObjectKey(key, actual)
	case List:
		enc.ArrayKey(key, actual)
	case gojay.EmbeddedJSON:
		enc.AddEmbeddedJSONKey(key, &actual)
	default:
		enc.AddEmbeddedJSONKey(key, &nullJSON)
	}
}

func encodeElement(enc *gojay.Encoder, value interface{}) {
	switch actual := value.(type) {
	case string:
		enc.String(actual)
	case bool:
		enc.Bool(actual)
	case int:
		enc.Int(actual)
	case int8:
		enc.Int64(int64(actual))
	case int16:
		enc.Int64(int64(actual))
	case int32:
		enc.Int64(int64(actual))
	case int64:
		enc.Int64(actual)
	case uint:
		enc.Uint64(uint64(actual))
	case uint8:
		enc.Uint64(uint64(actual))
	case uint16:
		enc.Uint64(uint64(actual))
	case uint32:
		enc.Uint64(uint64(actual))
	case uint64:
		enc.Uint64(actual)
	case float64:
		enc.Float64(actual)
	case *Object:
		enc.Object(actual)
	case List:
		enc.Array(actual)
	case gojay.EmbeddedJSON:
		enc.AddEmbeddedJSON(&actual)
	default:
		enc.AddEmbeddedJSON(&nullJSON)
	}
}
