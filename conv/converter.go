package conv

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/viant/personnel/format/text"
	"github.com/viant/personnel/payload"
	"github.com/viant/personnel/visitor"
	"github.com/viant/tagly/format"
)

// DefaultDateLayout is the default layout used for time parsing when no layout is specified
const DefaultDateLayout = time.RFC3339

var timeType = reflect.TypeOf(time.Time{})

// Options contains configuration for the converter
type Options struct {
	// DateLayout specifies the layout for time parsing
	DateLayout string
	// TagName is the struct tag name to look for mapping information
	TagName string
	// ErrorOnUnmapped reports keys without corresponding struct field
	ErrorOnUnmapped bool
}

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{
		DateLayout: DefaultDateLayout,
		TagName:    "json",
	}
}

// Converter provides payload to model conversion
type Converter struct {
	options     Options
	structCache *visitor.SyncMap[reflect.Type, *structInfo]
}

// NewConverter creates a new converter with the provided options
func NewConverter(options Options) *Converter {
	if options.TagName == "" {
		options.TagName = "json"
	}
	return &Converter{options: options, structCache: visitor.NewSyncMap[reflect.Type, *structInfo]()}
}

// Convert converts the source payload into the destination pointer
func (c *Converter) Convert(src interface{}, dest interface{}) error {
	if dest == nil {
		return errors.New("destination cannot be nil")
	}
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr {
		return errors.New("destination must be a pointer")
	}
	if destValue.IsNil() {
		return errors.New("destination pointer cannot be nil")
	}
	if src == nil {
		return nil
	}
	return c.convert(destValue.Elem(), src, "")
}

func (c *Converter) convert(dest reflect.Value, src interface{}, layout string) error {
	if src == nil {
		dest.Set(reflect.Zero(dest.Type()))
		return nil
	}
	destType := dest.Type()
	srcValue := reflect.ValueOf(src)
	if destType.Kind() == reflect.Interface {
		if srcValue.Type().AssignableTo(destType) {
			dest.Set(srcValue)
			return nil
		}
		return fmt.Errorf("cannot assign %T to %v", src, destType)
	}
	if destType.Kind() == reflect.Ptr {
		elem := reflect.New(destType.Elem())
		if err := c.convert(elem.Elem(), src, layout); err != nil {
			return err
		}
		dest.Set(elem)
		return nil
	}
	if destType == timeType {
		return c.convertToTime(dest, src, layout)
	}
	if srcValue.Type().AssignableTo(destType) && destType.Kind() != reflect.Struct {
		dest.Set(srcValue)
		return nil
	}
	srcValue = indirect(srcValue)
	if !srcValue.IsValid() {
		return nil
	}
	switch destType.Kind() {
	case reflect.String:
		return c.convertToString(dest, srcValue)
	case reflect.Bool:
		return c.convertToBool(dest, srcValue)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return c.convertToInt(dest, srcValue)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return c.convertToUint(dest, srcValue)
	case reflect.Float32, reflect.Float64:
		return c.convertToFloat(dest, srcValue)
	case reflect.Slice:
		return c.convertToSlice(dest, src)
	case reflect.Map:
		return c.convertToMap(dest, src)
	case reflect.Struct:
		return c.convertToStruct(dest, src)
	}
	return fmt.Errorf("unsupported conversion: %T to %v", src, destType)
}

func (c *Converter) convertToString(dest, srcValue reflect.Value) error {
	var result string

	switch srcValue.Kind() {
	case reflect.String:
		result = srcValue.String()
	case reflect.Bool:
		result = strconv.FormatBool(srcValue.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = strconv.FormatInt(srcValue.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = strconv.FormatUint(srcValue.Uint(), 10)
	case reflect.Float32:
		result = strconv.FormatFloat(srcValue.Float(), 'f', -1, 32)
	case reflect.Float64:
		result = strconv.FormatFloat(srcValue.Float(), 'f', -1, 64)
	default:
		return fmt.Errorf("cannot convert %v to string", srcValue.Type())
	}

	dest.SetString(result)
	return nil
}

func (c *Converter) convertToBool(dest, srcValue reflect.Value) error {
	var result bool

	switch srcValue.Kind() {
	case reflect.Bool:
		result = srcValue.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = srcValue.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = srcValue.Uint() != 0
	case reflect.Float32, reflect.Float64:
		result = srcValue.Float() != 0
	case reflect.String:
		var err error
		if result, err = strconv.ParseBool(srcValue.String()); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot convert %v to bool", srcValue.Type())
	}

	dest.SetBool(result)
	return nil
}

func (c *Converter) convertToInt(dest, srcValue reflect.Value) error {
	var result int64

	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = srcValue.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = int64(srcValue.Uint())
	case reflect.Float32, reflect.Float64:
		f := srcValue.Float()
		if f != float64(int64(f)) {
			return fmt.Errorf("cannot convert fractional value %v to int", f)
		}
		result = int64(f)
	case reflect.String:
		var err error
		if result, err = strconv.ParseInt(strings.TrimSpace(srcValue.String()), 10, 64); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot convert %v to int", srcValue.Type())
	}
	if dest.OverflowInt(result) {
		return fmt.Errorf("value %v overflows %v", result, dest.Type())
	}
	dest.SetInt(result)
	return nil
}

func (c *Converter) convertToUint(dest, srcValue reflect.Value) error {
	var result uint64

	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := srcValue.Int()
		if v < 0 {
			return fmt.Errorf("cannot convert negative value %d to unsigned int", v)
		}
		result = uint64(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = srcValue.Uint()
	case reflect.Float32, reflect.Float64:
		v := srcValue.Float()
		if v < 0 || v != float64(uint64(v)) {
			return fmt.Errorf("cannot convert value %v to unsigned int", v)
		}
		result = uint64(v)
	case reflect.String:
		var err error
		if result, err = strconv.ParseUint(strings.TrimSpace(srcValue.String()), 10, 64); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot convert %v to uint", srcValue.Type())
	}
	if dest.OverflowUint(result) {
		return fmt.Errorf("value %v overflows %v", result, dest.Type())
	}
	dest.SetUint(result)
	return nil
}

func (c *Converter) convertToFloat(dest, srcValue reflect.Value) error {
	var result float64

	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = float64(srcValue.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = float64(srcValue.Uint())
	case reflect.Float32, reflect.Float64:
		result = srcValue.Float()
	case reflect.String:
		var err error
		if result, err = strconv.ParseFloat(strings.TrimSpace(srcValue.String()), 64); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot convert %v to float", srcValue.Type())
	}

	dest.SetFloat(result)
	return nil
}

func (c *Converter) convertToTime(dest reflect.Value, src interface{}, layout string) error {
	switch actual := src.(type) {
	case time.Time:
		dest.Set(reflect.ValueOf(actual))
		return nil
	case string:
		if actual == "" {
			dest.Set(reflect.ValueOf(time.Time{}))
			return nil
		}
		layouts := []string{layout, c.options.DateLayout, time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}
		var err error
		for _, candidate := range layouts {
			if candidate == "" {
				continue
			}
			var ts time.Time
			if ts, err = time.Parse(candidate, actual); err == nil {
				dest.Set(reflect.ValueOf(ts))
				return nil
			}
		}
		return fmt.Errorf("cannot parse time string '%s': %w", actual, err)
	case float64:
		dest.Set(reflect.ValueOf(time.Unix(int64(actual), 0).UTC()))
		return nil
	case int:
		dest.Set(reflect.ValueOf(time.Unix(int64(actual), 0).UTC()))
		return nil
	case int64:
		dest.Set(reflect.ValueOf(time.Unix(actual, 0).UTC()))
		return nil
	case json.Number:
		seconds, err := actual.Int64()
		if err != nil {
			return fmt.Errorf("cannot convert number %v to time.Time: %w", actual, err)
		}
		dest.Set(reflect.ValueOf(time.Unix(seconds, 0).UTC()))
		return nil
	}
	return fmt.Errorf("cannot convert %T to time.Time", src)
}

func (c *Converter) convertToSlice(dest reflect.Value, src interface{}) error {
	destType := dest.Type()
	if !visitor.IsSequence(src) {
		return fmt.Errorf("cannot convert %T to %v", src, destType)
	}
	visit, err := visitor.AnySliceVisitorOf(src)
	if err != nil {
		return err
	}
	sliceValue := reflect.MakeSlice(destType, 0, reflect.ValueOf(src).Len())
	err = visit(func(i int, item any) (bool, error) {
		elem := reflect.New(destType.Elem()).Elem()
		if err := c.convert(elem, item, ""); err != nil {
			return false, fmt.Errorf("error converting slice element %d: %w", i, err)
		}
		sliceValue = reflect.Append(sliceValue, elem)
		return true, nil
	})
	if err != nil {
		return err
	}
	dest.Set(sliceValue)
	return nil
}

func (c *Converter) convertToMap(dest reflect.Value, src interface{}) error {
	destType := dest.Type()
	if destType.Key().Kind() != reflect.String {
		return fmt.Errorf("unsupported map key type: %v", destType.Key())
	}
	mapValue := reflect.MakeMap(destType)
	err := visitPairs(src, func(key string, item interface{}) (bool, error) {
		elem := reflect.New(destType.Elem()).Elem()
		if err := c.convert(elem, item, ""); err != nil {
			return false, fmt.Errorf("error converting map value %v: %w", key, err)
		}
		mapValue.SetMapIndex(reflect.ValueOf(key).Convert(destType.Key()), elem)
		return true, nil
	})
	if err != nil {
		return err
	}
	dest.Set(mapValue)
	return nil
}

func (c *Converter) convertToStruct(dest reflect.Value, src interface{}) error {
	info := c.getStructInfo(dest.Type())
	return visitPairs(src, func(key string, item interface{}) (bool, error) {
		field, ok := info.lookup(key)
		if !ok {
			if c.options.ErrorOnUnmapped {
				return false, fmt.Errorf("unmapped key: %v for %v", key, dest.Type())
			}
			return true, nil
		}
		if err := c.convert(dest.FieldByIndex(field.index), item, field.timeLayout); err != nil {
			return false, fmt.Errorf("failed to convert %v: %w", key, err)
		}
		return true, nil
	})
}

// visitPairs visits key value pairs of keyed mapping
func visitPairs(src interface{}, f func(key string, item interface{}) (bool, error)) error {
	if obj, ok := src.(*payload.Object); ok {
		return obj.Visit(f)
	}
	visit, err := visitor.AnyMapVisitorOf(src)
	if err != nil {
		return err
	}
	return visit(f)
}

// struct reflection caching

type structField struct {
	name       string
	index      []int
	timeLayout string
}

type structInfo struct {
	byTag   map[string]structField
	byWords map[string]structField
}

func (i *structInfo) lookup(key string) (structField, bool) {
	if field, ok := i.byTag[key]; ok {
		return field, true
	}
	field, ok := i.byWords[wordKey(key)]
	return field, ok
}

// wordKey normalises key to lower case words without delimiters
func wordKey(key string) string {
	return strings.ToLower(strings.Join(text.SplitWords(key), ""))
}

func (c *Converter) getStructInfo(t reflect.Type) *structInfo {
	return c.structCache.GetOrCreate(t, func() *structInfo {
		info := &structInfo{
			byTag:   make(map[string]structField),
			byWords: make(map[string]structField),
		}
		c.buildStructInfo(t, info, nil)
		return info
	})
}

func (c *Converter) buildStructInfo(t reflect.Type, info *structInfo, index []int) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldIndex := make([]int, len(index)+1)
		copy(fieldIndex, index)
		fieldIndex[len(index)] = i

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			c.buildStructInfo(field.Type, info, fieldIndex)
			continue
		}
		sf := structField{name: field.Name, index: fieldIndex}
		if formatTag, err := format.Parse(field.Tag); err == nil && formatTag != nil {
			if formatTag.Ignore {
				continue
			}
			sf.timeLayout = formatTag.TimeLayout
		}
		tagName := ""
		if tag := field.Tag.Get(c.options.TagName); tag != "" {
			tagName = strings.Split(tag, ",")[0]
		}
		if tagName == "-" {
			continue
		}
		if tagName != "" {
			info.byTag[tagName] = sf
			if _, ok := info.byWords[wordKey(tagName)]; !ok {
				info.byWords[wordKey(tagName)] = sf
			}
			continue
		}
		info.byWords[wordKey(field.Name)] = sf
	}
}

// helper functions

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	if v.Kind() == reflect.Ptr {
		return reflect.Value{}
	}
	return v
}
