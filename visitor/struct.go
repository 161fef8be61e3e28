package visitor

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

var structCache = NewSyncMap[reflect.Type, []*Field]()

// Field represents exported struct field
type Field struct {
	reflect.StructField
	xField *xunsafe.Field
}

// Value returns field value for struct pointer
func (f *Field) Value(ptr unsafe.Pointer) interface{} {
	return f.xField.Value(ptr)
}

// StructVisitor implements Visitor[*Field, interface{}] for structs.
type StructVisitor struct {
	value  interface{}
	ptr    unsafe.Pointer
	fields []*Field
}

// StructFields returns cached exported fields of struct type
func StructFields(structType reflect.Type) []*Field {
	return structCache.GetOrCreate(structType, func() []*Field {
		fields := make([]*Field, 0, structType.NumField())
		for i := 0; i < structType.NumField(); i++ {
			field := structType.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, &Field{StructField: field, xField: xunsafe.NewField(field)})
		}
		return fields
	})
}

// IsStruct returns true for struct or non nil struct pointer values
func IsStruct(value interface{}) bool {
	if value == nil {
		return false
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Struct:
		return true
	case reflect.Ptr:
		return !rValue.IsNil() && rValue.Elem().Kind() == reflect.Struct
	}
	return false
}

// StructVisitorOf creates a StructVisitor from any struct value.
func StructVisitorOf(value interface{}) (Visitor[*Field, interface{}], error) {
	if value == nil {
		return nil, fmt.Errorf("expected struct or pointer to struct, got nil")
	}
	valueType := reflect.TypeOf(value)
	isPtr := false
	var structType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		if valueType.Elem().Kind() != reflect.Struct {
			return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
		}
		if reflect.ValueOf(value).IsNil() {
			return nil, fmt.Errorf("expected struct or pointer to struct, got nil %T", value)
		}
		isPtr = true
		structType = valueType.Elem()
	case reflect.Struct:
		structType = valueType
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}

	if !isPtr {
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	}
	visitor := &StructVisitor{
		value:  value,
		ptr:    xunsafe.AsPointer(value),
		fields: StructFields(structType),
	}
	return visitor.Visit, nil
}

// Visit iterates over exported struct fields, calling the provided function with each field and value.
func (w *StructVisitor) Visit(f func(key *Field, element interface{}) (bool, error)) error {
	for _, field := range w.fields {
		continueVisit, err := f(field, field.Value(w.ptr))
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
