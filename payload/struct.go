package payload

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/viant/personnel/format/text"
	"github.com/viant/personnel/visitor"
	"github.com/viant/tagly/format"
)

var timeType = reflect.TypeOf(time.Time{})

type fieldTag struct {
	name      string
	explicit  bool
	omitEmpty bool
	ignore    bool
}

var fieldTags = visitor.NewSyncMap[*visitor.Field, fieldTag]()

// FromStruct converts struct (or struct pointer) into an object, field order is preserved.
// Field names resolve with the following precedence: json tag name, format tag name/caseFormat,
// then Go field name rewritten with supplied case format (lowerCamel when undefined).
func FromStruct(value interface{}, caseFormat text.CaseFormat) (*Object, error) {
	if !caseFormat.IsDefined() {
		caseFormat = text.Local
	}
	visit, err := visitor.StructVisitorOf(value)
	if err != nil {
		return nil, err
	}
	ret := NewObject(8)
	err = visit(func(field *visitor.Field, fieldValue interface{}) (bool, error) {
		tag := resolveFieldTag(field, caseFormat)
		if tag.ignore {
			return true, nil
		}
		if tag.omitEmpty && isEmpty(fieldValue) {
			return true, nil
		}
		converted, err := fromValue(fieldValue, caseFormat)
		if err != nil {
			return false, fmt.Errorf("%v: %w", field.Name, err)
		}
		ret.Set(tag.name, converted)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func fromValue(value interface{}, caseFormat text.CaseFormat) (interface{}, error) {
	switch actual := value.(type) {
	case nil:
		return nil, nil
	case *Attachment:
		if actual == nil {
			return nil, nil
		}
		return actual, nil
	case string, bool, int, int64, float64, time.Time, []byte, *Object:
		return actual, nil
	}
	if IsBinary(value) {
		return value, nil
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() == reflect.Ptr {
		if rValue.IsNil() {
			return nil, nil
		}
		if rValue.Elem().Type() != timeType && rValue.Elem().Kind() != reflect.Struct {
			return fromValue(rValue.Elem().Interface(), caseFormat)
		}
	}
	if rValue.Type() == timeType || (rValue.Kind() == reflect.Ptr && rValue.Elem().Type() == timeType) {
		return reflect.Indirect(rValue).Interface(), nil
	}
	if visitor.IsStruct(value) {
		return FromStruct(value, caseFormat)
	}
	if visitor.IsSequence(value) {
		visit, err := visitor.AnySliceVisitorOf(value)
		if err != nil {
			return nil, err
		}
		var items = make([]interface{}, 0, rValue.Len())
		err = visit(func(i int, item any) (bool, error) {
			converted, err := fromValue(item, caseFormat)
			if err != nil {
				return false, fmt.Errorf("[%v]: %w", i, err)
			}
			items = append(items, converted)
			return true, nil
		})
		return items, err
	}
	return value, nil
}

func resolveFieldTag(field *visitor.Field, caseFormat text.CaseFormat) fieldTag {
	if tag, ok := fieldTags.Get(field); ok {
		return adjustName(tag, field, caseFormat)
	}
	tag := fieldTag{}
	if jsonTag, ok := field.Tag.Lookup("json"); ok {
		parts := strings.Split(jsonTag, ",")
		if parts[0] == "-" && len(parts) == 1 {
			tag.ignore = true
		} else if parts[0] != "" {
			tag.name = parts[0]
			tag.explicit = true
		}
		for _, part := range parts[1:] {
			if part == "omitempty" {
				tag.omitEmpty = true
			}
		}
	}
	if formatTag, err := format.Parse(field.Tag); err == nil && formatTag != nil {
		tag.ignore = tag.ignore || formatTag.Ignore
		tag.omitEmpty = tag.omitEmpty || formatTag.Omitempty
		if !tag.explicit {
			name := formatTag.Name
			if name == "" {
				name = field.Name
			}
			if formatTag.CaseFormat != "" {
				if to := text.NewCaseFormat(formatTag.CaseFormat); to.IsDefined() {
					tag.name = to.Format(name)
					tag.explicit = true
				}
			} else if formatTag.Name != "" {
				tag.name = name
				tag.explicit = true
			}
		}
	}
	fieldTags.Put(field, tag)
	return adjustName(tag, field, caseFormat)
}

func adjustName(tag fieldTag, field *visitor.Field, caseFormat text.CaseFormat) fieldTag {
	if !tag.explicit {
		tag.name = caseFormat.Format(field.Name)
	}
	return tag
}

func isEmpty(value interface{}) bool {
	if value == nil {
		return true
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Slice, reflect.Map:
		return rValue.Len() == 0
	}
	return rValue.IsZero()
}
