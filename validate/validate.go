package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/viant/personnel/format/text"
	"github.com/viant/personnel/payload"
	"github.com/viant/personnel/tags"
	"github.com/viant/personnel/visitor"
)

// TagName defines validation tag name
const TagName = "validate"

var emailExpr = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError represents a single field rule violation
type FieldError struct {
	Field   string
	Rule    string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

type rules struct {
	label    string
	required bool
	email    bool
	numeric  bool
	oneOf    []string
}

var rulesCache = visitor.NewSyncMap[*visitor.Field, *rules]()

// Struct validates struct fields, it returns nil or *multierror.Error
func Struct(value interface{}) error {
	visit, err := visitor.StructVisitorOf(value)
	if err != nil {
		return err
	}
	var result *multierror.Error
	err = visit(func(field *visitor.Field, item interface{}) (bool, error) {
		fieldRules, err := rulesOf(field)
		if err != nil {
			return false, err
		}
		if fieldRules == nil {
			return true, nil
		}
		if fieldErr := fieldRules.check(field.Name, item); fieldErr != nil {
			result = multierror.Append(result, fieldErr)
		}
		return true, nil
	})
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	result.ErrorFormat = formatErrors
	return result
}

// Required returns required rule violation for a field
func Required(field, label string) *FieldError {
	if label == "" {
		label = Label(field)
	}
	return &FieldError{Field: field, Rule: "required", Message: label + " is a required field."}
}

// Append appends field errors to err, it returns *multierror.Error
func Append(err error, fieldErrors ...*FieldError) error {
	result := &multierror.Error{}
	if !errors.As(err, &result) && err != nil {
		result = multierror.Append(result, err)
	}
	for _, fieldErr := range fieldErrors {
		result = multierror.Append(result, fieldErr)
	}
	if len(result.Errors) == 0 {
		return nil
	}
	result.ErrorFormat = formatErrors
	return result
}

// FieldErrors returns field violations wrapped by err
func FieldErrors(err error) []*FieldError {
	var multiErr *multierror.Error
	if !errors.As(err, &multiErr) {
		var fieldErr *FieldError
		if errors.As(err, &fieldErr) {
			return []*FieldError{fieldErr}
		}
		return nil
	}
	var result []*FieldError
	for _, candidate := range multiErr.Errors {
		if fieldErr, ok := candidate.(*FieldError); ok {
			result = append(result, fieldErr)
		}
	}
	return result
}

func formatErrors(errs []error) string {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "\n")
}

func rulesOf(field *visitor.Field) (*rules, error) {
	if ret, ok := rulesCache.Get(field); ok {
		return ret, nil
	}
	tag := tags.Parse(field.Tag, TagName)
	if tag == nil {
		rulesCache.Put(field, nil)
		return nil, nil
	}
	ret := &rules{label: Label(field.Name)}
	err := tag.Values.MatchPairs(func(key, value string) error {
		switch strings.ToLower(key) {
		case "required":
			ret.required = true
		case "email":
			ret.email = true
		case "numeric":
			ret.numeric = true
		case "oneof":
			ret.oneOf = strings.Split(value, "|")
		case "label":
			ret.label = value
		default:
			return fmt.Errorf("unsupported %v rule: %v on %v", TagName, key, field.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	rulesCache.Put(field, ret)
	return ret, nil
}

func (r *rules) check(field string, value interface{}) *FieldError {
	if isBlank(value) {
		if r.required {
			return Required(field, r.label)
		}
		return nil
	}
	literal := fmt.Sprint(indirect(value))
	if r.email && !emailExpr.MatchString(literal) {
		return &FieldError{Field: field, Rule: "email", Message: "Please provide a valid email address."}
	}
	if r.numeric && !isNumeric(value, literal) {
		return &FieldError{Field: field, Rule: "numeric", Message: r.label + " must be a number."}
	}
	if len(r.oneOf) > 0 && !contains(r.oneOf, literal) {
		return &FieldError{Field: field, Rule: "oneof", Message: r.label + " must be one of: " + strings.Join(r.oneOf, ", ")}
	}
	return nil
}

// Label returns display label derived from a field name
func Label(name string) string {
	words := text.SplitWords(name)
	for i, word := range words {
		if strings.ToUpper(word) == word {
			continue
		}
		words[i] = text.ToTitle(word)
	}
	return strings.Join(words, " ")
}

// isBlank returns true for nil, blank strings and non-positive numbers
func isBlank(value interface{}) bool {
	switch actual := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(actual) == ""
	case *payload.Attachment:
		return actual == nil
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rValue.IsNil() {
			return true
		}
		return isBlank(rValue.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rValue.Int() <= 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rValue.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rValue.Float() <= 0
	case reflect.Slice, reflect.Map:
		return rValue.Len() == 0
	}
	return false
}

func isNumeric(value interface{}, literal string) bool {
	switch reflect.ValueOf(indirect(value)).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	literal = strings.TrimSpace(literal)
	if literal == "" {
		return false
	}
	for _, r := range literal {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func indirect(value interface{}) interface{} {
	rValue := reflect.ValueOf(value)
	for rValue.Kind() == reflect.Ptr && !rValue.IsNil() {
		rValue = rValue.Elem()
	}
	return rValue.Interface()
}

func contains(candidates []string, value string) bool {
	for _, candidate := range candidates {
		if candidate == value {
			return true
		}
	}
	return false
}
