package transcode

import (
	"reflect"

	"github.com/viant/personnel/format/text"
	"github.com/viant/personnel/payload"
	"github.com/viant/personnel/visitor"
)

// maxDepth bounds the number of nested containers; deeper values are passed through unchanged
const maxDepth = 512

// Walker rewrites mapping keys of a payload tree with the target case format
type Walker struct {
	to        text.CaseFormat
	formatter *text.CaseFormatter
}

// NewWalker creates a walker for the target case format
func NewWalker(to text.CaseFormat) *Walker {
	return &Walker{to: to, formatter: to.Formatter()}
}

// To returns walker target format
func (w *Walker) To() text.CaseFormat {
	return w.to
}

// Transcode rewrites value keys into the target case format
func Transcode(value interface{}, to text.CaseFormat) interface{} {
	return NewWalker(to).Walk(value)
}

// Key rewrites a single key into the target case format
func Key(key string, to text.CaseFormat) string {
	return to.Format(key)
}

// Walk returns structurally identical payload with rewritten mapping keys.
// Scalars, attachments and unrecognised values are returned unchanged.
// A container met again on its own walk path (a cycle) is returned unchanged as an opaque value.
func (w *Walker) Walk(value interface{}) interface{} {
	return w.walk(value, newWalkPath())
}

// container identifies a map, slice or object by its backing storage
type container struct {
	rType  reflect.Type
	ptr    uintptr
	length int
}

func containerOf(rValue reflect.Value) container {
	ret := container{rType: rValue.Type(), ptr: uintptr(rValue.UnsafePointer())}
	if rValue.Kind() == reflect.Slice {
		ret.length = rValue.Len()
	}
	return ret
}

// walkPath tracks containers being walked and the ones already rewritten
type walkPath struct {
	active  map[container]bool
	written map[container]interface{}
}

func newWalkPath() *walkPath {
	return &walkPath{active: map[container]bool{}, written: map[container]interface{}{}}
}

// rewrite builds a container once; nil, empty, cyclic or too deep containers are returned unchanged
func (p *walkPath) rewrite(value interface{}, build func() interface{}) interface{} {
	rValue := reflect.ValueOf(value)
	if rValue.IsNil() || rValue.Kind() != reflect.Ptr && rValue.Len() == 0 {
		return value
	}
	key := containerOf(rValue)
	if ret, ok := p.written[key]; ok {
		return ret
	}
	if p.active[key] || len(p.active) >= maxDepth {
		return value
	}
	p.active[key] = true
	ret := build()
	delete(p.active, key)
	p.written[key] = ret
	return ret
}

func (w *Walker) walk(value interface{}, path *walkPath) interface{} {
	if value == nil || payload.IsBinary(value) {
		return value
	}
	switch actual := value.(type) {
	case *payload.Object:
		return path.rewrite(value, func() interface{} {
			ret := payload.NewObject(actual.Len())
			_ = actual.Visit(func(key string, item interface{}) (bool, error) {
				ret.Set(w.formatter.Format(key), w.walk(item, path))
				return true, nil
			})
			return ret
		})
	case map[string]interface{}:
		return path.rewrite(value, func() interface{} {
			ret := make(map[string]interface{}, len(actual))
			for key, item := range actual {
				ret[w.formatter.Format(key)] = w.walk(item, path)
			}
			return ret
		})
	case []interface{}:
		return path.rewrite(value, func() interface{} {
			ret := make([]interface{}, len(actual))
			for i, item := range actual {
				ret[i] = w.walk(item, path)
			}
			return ret
		})
	case payload.List:
		return path.rewrite(value, func() interface{} {
			ret := make(payload.List, len(actual))
			for i, item := range actual {
				ret[i] = w.walk(item, path)
			}
			return ret
		})
	}
	if visitor.IsStringKeyMap(value) {
		visit, err := visitor.AnyMapVisitorOf(value)
		if err != nil {
			return value
		}
		return path.rewrite(value, func() interface{} {
			ret := make(map[string]interface{})
			_ = visit(func(key string, item any) (bool, error) {
				ret[w.formatter.Format(key)] = w.walk(item, path)
				return true, nil
			})
			return ret
		})
	}
	if visitor.IsSequence(value) && hasContainerElements(value) {
		visit, err := visitor.AnySliceVisitorOf(value)
		if err != nil {
			return value
		}
		build := func() interface{} {
			ret := make([]interface{}, 0, reflect.ValueOf(value).Len())
			_ = visit(func(_ int, item any) (bool, error) {
				ret = append(ret, w.walk(item, path))
				return true, nil
			})
			return ret
		}
		if reflect.TypeOf(value).Kind() == reflect.Array {
			return build()
		}
		return path.rewrite(value, build)
	}
	return value
}

// hasContainerElements returns true for sequences which elements may hold mappings
func hasContainerElements(value interface{}) bool {
	switch reflect.TypeOf(value).Elem().Kind() {
	case reflect.Interface, reflect.Map, reflect.Slice, reflect.Array, reflect.Ptr:
		return true
	}
	return false
}
