package mustache

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-json-experiment/json"
)

// PropertyResolver is the injected capability (spec §9) used to look up a
// name on a scope value. It returns (value, true) on a hit, or
// (nil, false) on a miss; it never errors — a miss is reported by the
// scope stack as key_not_found.
type PropertyResolver func(scope any, name string) (value any, ok bool)

// resolved dereferences pointers and unwraps interfaces until it reaches a
// concrete value, mirroring the reference package's Value.resolved.
func resolved(v any) any {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

// isTrue implements spec §4.5's truthiness rule: false, null, and empty
// sequences (slices, arrays, maps, and strings) are false; everything else
// is true.
func isTrue(v any) bool {
	v = resolved(v)
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.String:
		return rv.Len() > 0
	default:
		return true
	}
}

// iterate calls fn once per element of a sequence value, in order. It
// reports whether v was iterable at all.
func iterate(v any, fn func(elem any)) bool {
	v = resolved(v)
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			fn(rv.Index(i).Interface())
		}
		return true
	default:
		return false
	}
}

// naturalString renders a resolved value's default string form (spec
// §4.6 step 1, used when no format specifier is present). Scalars use
// fmt.Sprint; maps and slices fall back to deterministic JSON, grounded
// on the reference package's jsonFilter/Value.String behavior.
func naturalString(v any) string {
	v = resolved(v)
	if v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		b, err := json.Marshal(v, json.Deterministic(true))
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	default:
		return fmt.Sprint(v)
	}
}

// DefaultPropertyResolver resolves a name against maps (string keys) and
// structs (JSON-tag name first, then exported field name), grounded on
// the reference package's findStructField/context map-and-struct lookup.
// Hosts may supply their own PropertyResolver instead.
func DefaultPropertyResolver(scope any, name string) (any, bool) {
	scope = resolved(scope)
	if scope == nil {
		return nil, false
	}

	if m, ok := scope.(map[string]any); ok {
		v, ok := m[name]
		return v, ok
	}

	rv := reflect.ValueOf(scope)
	switch rv.Kind() {
	case reflect.Map:
		return resolveMapKey(rv, name)
	case reflect.Struct:
		return resolveStructField(rv, name)
	default:
		return nil, false
	}
}

func resolveMapKey(rv reflect.Value, name string) (any, bool) {
	if rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	key := reflect.ValueOf(name).Convert(rv.Type().Key())
	v := rv.MapIndex(key)
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}

func resolveStructField(rv reflect.Value, name string) (any, bool) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		if jsonName(f) == name {
			return rv.Field(i).Interface(), true
		}
	}
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.IsExported() && f.Name == name {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	return strings.Split(tag, ",")[0]
}
