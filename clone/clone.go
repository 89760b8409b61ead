/*
Package clone provides structural deep copies of plain-data values.

Plain data means nested maps, slices, arrays and scalar leaves. Values of
any other kind (functions, channels, pointers, structs, …) are not data in
this sense and make a clone fail with ErrNotPlainData. Callers embedding
such values in a template have a programming error on their hands, and we
want that surfaced instead of a silently shared or truncated copy.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 the autolink authors

*/
package clone

import (
	"fmt"
	"reflect"
)

// ErrNotPlainData is returned when a value cannot be represented as a
// structural copy, e.g. a function buried inside a template map.
var ErrNotPlainData = fmt.Errorf("value is not plain data")

// Any returns a deep copy of v. Maps, slices and arrays are duplicated
// recursively, scalars are copied by value. The result shares no mutable
// substructure with v.
func Any(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return cloneValue(reflect.ValueOf(v))
}

// Map deep-copies a string-keyed map, the shape used for element
// properties. A nil map clones to nil.
func Map(m map[string]any) (map[string]any, error) {
	if m == nil {
		return nil, nil
	}
	cp := make(map[string]any, len(m))
	for k, v := range m {
		cv, err := Any(v)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", k, err)
		}
		cp[k] = cv
	}
	return cp, nil
}

func cloneValue(val reflect.Value) (any, error) {
	switch val.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return val.Interface(), nil
	case reflect.Slice:
		if val.IsNil() {
			return zeroOf(val), nil
		}
		cp := reflect.MakeSlice(val.Type(), val.Len(), val.Len())
		for i := 0; i < val.Len(); i++ {
			cv, err := cloneItem(val.Index(i))
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			if cv != nil {
				cp.Index(i).Set(reflect.ValueOf(cv))
			}
		}
		return cp.Interface(), nil
	case reflect.Map:
		if val.IsNil() {
			return zeroOf(val), nil
		}
		cp := reflect.MakeMapWithSize(val.Type(), val.Len())
		iter := val.MapRange()
		for iter.Next() {
			if k := iter.Key().Kind(); k != reflect.String {
				return nil, fmt.Errorf("map key of kind %s: %w", k, ErrNotPlainData)
			}
			cv, err := cloneItem(iter.Value())
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", iter.Key().String(), err)
			}
			if cv == nil {
				cp.SetMapIndex(iter.Key(), reflect.Zero(val.Type().Elem()))
			} else {
				cp.SetMapIndex(iter.Key(), reflect.ValueOf(cv))
			}
		}
		return cp.Interface(), nil
	default:
		return nil, fmt.Errorf("kind %s: %w", val.Kind(), ErrNotPlainData)
	}
}

// cloneItem unwraps interface-typed slots (slice elements, map values)
// before descending.
func cloneItem(val reflect.Value) (any, error) {
	if val.Kind() == reflect.Interface {
		if val.IsNil() {
			return nil, nil
		}
		val = val.Elem()
	}
	return cloneValue(val)
}

func zeroOf(val reflect.Value) any {
	return reflect.Zero(val.Type()).Interface()
}
