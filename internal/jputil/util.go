// Package jputil holds the small value-shape helpers the interpreter and
// function library share: JMESPath truthiness, structural equality, and
// array slicing. Kept as its own package the way the teacher splits these
// concerns out of the main interpreter.
package jputil

import (
	"errors"
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// IsFalse reports whether value is "false" under JMESPath's truthiness
// rules: nil, the boolean false, or an empty string/array/object.
func IsFalse(value interface{}) bool {
	if value == nil {
		return true
	} else if value == false {
		return true
	} else if aSlice, ok := value.([]interface{}); ok && len(aSlice) == 0 {
		return true
	} else if aStr, ok := value.(string); ok && len(aStr) == 0 {
		return true
	} else if aMap, ok := value.(*orderedmap.OrderedMap[string, interface{}]); ok && aMap.Len() == 0 {
		return true
	} else if aMap, ok := value.(map[string]interface{}); ok && len(aMap) == 0 {
		return true
	}
	return false
}

// ObjsEqual implements JMESPath's `==`/`!=` deep structural equality.
// Objects compare by key/value content, independent of insertion order.
// Both sides are dereferenced first so a document built from pointer-typed
// struct/map fields compares by value rather than by indirection.
func ObjsEqual(left interface{}, right interface{}) bool {
	left = Deref(left)
	right = Deref(right)
	if (left == nil) || (right == nil) {
		return left == right
	}
	lm, lok := left.(*orderedmap.OrderedMap[string, interface{}])
	rm, rok := right.(*orderedmap.OrderedMap[string, interface{}])
	if lok != rok {
		// Lift a bare map on the other side so both compare by content.
		lift := func(v interface{}) (*orderedmap.OrderedMap[string, interface{}], bool) {
			m, ok := v.(map[string]interface{})
			if !ok {
				return nil, false
			}
			om := orderedmap.New[string, interface{}]()
			for k, val := range m {
				om.Set(k, val)
			}
			return om, true
		}
		if lok {
			rm, rok = lift(right)
		} else {
			lm, lok = lift(left)
		}
	}
	if lok || rok {
		if !lok || !rok {
			return false
		}
		return orderedMapsEqual(lm, rm)
	}
	return reflect.DeepEqual(left, right)
}

// Deref chases pointer and interface indirection down to the first concrete
// value, so a document built with pointer-typed struct/map fields (or even a
// pointer to the whole document) behaves the same as its dereferenced form.
// A nil pointer/interface anywhere along the chain collapses to nil. The
// engine's own ordered object is returned as its pointer, the form the rest
// of the engine recognises as an object.
func Deref(value interface{}) interface{} {
	if value == nil {
		return nil
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		if om, ok := rv.Interface().(*orderedmap.OrderedMap[string, interface{}]); ok {
			return om
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

func orderedMapsEqual(left, right *orderedmap.OrderedMap[string, interface{}]) bool {
	if left.Len() != right.Len() {
		return false
	}
	for pair := left.Oldest(); pair != nil; pair = pair.Next() {
		other, ok := right.Get(pair.Key)
		if !ok || !ObjsEqual(pair.Value, other) {
			return false
		}
	}
	return true
}

// SliceParam is one component (start, stop, or step) of a [start:stop:step]
// slice expression; Specified distinguishes an omitted bound from an
// explicit zero.
type SliceParam struct {
	N         int
	Specified bool
}

// Slice supports [start:stop:step] style slicing over an array.
func Slice(slice []interface{}, parts []SliceParam) ([]interface{}, error) {
	computed, err := computeSliceParams(len(slice), parts)
	if err != nil {
		return nil, err
	}
	start, stop, step := computed[0], computed[1], computed[2]
	result := make([]interface{}, 0)
	if step > 0 {
		for i := start; i < stop; i += step {
			result = append(result, slice[i])
		}
	} else {
		for i := start; i > stop; i += step {
			result = append(result, slice[i])
		}
	}
	return result, nil
}

func computeSliceParams(length int, parts []SliceParam) ([]int, error) {
	var start, stop, step int
	if !parts[2].Specified {
		step = 1
	} else if parts[2].N == 0 {
		return nil, errors.New("invalid slice, step cannot be 0")
	} else {
		step = parts[2].N
	}
	stepValueNegative := step < 0

	if !parts[0].Specified {
		if stepValueNegative {
			start = length - 1
		} else {
			start = 0
		}
	} else {
		start = capSlice(length, parts[0].N, step)
	}

	if !parts[1].Specified {
		if stepValueNegative {
			stop = -1
		} else {
			stop = length
		}
	} else {
		stop = capSlice(length, parts[1].N, step)
	}
	return []int{start, stop, step}, nil
}

func capSlice(length int, actual int, step int) int {
	if actual < 0 {
		actual += length
		if actual < 0 {
			if step < 0 {
				actual = -1
			} else {
				actual = 0
			}
		}
	} else if actual >= length {
		if step < 0 {
			actual = length - 1
		} else {
			actual = length
		}
	}
	return actual
}
