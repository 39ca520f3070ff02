package jmespath

import (
	"fmt"
	"math"
	"reflect"
)

// isSliceType reports whether v is a Go slice of any element type. It backs
// the function library's array type checks for values that did not arrive
// as []interface{} (for example a []string struct field normalized through
// toObject).
func isSliceType(v interface{}) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Kind() == reflect.Slice
}

// toArrayNum converts a JMESPath array into a []float64, failing if any
// element is not a number.
func toArrayNum(arg interface{}) ([]float64, bool) {
	arr, ok := arg.([]interface{})
	if !ok {
		return nil, false
	}
	result := make([]float64, len(arr))
	for i, a := range arr {
		c, ok := a.(float64)
		if !ok {
			return nil, false
		}
		result[i] = c
	}
	return result, true
}

// toArrayStr converts a JMESPath array into a []string, failing if any
// element is not a string.
func toArrayStr(arg interface{}) ([]string, bool) {
	arr, ok := arg.([]interface{})
	if !ok {
		return nil, false
	}
	result := make([]string, len(arr))
	for i, a := range arr {
		c, ok := a.(string)
		if !ok {
			return nil, false
		}
		result[i] = c
	}
	return result, true
}

// toInteger reports whether arg is a whole-valued JSON number and returns it
// as an int.
func toInteger(arg interface{}) (int, bool) {
	v, ok := arg.(float64)
	if !ok {
		return 0, false
	}
	if v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}

// toPositiveInteger reports whether arg is a whole-valued, non-negative JSON
// number and returns it as an int.
func toPositiveInteger(arg interface{}) (int, bool) {
	n, ok := toInteger(arg)
	if !ok || n < 0 {
		return 0, false
	}
	return n, true
}

func notAnInteger(name, argName string) error {
	return invalidValueError(fmt.Sprintf(
		"invalid value, the function '%s' expects its %s argument to be an integer", name, argName))
}

func notAPositiveInteger(name, argName string) error {
	return invalidValueError(fmt.Sprintf(
		"invalid value, the function '%s' expects its %s argument to be a non-negative integer", name, argName))
}
