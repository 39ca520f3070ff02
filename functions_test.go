package jmespath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunctionsMathAndAggregates(t *testing.T) {
	assert := assert.New(t)
	data := map[string]interface{}{}

	result, err := exec(t, "abs(`-5`)", data)
	assert.Nil(err)
	assert.Equal(5.0, result)

	result, err = exec(t, "ceil(`1.2`)", data)
	assert.Nil(err)
	assert.Equal(2.0, result)

	result, err = exec(t, "floor(`1.8`)", data)
	assert.Nil(err)
	assert.Equal(1.0, result)

	result, err = exec(t, "avg(`[1, 2, 3]`)", data)
	assert.Nil(err)
	assert.Equal(2.0, result)

	result, err = exec(t, "sum(`[1, 2, 3]`)", data)
	assert.Nil(err)
	assert.Equal(6.0, result)

	result, err = exec(t, "max(`[3, 1, 2]`)", data)
	assert.Nil(err)
	assert.Equal(3.0, result)

	result, err = exec(t, "min(`[3, 1, 2]`)", data)
	assert.Nil(err)
	assert.Equal(1.0, result)

	result, err = exec(t, "max(`[\"b\", \"a\", \"c\"]`)", data)
	assert.Nil(err)
	assert.Equal("c", result)
}

func TestFunctionsStrings(t *testing.T) {
	assert := assert.New(t)
	data := map[string]interface{}{}

	result, err := exec(t, "upper(`\"abc\"`)", data)
	assert.Nil(err)
	assert.Equal("ABC", result)

	result, err = exec(t, "lower(`\"ABC\"`)", data)
	assert.Nil(err)
	assert.Equal("abc", result)

	result, err = exec(t, "starts_with(`\"abcdef\"`, `\"abc\"`)", data)
	assert.Nil(err)
	assert.Equal(true, result)

	result, err = exec(t, "ends_with(`\"abcdef\"`, `\"def\"`)", data)
	assert.Nil(err)
	assert.Equal(true, result)

	result, err = exec(t, "contains(`\"abcdef\"`, `\"cde\"`)", data)
	assert.Nil(err)
	assert.Equal(true, result)

	result, err = exec(t, "find_first(`\"abcabc\"`, `\"bc\"`)", data)
	assert.Nil(err)
	assert.Equal(1.0, result)

	result, err = exec(t, "find_last(`\"abcabc\"`, `\"bc\"`)", data)
	assert.Nil(err)
	assert.Equal(4.0, result)

	result, err = exec(t, "join(`\", \"`, `[\"a\", \"b\", \"c\"]`)", data)
	assert.Nil(err)
	assert.Equal("a, b, c", result)

	result, err = exec(t, "reverse(`\"abc\"`)", data)
	assert.Nil(err)
	assert.Equal("cba", result)

	result, err = exec(t, "trim(`\"  abc  \"`)", data)
	assert.Nil(err)
	assert.Equal("abc", result)

	result, err = exec(t, "pad_left(`\"5\"`, `3`, `\"0\"`)", data)
	assert.Nil(err)
	assert.Equal("005", result)

	result, err = exec(t, "pad_right(`\"5\"`, `3`, `\"0\"`)", data)
	assert.Nil(err)
	assert.Equal("500", result)

	result, err = exec(t, "replace(`\"a-b-c\"`, `\"-\"`, `\"_\"`)", data)
	assert.Nil(err)
	assert.Equal("a_b_c", result)
}

func TestFunctionsArrays(t *testing.T) {
	assert := assert.New(t)
	data := map[string]interface{}{}

	result, err := exec(t, "contains(`[1, 2, 3]`, `2`)", data)
	assert.Nil(err)
	assert.Equal(true, result)

	result, err = exec(t, "contains(`[{\"a\": 1}]`, `{\"a\": 1}`)", data)
	assert.Nil(err)
	assert.Equal(true, result)

	result, err = exec(t, "length(`[1, 2, 3]`)", data)
	assert.Nil(err)
	assert.Equal(3.0, result)

	result, err = exec(t, "length(`\"abc\"`)", data)
	assert.Nil(err)
	assert.Equal(3.0, result)

	result, err = exec(t, "length(`{\"a\": 1, \"b\": 2}`)", data)
	assert.Nil(err)
	assert.Equal(2.0, result)

	result, err = exec(t, "reverse(`[1, 2, 3]`)", data)
	assert.Nil(err)
	assert.Equal([]interface{}{3.0, 2.0, 1.0}, result)

	result, err = exec(t, "sort(`[3, 1, 2]`)", data)
	assert.Nil(err)
	assert.Equal([]interface{}{1.0, 2.0, 3.0}, result)

	result, err = exec(t, "not_null(`null`, `null`, `3`)", data)
	assert.Nil(err)
	assert.Equal(3.0, result)

	result, err = exec(t, "to_array(`5`)", data)
	assert.Nil(err)
	assert.Equal([]interface{}{5.0}, result)
}

func TestFunctionsObjects(t *testing.T) {
	assert := assert.New(t)
	data := map[string]interface{}{}

	result, err := exec(t, "keys(`{\"b\": 1, \"a\": 2}`)", data)
	assert.Nil(err)
	assert.ElementsMatch([]interface{}{"b", "a"}, result)

	result, err = exec(t, "values(`{\"a\": 1, \"b\": 2}`)", data)
	assert.Nil(err)
	assert.ElementsMatch([]interface{}{1.0, 2.0}, result)

	result, err = exec(t, "merge(`{\"a\": 1, \"b\": 1}`, `{\"b\": 2, \"c\": 3}`)", data)
	assert.Nil(err)
	obj, ok := result.(*jpObjectMap)
	assert.True(ok)
	a, _ := obj.Get("a")
	b, _ := obj.Get("b")
	c, _ := obj.Get("c")
	assert.Equal(1.0, a)
	assert.Equal(2.0, b)
	assert.Equal(3.0, c)
}

func TestFunctionsTypeConversion(t *testing.T) {
	assert := assert.New(t)
	data := map[string]interface{}{}

	result, err := exec(t, "type(`5`)", data)
	assert.Nil(err)
	assert.Equal("number", result)

	result, err = exec(t, "type(`\"abc\"`)", data)
	assert.Nil(err)
	assert.Equal("string", result)

	result, err = exec(t, "type(`null`)", data)
	assert.Nil(err)
	assert.Equal("null", result)

	result, err = exec(t, "to_number(`\"5\"`)", data)
	assert.Nil(err)
	assert.Equal(5.0, result)

	result, err = exec(t, "to_string(`5`)", data)
	assert.Nil(err)
	assert.Equal("5", result)
}

func TestFunctionsMapAndBy(t *testing.T) {
	assert := assert.New(t)
	data := map[string]interface{}{"items": []interface{}{
		map[string]interface{}{"age": 30.0, "name": "c"},
		map[string]interface{}{"age": 10.0, "name": "a"},
		map[string]interface{}{"age": 20.0, "name": "b"},
	}}

	result, err := exec(t, "map(&age, items)", data)
	assert.Nil(err)
	assert.Equal([]interface{}{30.0, 10.0, 20.0}, result)

	result, err = exec(t, "max_by(items, &age).name", data)
	assert.Nil(err)
	assert.Equal("c", result)

	result, err = exec(t, "min_by(items, &age).name", data)
	assert.Nil(err)
	assert.Equal("a", result)

	result, err = exec(t, "sort_by(items, &age)[0].name", data)
	assert.Nil(err)
	assert.Equal("a", result)
}

func TestFunctionsArityErrors(t *testing.T) {
	assert := assert.New(t)
	data := map[string]interface{}{}

	_, err := exec(t, "abs(`1`, `2`)", data)
	assert.NotNil(err)
	_, ok := err.(*InvalidArityError)
	assert.True(ok)

	_, err = exec(t, "current_datetime(`1`)", data)
	assert.NotNil(err)
	_, ok = err.(*InvalidArityError)
	assert.True(ok)

	_, err = exec(t, "abs()", data)
	assert.NotNil(err)
	_, ok = err.(*InvalidArityError)
	assert.True(ok)
}

func TestFunctionsTypeErrors(t *testing.T) {
	assert := assert.New(t)
	data := map[string]interface{}{}

	_, err := exec(t, "abs(`\"not a number\"`)", data)
	assert.NotNil(err)
	_, ok := err.(*InvalidTypeError)
	assert.True(ok)

	_, err = exec(t, "keys(`5`)", data)
	assert.NotNil(err)
	_, ok = err.(*InvalidTypeError)
	assert.True(ok)
}
