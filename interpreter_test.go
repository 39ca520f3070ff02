package jmespath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func exec(t *testing.T, expression string, data interface{}) (interface{}, error) {
	parser := NewParser()
	ast, err := parser.Parse(expression)
	if !assert.Nil(t, err, expression) {
		t.FailNow()
	}
	intr := newInterpreter(data)
	return intr.Execute(ast, data)
}

func TestExecuteFieldNavigation(t *testing.T) {
	assert := assert.New(t)
	data := map[string]interface{}{"foo": map[string]interface{}{"bar": "baz"}}
	result, err := exec(t, "foo.bar", data)
	assert.Nil(err)
	assert.Equal("baz", result)

	result, err = exec(t, "missing.field", data)
	assert.Nil(err)
	assert.Nil(result)
}

func TestExecuteIndexPositiveAndNegative(t *testing.T) {
	assert := assert.New(t)
	data := map[string]interface{}{"items": []interface{}{"a", "b", "c"}}
	result, err := exec(t, "items[1]", data)
	assert.Nil(err)
	assert.Equal("b", result)

	result, err = exec(t, "items[-1]", data)
	assert.Nil(err)
	assert.Equal("c", result)

	result, err = exec(t, "items[10]", data)
	assert.Nil(err)
	assert.Nil(result)
}

func TestExecuteSlice(t *testing.T) {
	assert := assert.New(t)
	data := map[string]interface{}{"items": []interface{}{0.0, 1.0, 2.0, 3.0, 4.0}}
	result, err := exec(t, "items[1:3]", data)
	assert.Nil(err)
	assert.Equal([]interface{}{1.0, 2.0}, result)

	result, err = exec(t, "items[::-1]", data)
	assert.Nil(err)
	assert.Equal([]interface{}{4.0, 3.0, 2.0, 1.0, 0.0}, result)
}

func TestExecuteSliceStepZeroIsInvalidValueError(t *testing.T) {
	assert := assert.New(t)
	data := map[string]interface{}{"items": []interface{}{0.0, 1.0, 2.0}}
	_, err := exec(t, "items[0:2:0]", data)
	assert.NotNil(err)
	_, ok := err.(*InvalidValueError)
	assert.True(ok)
}

func TestExecuteFilterProjection(t *testing.T) {
	assert := assert.New(t)
	data := map[string]interface{}{"items": []interface{}{
		map[string]interface{}{"age": 10.0, "name": "a"},
		map[string]interface{}{"age": 25.0, "name": "b"},
		map[string]interface{}{"age": 30.0, "name": "c"},
	}}
	result, err := exec(t, "items[?age > `20`].name", data)
	assert.Nil(err)
	assert.Equal([]interface{}{"b", "c"}, result)
}

func TestExecuteValueProjectionPreservesOrder(t *testing.T) {
	assert := assert.New(t)
	foo := newObjectMap()
	foo.Set("c", 3.0)
	foo.Set("a", 1.0)
	foo.Set("b", 2.0)
	data := map[string]interface{}{"foo": foo}
	result, err := exec(t, "foo.*", data)
	assert.Nil(err)
	assert.Equal([]interface{}{3.0, 1.0, 2.0}, result)
}

func TestExecuteObjectProjectionViaMultiSelectHash(t *testing.T) {
	assert := assert.New(t)
	data := map[string]interface{}{"foo": "bar"}
	result, err := exec(t, "{a: foo, b: foo}", data)
	assert.Nil(err)
	obj, ok := result.(*jpObjectMap)
	assert.True(ok)
	a, _ := obj.Get("a")
	b, _ := obj.Get("b")
	assert.Equal("bar", a)
	assert.Equal("bar", b)
	first := obj.Oldest()
	assert.Equal("a", first.Key)
}

func TestExecutePipeAppliesSequentially(t *testing.T) {
	assert := assert.New(t)
	data := map[string]interface{}{"items": []interface{}{
		map[string]interface{}{"name": "a"},
		map[string]interface{}{"name": "b"},
	}}
	result, err := exec(t, "items[*].name | [0]", data)
	assert.Nil(err)
	assert.Equal("a", result)
}

func TestExecuteMultiSelectList(t *testing.T) {
	assert := assert.New(t)
	data := map[string]interface{}{"foo": "bar", "baz": "qux"}
	result, err := exec(t, "[foo, baz]", data)
	assert.Nil(err)
	assert.Equal([]interface{}{"bar", "qux"}, result)
}

func TestExecuteComparators(t *testing.T) {
	assert := assert.New(t)
	data := map[string]interface{}{}

	result, err := exec(t, "`1` == `1`", data)
	assert.Nil(err)
	assert.Equal(true, result)

	result, err = exec(t, "`{\"a\": 1}` == `{\"a\": 1}`", data)
	assert.Nil(err)
	assert.Equal(true, result)

	result, err = exec(t, "`1` != `2`", data)
	assert.Nil(err)
	assert.Equal(true, result)

	result, err = exec(t, "`1` < `2`", data)
	assert.Nil(err)
	assert.Equal(true, result)

	result, err = exec(t, "`\"a\"` < `2`", data)
	assert.Nil(err)
	assert.Nil(result)

	result, err = exec(t, "`\"abc\"` < `\"abd\"`", data)
	assert.Nil(err)
	assert.Equal(true, result)
}

func TestExecuteAndOrNotShortCircuit(t *testing.T) {
	assert := assert.New(t)
	data := map[string]interface{}{"foo": "bar", "empty": ""}

	result, err := exec(t, "empty || foo", data)
	assert.Nil(err)
	assert.Equal("bar", result)

	result, err = exec(t, "foo && `true`", data)
	assert.Nil(err)
	assert.Equal(true, result)

	result, err = exec(t, "empty && foo", data)
	assert.Nil(err)
	assert.Equal("", result)

	result, err = exec(t, "!empty", data)
	assert.Nil(err)
	assert.Equal(true, result)
}

func TestExecuteRootNodeStaysAtDocumentRoot(t *testing.T) {
	assert := assert.New(t)
	data := map[string]interface{}{"foo": map[string]interface{}{"bar": "baz"}}
	result, err := exec(t, "foo | $", data)
	assert.Nil(err)
	assert.Equal(data, result)
}

func TestExecuteFlatten(t *testing.T) {
	assert := assert.New(t)
	data := map[string]interface{}{"items": []interface{}{
		[]interface{}{1.0, 2.0},
		[]interface{}{3.0},
	}}
	result, err := exec(t, "items[]", data)
	assert.Nil(err)
	assert.Equal([]interface{}{1.0, 2.0, 3.0}, result)
}

func TestExecuteUnknownFunctionErrors(t *testing.T) {
	assert := assert.New(t)
	_, err := exec(t, "not_a_real_function(@)", map[string]interface{}{})
	assert.NotNil(err)
	_, ok := err.(*UnknownFunctionError)
	assert.True(ok)
}
