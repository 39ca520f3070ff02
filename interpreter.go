package jmespath

import (
	"github.com/go-jmes/jmespath/internal/jputil"
)

// treeInterpreter walks a parsed ASTNode against a Value, producing the
// Value that the expression selects. A fresh treeInterpreter is created per
// top-level Execute call; it is not reused across expressions.
type treeInterpreter struct {
	root  interface{}
	fCall *functionCaller
}

func newInterpreter(root interface{}) *treeInterpreter {
	return &treeInterpreter{root: root, fCall: newFunctionCaller()}
}

// expRef is the runtime representation of an ASTExpRef node (the `&expr`
// syntax): an unevaluated expression handed to functions like sort_by that
// evaluate it once per element.
type expRef struct {
	ref ASTNode
}

// Execute evaluates node against value, returning the selected Value. A
// missing key, an out-of-range index, or a type mismatch during navigation
// is never an error: it yields nil, and so does an ordering comparator whose
// operands are not both numbers or both strings. Only the function registry,
// a slice with a step of 0, and a handful of structural node-type checks
// ever return a non-nil error from Execute.
func (intr *treeInterpreter) Execute(node ASTNode, value interface{}) (interface{}, error) {
	switch node.NodeType {
	case ASTComparator:
		return intr.executeComparator(node, value)
	case ASTExpRef:
		return expRef{ref: node.Children[0]}, nil
	case ASTFunctionExpression:
		resolvedArgs := make([]interface{}, 0, len(node.Children))
		for _, arg := range node.Children {
			current, err := intr.Execute(arg, value)
			if err != nil {
				return nil, err
			}
			resolvedArgs = append(resolvedArgs, current)
		}
		return intr.fCall.CallFunction(node.Value.(string), resolvedArgs, intr)
	case ASTField:
		return intr.executeField(node, value)
	case ASTFilterProjection:
		return intr.executeFilterProjection(node, value)
	case ASTFlatten:
		left, err := intr.Execute(node.Children[0], value)
		if err != nil {
			return nil, err
		}
		sliceType, ok := left.([]interface{})
		if !ok {
			return nil, nil
		}
		flattened := make([]interface{}, 0, len(sliceType))
		for _, element := range sliceType {
			if elementSlice, ok := element.([]interface{}); ok {
				flattened = append(flattened, elementSlice...)
			} else {
				flattened = append(flattened, element)
			}
		}
		return flattened, nil
	case ASTIdentity, ASTCurrentNode:
		return jputil.Deref(value), nil
	case ASTRootNode:
		return jputil.Deref(intr.root), nil
	case ASTIndex:
		sliceType, ok := jputil.Deref(value).([]interface{})
		if !ok {
			return nil, nil
		}
		index := node.Value.(int)
		if index < 0 {
			index += len(sliceType)
		}
		if index < 0 || index >= len(sliceType) {
			return nil, nil
		}
		return jputil.Deref(sliceType[index]), nil
	case ASTIndexExpression, ASTSubexpression:
		left, err := intr.Execute(node.Children[0], value)
		if err != nil {
			return nil, err
		}
		return intr.Execute(node.Children[1], left)
	case ASTKeyValPair:
		return intr.Execute(node.Children[0], value)
	case ASTLiteral:
		return node.Value, nil
	case ASTMultiSelectHash:
		if value == nil {
			return nil, nil
		}
		collected := newObjectMap()
		for _, child := range node.Children {
			key := child.Value.(string)
			current, err := intr.Execute(child.Children[0], value)
			if err != nil {
				return nil, err
			}
			collected.Set(key, current)
		}
		return collected, nil
	case ASTMultiSelectList:
		if value == nil {
			return nil, nil
		}
		collected := make([]interface{}, 0, len(node.Children))
		for _, child := range node.Children {
			current, err := intr.Execute(child, value)
			if err != nil {
				return nil, err
			}
			collected = append(collected, current)
		}
		return collected, nil
	case ASTOrExpression:
		matched, err := intr.Execute(node.Children[0], value)
		if err != nil {
			return nil, err
		}
		if jputil.IsFalse(matched) {
			return intr.Execute(node.Children[1], value)
		}
		return matched, nil
	case ASTAndExpression:
		matched, err := intr.Execute(node.Children[0], value)
		if err != nil {
			return nil, err
		}
		if jputil.IsFalse(matched) {
			return matched, nil
		}
		return intr.Execute(node.Children[1], value)
	case ASTNotExpression:
		matched, err := intr.Execute(node.Children[0], value)
		if err != nil {
			return nil, err
		}
		return jputil.IsFalse(matched), nil
	case ASTPipe:
		result := value
		for _, child := range node.Children {
			next, err := intr.Execute(child, result)
			if err != nil {
				return nil, err
			}
			result = next
		}
		return result, nil
	case ASTProjection:
		return intr.executeProjection(node, value)
	case ASTSlice:
		sliceType, ok := jputil.Deref(value).([]interface{})
		if !ok {
			return nil, nil
		}
		parts := node.Value.([]*int)
		params := make([]jputil.SliceParam, 3)
		for i, part := range parts {
			if part != nil {
				params[i] = jputil.SliceParam{N: *part, Specified: true}
			}
		}
		result, err := jputil.Slice(sliceType, params)
		if err != nil {
			return nil, invalidValueError(err.Error())
		}
		return result, nil
	case ASTValueProjection:
		return intr.executeValueProjection(node, value)
	}
	return nil, invalidValueError("unknown AST node: " + node.NodeType.String())
}

func (intr *treeInterpreter) executeField(node ASTNode, value interface{}) (interface{}, error) {
	if value == nil {
		return nil, nil
	}
	key := node.Value.(string)
	if !isObject(value) {
		return nil, nil
	}
	obj := toObject(value)
	found, ok := obj.Get(key)
	if !ok {
		return nil, nil
	}
	return jputil.Deref(found), nil
}

func (intr *treeInterpreter) executeComparator(node ASTNode, value interface{}) (interface{}, error) {
	left, err := intr.Execute(node.Children[0], value)
	if err != nil {
		return nil, err
	}
	right, err := intr.Execute(node.Children[1], value)
	if err != nil {
		return nil, err
	}
	switch node.Value.(tokType) {
	case tEQ:
		return jputil.ObjsEqual(left, right), nil
	case tNE:
		return !jputil.ObjsEqual(left, right), nil
	}
	if leftStr, ok := left.(string); ok {
		rightStr, ok := right.(string)
		if !ok {
			return nil, nil
		}
		switch node.Value.(tokType) {
		case tLT:
			return leftStr < rightStr, nil
		case tLTE:
			return leftStr <= rightStr, nil
		case tGT:
			return leftStr > rightStr, nil
		case tGTE:
			return leftStr >= rightStr, nil
		}
		return nil, invalidValueError("unknown comparator")
	}
	leftNum, leftOK := left.(float64)
	rightNum, rightOK := right.(float64)
	if !leftOK || !rightOK {
		// Ordering comparators are only defined over numbers and strings;
		// any other operand pairing is navigation-time absence, not an error.
		return nil, nil
	}
	switch node.Value.(tokType) {
	case tLT:
		return leftNum < rightNum, nil
	case tLTE:
		return leftNum <= rightNum, nil
	case tGT:
		return leftNum > rightNum, nil
	case tGTE:
		return leftNum >= rightNum, nil
	}
	return nil, invalidValueError("unknown comparator")
}

func (intr *treeInterpreter) executeProjection(node ASTNode, value interface{}) (interface{}, error) {
	left, err := intr.Execute(node.Children[0], value)
	if err != nil {
		return nil, err
	}
	sliceType, ok := left.([]interface{})
	if !ok {
		return nil, nil
	}
	collected := make([]interface{}, 0, len(sliceType))
	for _, element := range sliceType {
		current, err := intr.Execute(node.Children[1], element)
		if err != nil {
			return nil, err
		}
		if current != nil {
			collected = append(collected, current)
		}
	}
	return collected, nil
}

func (intr *treeInterpreter) executeFilterProjection(node ASTNode, value interface{}) (interface{}, error) {
	left, err := intr.Execute(node.Children[0], value)
	if err != nil {
		return nil, err
	}
	sliceType, ok := left.([]interface{})
	if !ok {
		return nil, nil
	}
	collected := make([]interface{}, 0, len(sliceType))
	for _, element := range sliceType {
		result, err := intr.Execute(node.Children[2], element)
		if err != nil {
			return nil, err
		}
		if jputil.IsFalse(result) {
			continue
		}
		current, err := intr.Execute(node.Children[1], element)
		if err != nil {
			return nil, err
		}
		if current != nil {
			collected = append(collected, current)
		}
	}
	return collected, nil
}

func (intr *treeInterpreter) executeValueProjection(node ASTNode, value interface{}) (interface{}, error) {
	left, err := intr.Execute(node.Children[0], value)
	if err != nil {
		return nil, err
	}
	if !isObject(left) {
		return nil, nil
	}
	obj := toObject(left)
	collected := make([]interface{}, 0, obj.Len())
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		current, err := intr.Execute(node.Children[1], pair.Value)
		if err != nil {
			return nil, err
		}
		if current != nil {
			collected = append(collected, current)
		}
	}
	return collected, nil
}
