package jmespath

// Generated by "stringer -type ASTNodeType"; kept hand-written here since the
// retrieved teacher source did not carry the generated file along with the
// go:generate directive in parser.go.

import "strconv"

func (i ASTNodeType) String() string {
	switch i {
	case ASTEmpty:
		return "ASTEmpty"
	case ASTComparator:
		return "ASTComparator"
	case ASTCurrentNode:
		return "ASTCurrentNode"
	case ASTExpRef:
		return "ASTExpRef"
	case ASTFunctionExpression:
		return "ASTFunctionExpression"
	case ASTField:
		return "ASTField"
	case ASTFilterProjection:
		return "ASTFilterProjection"
	case ASTFlatten:
		return "ASTFlatten"
	case ASTIdentity:
		return "ASTIdentity"
	case ASTIndex:
		return "ASTIndex"
	case ASTIndexExpression:
		return "ASTIndexExpression"
	case ASTKeyValPair:
		return "ASTKeyValPair"
	case ASTLiteral:
		return "ASTLiteral"
	case ASTMultiSelectHash:
		return "ASTMultiSelectHash"
	case ASTMultiSelectList:
		return "ASTMultiSelectList"
	case ASTOrExpression:
		return "ASTOrExpression"
	case ASTAndExpression:
		return "ASTAndExpression"
	case ASTNotExpression:
		return "ASTNotExpression"
	case ASTPipe:
		return "ASTPipe"
	case ASTProjection:
		return "ASTProjection"
	case ASTSubexpression:
		return "ASTSubexpression"
	case ASTSlice:
		return "ASTSlice"
	case ASTValueProjection:
		return "ASTValueProjection"
	case ASTRootNode:
		return "ASTRootNode"
	default:
		return "ASTNodeType(" + strconv.Itoa(int(i)) + ")"
	}
}
