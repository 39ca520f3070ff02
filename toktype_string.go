package jmespath

// Generated by "stringer -type=tokType"; kept hand-written here since the
// retrieved teacher source did not carry the generated file along with the
// go:generate directive in lexer.go.

import "strconv"

func (i tokType) String() string {
	switch i {
	case tUnknown:
		return "tUnknown"
	case tStar:
		return "tStar"
	case tDot:
		return "tDot"
	case tFilter:
		return "tFilter"
	case tFlatten:
		return "tFlatten"
	case tLparen:
		return "tLparen"
	case tRparen:
		return "tRparen"
	case tLbracket:
		return "tLbracket"
	case tRbracket:
		return "tRbracket"
	case tLbrace:
		return "tLbrace"
	case tRbrace:
		return "tRbrace"
	case tOr:
		return "tOr"
	case tPipe:
		return "tPipe"
	case tNumber:
		return "tNumber"
	case tUnquotedIdentifier:
		return "tUnquotedIdentifier"
	case tQuotedIdentifier:
		return "tQuotedIdentifier"
	case tComma:
		return "tComma"
	case tColon:
		return "tColon"
	case tLT:
		return "tLT"
	case tLTE:
		return "tLTE"
	case tGT:
		return "tGT"
	case tGTE:
		return "tGTE"
	case tEQ:
		return "tEQ"
	case tNE:
		return "tNE"
	case tJSONLiteral:
		return "tJSONLiteral"
	case tStringLiteral:
		return "tStringLiteral"
	case tCurrent:
		return "tCurrent"
	case tExpref:
		return "tExpref"
	case tAnd:
		return "tAnd"
	case tNot:
		return "tNot"
	case tRoot:
		return "tRoot"
	case tEOF:
		return "tEOF"
	default:
		return "tokType(" + strconv.Itoa(int(i)) + ")"
	}
}
