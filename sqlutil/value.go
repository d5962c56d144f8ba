package sqlutil

import (
	"strings"

	"github.com/viant/parsly"
)

//ExactlyValue strips identifier quoting (backticks, brackets, single and
//double quotes) from value, case unchanged; used before any name comparison.
func ExactlyValue(value string) string {
	if value == "" {
		return value
	}
	cursor := parsly.NewCursor("", []byte(value), 0)
	dest := strings.Builder{}
	for cursor.Pos < cursor.InputSize {
		match := cursor.MatchAny(backQuotedToken, bracketQuotedToken, singleQuotedToken, doubleQuotedToken)
		switch match.Code {
		case backQuotedCode, bracketQuotedCode, singleQuotedCode, doubleQuotedCode:
			text := match.Text(cursor)
			dest.WriteString(text[1 : len(text)-1])
		default:
			b := cursor.Input[cursor.Pos]
			cursor.Pos++
			if isDelimiter(b) {
				continue
			}
			dest.WriteByte(b)
		}
	}
	return dest.String()
}

//ExactlyExpression strips whitespace from expression so that differently
//formatted but identical expressions compare equal.
func ExactlyExpression(expression string) string {
	if expression == "" {
		return expression
	}
	cursor := parsly.NewCursor("", []byte(expression), 0)
	dest := strings.Builder{}
	for cursor.Pos < cursor.InputSize {
		match := cursor.MatchOne(whitespaceToken)
		if match.Code == whitespaceCode {
			continue
		}
		dest.WriteByte(cursor.Input[cursor.Pos])
		cursor.Pos++
	}
	return dest.String()
}
