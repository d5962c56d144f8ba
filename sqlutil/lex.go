package sqlutil

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceCode int = iota
	backQuotedCode
	bracketQuotedCode
	singleQuotedCode
	doubleQuotedCode
)

var whitespaceToken = parsly.NewToken(whitespaceCode, "whitespace", matcher.NewWhiteSpace())
var backQuotedToken = parsly.NewToken(backQuotedCode, "`..`", matcher.NewByteQuote('`', '\\'))
var bracketQuotedToken = parsly.NewToken(bracketQuotedCode, "[..]", matcher.NewBlock('[', ']', '\\'))
var singleQuotedToken = parsly.NewToken(singleQuotedCode, `'..'`, matcher.NewByteQuote('\'', '\\'))
var doubleQuotedToken = parsly.NewToken(doubleQuotedCode, `".."`, matcher.NewByteQuote('"', '\\'))

func isDelimiter(b byte) bool {
	switch b {
	case '`', '[', ']', '\'', '"':
		return true
	}
	return false
}
