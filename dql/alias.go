package dql

import (
	"strings"

	"github.com/KevinQian/incubator-shardingsphere/sqlutil"
)

//Alias resolves a column name or expression to the alias declared for it in
//the select list. With an unqualified star every column is projected, so no
//alias can be determined and resolution reports absent immediately. An
//expression match returns the matched item's alias, which may itself be
//absent; a direct match against a declared alias returns the normalized
//input. First match in declaration order wins.
func (s *SelectStatement) Alias(name string) (string, bool) {
	if s.containsStar {
		return "", false
	}
	rawName := sqlutil.ExactlyValue(name)
	rawExpression := sqlutil.ExactlyExpression(rawName)
	for _, each := range s.items {
		expression := sqlutil.ExactlyExpression(sqlutil.ExactlyValue(each.Expression()))
		if strings.EqualFold(rawExpression, expression) {
			return each.Alias()
		}
		if alias, ok := each.Alias(); ok && strings.EqualFold(rawName, alias) {
			return rawName, true
		}
	}
	return "", false
}
