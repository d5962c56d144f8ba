package table

import (
	"strings"

	"github.com/KevinQian/incubator-shardingsphere/sqlutil"
)

//Table represents a table reference of the from clause
type Table struct {
	Name  string
	Alias string
}

//Registry resolves a table name or alias to the table it denotes
type Registry interface {
	Find(nameOrAlias string) (Table, bool)
}

//Tables represents tables of a statement in declaration order
type Tables []Table

//Find returns the first table matching nameOrAlias ignoring case and quoting
func (t Tables) Find(nameOrAlias string) (Table, bool) {
	value := sqlutil.ExactlyValue(nameOrAlias)
	for _, candidate := range t {
		if strings.EqualFold(candidate.Name, value) || strings.EqualFold(candidate.Alias, value) {
			return candidate, true
		}
	}
	return Table{}, false
}
