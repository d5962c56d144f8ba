package item

import "strings"

//Distinct marks a distinct row projection
type Distinct struct {
	columnNames []string
	alias       string
}

//NewDistinct creates a distinct row marker over columnNames
func NewDistinct(columnNames []string, alias string) *Distinct {
	return &Distinct{columnNames: columnNames, alias: alias}
}

//ColumnNames returns distinct qualified column names
func (d *Distinct) ColumnNames() []string {
	return d.columnNames
}

func (d *Distinct) Expression() string {
	return "DISTINCT " + strings.Join(d.columnNames, ", ")
}

func (d *Distinct) Alias() (string, bool) {
	return d.alias, d.alias != ""
}

func (d *Distinct) selectItem() {}
