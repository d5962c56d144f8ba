package item

//Column represents a plain projected column or expression
type Column struct {
	expression string
	alias      string
}

//NewColumn creates a column item; empty alias means none declared
func NewColumn(expression, alias string) *Column {
	return &Column{expression: expression, alias: alias}
}

func (c *Column) Expression() string {
	return c.expression
}

func (c *Column) Alias() (string, bool) {
	return c.alias, c.alias != ""
}

func (c *Column) selectItem() {}
