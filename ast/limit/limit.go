package limit

//Value represents a limit or offset value; ParameterIndex points at the
//statement placeholder that supplied it, -1 for an inline literal.
type Value struct {
	Value          int
	ParameterIndex int
}

//NewValue creates a literal limit value
func NewValue(value int) *Value {
	return &Value{Value: value, ParameterIndex: -1}
}

//NewParameterValue creates a placeholder bound limit value
func NewParameterValue(value, parameterIndex int) *Value {
	return &Value{Value: value, ParameterIndex: parameterIndex}
}

//IsParameter checks whether the value came from a statement placeholder
func (v *Value) IsParameter() bool {
	return v.ParameterIndex != -1
}

//Limit represents pagination metadata of a select statement; resolution
//carries it through untouched for downstream rewriting.
type Limit struct {
	Offset   *Value
	RowCount *Value
}
