package item

import (
	"github.com/KevinQian/incubator-shardingsphere/constant"
)

const unresolved = -1

//Aggregation represents an aggregation function item; innerExpression keeps
//the parenthesised argument text, i.e. "(price)" for SUM(price).
type Aggregation struct {
	aggregationType constant.AggregationType
	innerExpression string
	alias           string
	derived         []*Aggregation
	index           int
}

//NewAggregation creates an unresolved aggregation item
func NewAggregation(aggregationType constant.AggregationType, innerExpression, alias string) *Aggregation {
	return &Aggregation{
		aggregationType: aggregationType,
		innerExpression: innerExpression,
		alias:           alias,
		index:           unresolved,
	}
}

//Type returns aggregation function kind
func (a *Aggregation) Type() constant.AggregationType {
	return a.aggregationType
}

//InnerExpression returns parenthesised argument text
func (a *Aggregation) InnerExpression() string {
	return a.innerExpression
}

func (a *Aggregation) Expression() string {
	return string(a.aggregationType) + a.innerExpression
}

func (a *Aggregation) Alias() (string, bool) {
	return a.alias, a.alias != ""
}

//ColumnLabel returns the result set label this item resolves against: the
//declared alias when present, otherwise the expression text.
func (a *Aggregation) ColumnLabel() string {
	if a.alias != "" {
		return a.alias
	}
	return a.Expression()
}

//Derived returns derived sub aggregation items in declared order
func (a *Aggregation) Derived() []*Aggregation {
	return a.derived
}

//AppendDerived appends derived sub aggregation items
func (a *Aggregation) AppendDerived(items ...*Aggregation) {
	a.derived = append(a.derived, items...)
}

//ResolvedIndex returns the physical column position once assigned
func (a *Aggregation) ResolvedIndex() (int, bool) {
	return a.index, a.index != unresolved
}

//SetResolvedIndex sets the physical column position
func (a *Aggregation) SetResolvedIndex(index int) {
	a.index = index
}

func (a *Aggregation) selectItem() {}
