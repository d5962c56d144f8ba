// Package orderby models ORDER BY and GROUP BY keys. An item starts
// unresolved and is assigned its physical column position exactly once
// during index resolution; only index items are born resolved.
package orderby

import (
	"strings"

	"github.com/KevinQian/incubator-shardingsphere/constant"
)

const unresolved = -1

//Item represents one ordering or grouping key
type Item interface {
	//OrderDirection returns sort direction
	OrderDirection() constant.OrderDirection
	//NullOrderDirection returns sort direction applied to null values
	NullOrderDirection() constant.OrderDirection
	//ResolvedIndex returns the physical column position once assigned
	ResolvedIndex() (int, bool)
	//SetResolvedIndex sets the physical column position
	SetResolvedIndex(index int)
	//QualifiedName returns owner.name, or bare name when owner is absent
	QualifiedName() (string, bool)

	orderItem()
}

type directions struct {
	orderDirection     constant.OrderDirection
	nullOrderDirection constant.OrderDirection
	index              int
}

func (d *directions) OrderDirection() constant.OrderDirection {
	return d.orderDirection
}

func (d *directions) NullOrderDirection() constant.OrderDirection {
	return d.nullOrderDirection
}

func (d *directions) ResolvedIndex() (int, bool) {
	return d.index, d.index != unresolved
}

func (d *directions) SetResolvedIndex(index int) {
	d.index = index
}

//IndexItem represents an ordinal key, i.e. ORDER BY 2; the 1-based source
//ordinal converts to a 0-based position at construction, so the item never
//needs a label lookup.
type IndexItem struct {
	directions
	ordinal int
}

//NewIndexItem creates an ordinal key from a 1-based source ordinal
func NewIndexItem(ordinal int, orderDirection, nullOrderDirection constant.OrderDirection) *IndexItem {
	return &IndexItem{
		directions: directions{orderDirection: orderDirection, nullOrderDirection: nullOrderDirection, index: ordinal - 1},
		ordinal:    ordinal,
	}
}

//Ordinal returns the 1-based ordinal as written in the SQL
func (i *IndexItem) Ordinal() int {
	return i.ordinal
}

func (i *IndexItem) QualifiedName() (string, bool) {
	return "", false
}

func (i *IndexItem) orderItem() {}

//ColumnItem represents a column reference key with an optional table owner
type ColumnItem struct {
	directions
	owner string
	name  string
}

//NewColumnItem creates a column reference key; empty owner means unqualified
func NewColumnItem(owner, name string, orderDirection, nullOrderDirection constant.OrderDirection) *ColumnItem {
	return &ColumnItem{
		directions: directions{orderDirection: orderDirection, nullOrderDirection: nullOrderDirection, index: unresolved},
		owner:      owner,
		name:       name,
	}
}

//Owner returns owning table name or alias if present
func (c *ColumnItem) Owner() (string, bool) {
	return c.owner, c.owner != ""
}

//Name returns bare column name
func (c *ColumnItem) Name() string {
	return c.name
}

func (c *ColumnItem) QualifiedName() (string, bool) {
	if c.name == "" {
		return "", false
	}
	if c.owner == "" {
		return c.name, true
	}
	return c.owner + "." + c.name, true
}

func (c *ColumnItem) orderItem() {}

//ExpressionItem represents a raw expression key
type ExpressionItem struct {
	directions
	expression string
}

//NewExpressionItem creates an expression key
func NewExpressionItem(expression string, orderDirection, nullOrderDirection constant.OrderDirection) *ExpressionItem {
	return &ExpressionItem{
		directions: directions{orderDirection: orderDirection, nullOrderDirection: nullOrderDirection, index: unresolved},
		expression: expression,
	}
}

//Expression returns raw expression text
func (e *ExpressionItem) Expression() string {
	return e.expression
}

func (e *ExpressionItem) QualifiedName() (string, bool) {
	return "", false
}

func (e *ExpressionItem) orderItem() {}

//Equal reports order item equality: sort directions must match, then either
//both qualified names are present and equal ignoring case, or both items
//carry a resolved index and the indices match. The name path lets unresolved
//items compare before resolution runs; the index path lets a key written as
//a name compare equal to one written as an ordinal once both are resolved.
func Equal(a, b Item) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.OrderDirection() != b.OrderDirection() {
		return false
	}
	return qualifiedNameEqual(a, b) || resolvedIndexEqual(a, b)
}

func qualifiedNameEqual(a, b Item) bool {
	aName, aOk := a.QualifiedName()
	bName, bOk := b.QualifiedName()
	return aOk && bOk && strings.EqualFold(aName, bName)
}

func resolvedIndexEqual(a, b Item) bool {
	aIndex, aOk := a.ResolvedIndex()
	bIndex, bOk := b.ResolvedIndex()
	return aOk && bOk && aIndex == bIndex
}
