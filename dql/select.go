// Package dql holds the select statement context a sharded query compiles
// into: the projected item set, group by and order by keys, pagination
// metadata and subquery links. Once one shard execution reveals the physical
// column layout, SetIndexForItems resolves every aggregation and ordering
// item to a column position for the result merge.
//
// A statement is not safe for concurrent use; one compilation pass owns it.
package dql

import (
	"strings"

	"github.com/KevinQian/incubator-shardingsphere/ast/condition"
	"github.com/KevinQian/incubator-shardingsphere/ast/item"
	"github.com/KevinQian/incubator-shardingsphere/ast/limit"
	"github.com/KevinQian/incubator-shardingsphere/ast/orderby"
	"github.com/KevinQian/incubator-shardingsphere/ast/table"
)

//SelectStatement represents a parsed select statement context
type SelectStatement struct {
	tables       table.Registry
	items        []item.SelectItem
	itemKeys     map[string]bool
	containsStar bool
	groupByItems []orderby.Item
	orderByItems []orderby.Item
	limit        *limit.Limit

	//select list source offsets, used by downstream rewriting only
	FirstSelectItemStartIndex int
	SelectListStopIndex       int
	GroupByLastIndex          int

	parent             Handle
	subquery           Handle
	subqueryConditions []condition.Condition
}

//NewSelectStatement creates a select statement over tables
func NewSelectStatement(tables table.Registry) *SelectStatement {
	return &SelectStatement{
		tables:   tables,
		itemKeys: map[string]bool{},
		parent:   NilHandle,
		subquery: NilHandle,
	}
}

//AddItem appends a select item unless an identical one was already added;
//declaration order is preserved, it drives alias resolution and star
//expansion downstream.
func (s *SelectStatement) AddItem(selectItem item.SelectItem) {
	key := itemKey(selectItem)
	if s.itemKeys == nil {
		s.itemKeys = map[string]bool{}
	}
	if s.itemKeys[key] {
		return
	}
	s.itemKeys[key] = true
	s.items = append(s.items, selectItem)
	if star, ok := selectItem.(*item.Star); ok {
		if _, qualified := star.Owner(); !qualified {
			s.containsStar = true
		}
	}
}

func itemKey(selectItem item.SelectItem) string {
	alias, _ := selectItem.Alias()
	return selectItem.Expression() + "\x00" + alias
}

//Items returns select items in declaration order
func (s *SelectStatement) Items() []item.SelectItem {
	return s.items
}

//AddGroupByItem appends a group by key
func (s *SelectStatement) AddGroupByItem(orderItem orderby.Item) {
	s.groupByItems = append(s.groupByItems, orderItem)
}

//GroupByItems returns group by keys in declaration order
func (s *SelectStatement) GroupByItems() []orderby.Item {
	return s.groupByItems
}

//AddOrderByItem appends an order by key
func (s *SelectStatement) AddOrderByItem(orderItem orderby.Item) {
	s.orderByItems = append(s.orderByItems, orderItem)
}

//OrderByItems returns order by keys in declaration order
func (s *SelectStatement) OrderByItems() []orderby.Item {
	return s.orderByItems
}

//SetLimit sets pagination metadata
func (s *SelectStatement) SetLimit(value *limit.Limit) {
	s.limit = value
}

//Limit returns pagination metadata if present
func (s *SelectStatement) Limit() (*limit.Limit, bool) {
	return s.limit, s.limit != nil
}

//HasUnqualifiedStarItem checks for a star item without an owner
func (s *SelectStatement) HasUnqualifiedStarItem() bool {
	for _, each := range s.items {
		if star, ok := each.(*item.Star); ok {
			if _, qualified := star.Owner(); !qualified {
				return true
			}
		}
	}
	return false
}

//QualifiedStarItems returns star items carrying an owner, in declaration order
func (s *SelectStatement) QualifiedStarItems() []*item.Star {
	var result []*item.Star
	for _, each := range s.items {
		if star, ok := each.(*item.Star); ok {
			if _, qualified := star.Owner(); qualified {
				result = append(result, star)
			}
		}
	}
	return result
}

//FindStarItem returns the qualified star item whose owner denotes the same
//table as tableNameOrAlias
func (s *SelectStatement) FindStarItem(tableNameOrAlias string) (*item.Star, bool) {
	if s.tables == nil {
		return nil, false
	}
	target, ok := s.tables.Find(tableNameOrAlias)
	if !ok {
		return nil, false
	}
	for _, each := range s.QualifiedStarItems() {
		owner, _ := each.Owner()
		candidate, ok := s.tables.Find(owner)
		if ok && strings.EqualFold(candidate.Name, target.Name) {
			return each, true
		}
	}
	return nil, false
}

//DistinctItem returns the first distinct row marker; parsers emit at most
//one, later duplicates are ignored rather than rejected here.
func (s *SelectStatement) DistinctItem() (*item.Distinct, bool) {
	for _, each := range s.items {
		if distinct, ok := each.(*item.Distinct); ok {
			return distinct, true
		}
	}
	return nil, false
}

//IsSameGroupByAndOrderByItems checks whether a non empty group by sequence
//matches the order by sequence element-wise, a signal the merge can reuse
//one sorted pass for both.
func (s *SelectStatement) IsSameGroupByAndOrderByItems() bool {
	if len(s.groupByItems) == 0 || len(s.groupByItems) != len(s.orderByItems) {
		return false
	}
	for i := range s.groupByItems {
		if !orderby.Equal(s.groupByItems[i], s.orderByItems[i]) {
			return false
		}
	}
	return true
}

//SetParent links this statement to its enclosing statement
func (s *SelectStatement) SetParent(parent Handle) {
	s.parent = parent
}

//Parent returns the enclosing statement handle, NilHandle at the root
func (s *SelectStatement) Parent() Handle {
	return s.parent
}

//SetSubquery links this statement to its correlated subquery
func (s *SelectStatement) SetSubquery(subquery Handle) {
	s.subquery = subquery
}

//Subquery returns the correlated subquery handle if linked
func (s *SelectStatement) Subquery() Handle {
	return s.subquery
}

//AddSubqueryCondition records a condition lifted out of the subquery
func (s *SelectStatement) AddSubqueryCondition(cond condition.Condition) {
	s.subqueryConditions = append(s.subqueryConditions, cond)
}

//SubqueryConditions returns conditions lifted out of the subquery
func (s *SelectStatement) SubqueryConditions() []condition.Condition {
	return s.subqueryConditions
}
