package dql

import (
	"github.com/KevinQian/incubator-shardingsphere/ast/item"
)

//AggregationItems returns aggregation items in declaration order, each
//immediately followed by its derived sub aggregations. The merge engine
//relies on this parent-before-derived order to recompute composites.
func (s *SelectStatement) AggregationItems() []*item.Aggregation {
	var result []*item.Aggregation
	for _, each := range s.items {
		switch actual := each.(type) {
		case *item.Aggregation:
			result = append(result, actual)
			result = append(result, actual.Derived()...)
		case *item.AggregationDistinct:
			result = append(result, &actual.Aggregation)
			result = append(result, actual.Derived()...)
		}
	}
	return result
}

//AggregationDistinctItems returns distinct aggregation items in declaration order
func (s *SelectStatement) AggregationDistinctItems() []*item.AggregationDistinct {
	var result []*item.AggregationDistinct
	for _, each := range s.items {
		if distinct, ok := each.(*item.AggregationDistinct); ok {
			result = append(result, distinct)
		}
	}
	return result
}
