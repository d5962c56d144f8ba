package item

import (
	"github.com/KevinQian/incubator-shardingsphere/constant"
)

//AggregationDistinct represents an aggregation over distinct values,
//i.e. COUNT(DISTINCT user_id).
type AggregationDistinct struct {
	Aggregation
	distinctExpression string
}

//NewAggregationDistinct creates an unresolved distinct aggregation item
func NewAggregationDistinct(aggregationType constant.AggregationType, innerExpression, alias, distinctExpression string) *AggregationDistinct {
	return &AggregationDistinct{
		Aggregation:        *NewAggregation(aggregationType, innerExpression, alias),
		distinctExpression: distinctExpression,
	}
}

//DistinctExpression returns the distinct qualifying expression
func (a *AggregationDistinct) DistinctExpression() string {
	return a.distinctExpression
}
