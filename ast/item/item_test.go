package item

import (
	"testing"

	"github.com/KevinQian/incubator-shardingsphere/constant"
	"github.com/stretchr/testify/assert"
)

func TestAggregation_ColumnLabel(t *testing.T) {
	var testCases = []struct {
		description string
		item        *Aggregation
		expect      string
	}{
		{
			description: "alias wins",
			item:        NewAggregation(constant.Count, "(order_id)", "cnt"),
			expect:      "cnt",
		},
		{
			description: "expression fallback",
			item:        NewAggregation(constant.Sum, "(price)", ""),
			expect:      "SUM(price)",
		},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, testCase.item.ColumnLabel(), testCase.description)
	}
}

func TestAggregation_Expression(t *testing.T) {
	aggregation := NewAggregation(constant.Avg, "(price)", "avgp")
	assert.Equal(t, "AVG(price)", aggregation.Expression())
	_, resolved := aggregation.ResolvedIndex()
	assert.False(t, resolved)
	aggregation.SetResolvedIndex(2)
	index, resolved := aggregation.ResolvedIndex()
	assert.True(t, resolved)
	assert.Equal(t, 2, index)
}

func TestDeriveAvg(t *testing.T) {
	avg := NewAggregation(constant.Avg, "(price)", "avgp")
	sum, count := DeriveAvg(avg, 0)
	if !assert.NotNil(t, sum) || !assert.NotNil(t, count) {
		return
	}
	assert.Equal(t, "AVG_DERIVED_SUM_0", sum.ColumnLabel())
	assert.Equal(t, "AVG_DERIVED_COUNT_0", count.ColumnLabel())
	assert.Equal(t, "SUM(price)", sum.Expression())
	assert.Equal(t, "COUNT(price)", count.Expression())
	assert.Equal(t, []*Aggregation{sum, count}, avg.Derived())
}

func TestDeriveAvg_NonAvg(t *testing.T) {
	sum, count := DeriveAvg(NewAggregation(constant.Max, "(price)", ""), 0)
	assert.Nil(t, sum)
	assert.Nil(t, count)
}

func TestDistinct_Expression(t *testing.T) {
	distinct := NewDistinct([]string{"user_id", "order_id"}, "")
	assert.Equal(t, "DISTINCT user_id, order_id", distinct.Expression())
	_, ok := distinct.Alias()
	assert.False(t, ok)
}

func TestStar_Expression(t *testing.T) {
	unqualified := NewStar("")
	assert.Equal(t, "*", unqualified.Expression())
	_, ok := unqualified.Owner()
	assert.False(t, ok)

	qualified := NewStar("o")
	assert.Equal(t, "o.*", qualified.Expression())
	owner, ok := qualified.Owner()
	assert.True(t, ok)
	assert.Equal(t, "o", owner)
}

func TestAggregationDistinct(t *testing.T) {
	aggregation := NewAggregationDistinct(constant.Count, "(DISTINCT user_id)", "cnt", "user_id")
	assert.Equal(t, "COUNT(DISTINCT user_id)", aggregation.Expression())
	assert.Equal(t, "user_id", aggregation.DistinctExpression())
	assert.Equal(t, "cnt", aggregation.ColumnLabel())
}
