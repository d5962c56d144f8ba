package item

import (
	"fmt"

	"github.com/KevinQian/incubator-shardingsphere/constant"
)

const (
	derivedSumAlias   = "AVG_DERIVED_SUM_%d"
	derivedCountAlias = "AVG_DERIVED_COUNT_%d"
)

//DeriveAvg attaches SUM and COUNT sub aggregations to an AVG item so a
//shard merge can recompute the average from partial results. The sequence
//distinguishes labels when a statement projects multiple averages. Items
//of any other aggregation type are left unchanged.
func DeriveAvg(avg *Aggregation, sequence int) (sum, count *Aggregation) {
	if avg == nil || avg.Type() != constant.Avg {
		return nil, nil
	}
	sum = NewAggregation(constant.Sum, avg.InnerExpression(), fmt.Sprintf(derivedSumAlias, sequence))
	count = NewAggregation(constant.Count, avg.InnerExpression(), fmt.Sprintf(derivedCountAlias, sequence))
	avg.AppendDerived(sum, count)
	return sum, count
}
