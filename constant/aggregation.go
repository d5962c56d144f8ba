package constant

import "strings"

//AggregationType represents aggregation function kind
type AggregationType string

const (
	//Max represents MAX aggregation
	Max = AggregationType("MAX")
	//Min represents MIN aggregation
	Min = AggregationType("MIN")
	//Sum represents SUM aggregation
	Sum = AggregationType("SUM")
	//Count represents COUNT aggregation
	Count = AggregationType("COUNT")
	//Avg represents AVG aggregation, recomputed from derived SUM and COUNT on merge
	Avg = AggregationType("AVG")
)

//ParseAggregationType matches name to an aggregation type
func ParseAggregationType(name string) (AggregationType, bool) {
	switch AggregationType(strings.ToUpper(name)) {
	case Max:
		return Max, true
	case Min:
		return Min, true
	case Sum:
		return Sum, true
	case Count:
		return Count, true
	case Avg:
		return Avg, true
	}
	return "", false
}
