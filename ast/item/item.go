// Package item models the projected items of a select statement. The variant
// set is closed: Column, Star, Aggregation, AggregationDistinct and Distinct;
// resolution routines reject anything else with errx.ErrUnsupportedVariant.
package item

//SelectItem represents one projected item of a select statement
type SelectItem interface {
	//Expression returns display expression text
	Expression() string
	//Alias returns declared alias if present
	Alias() (string, bool)

	selectItem()
}
