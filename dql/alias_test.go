package dql

import (
	"testing"

	"github.com/KevinQian/incubator-shardingsphere/ast/item"
	"github.com/KevinQian/incubator-shardingsphere/constant"
	"github.com/stretchr/testify/assert"
)

func TestSelectStatement_Alias(t *testing.T) {
	var testCases = []struct {
		description string
		items       []item.SelectItem
		name        string
		expect      string
		present     bool
	}{
		{
			description: "expression match returns declared alias",
			items: []item.SelectItem{
				item.NewColumn("user_id", "uid"),
			},
			name:    "user_id",
			expect:  "uid",
			present: true,
		},
		{
			description: "expression match case insensitive",
			items: []item.SelectItem{
				item.NewAggregation(constant.Count, "(order_id)", "cnt"),
			},
			name:    "count( ORDER_ID )",
			expect:  "cnt",
			present: true,
		},
		{
			description: "expression match without declared alias is absent",
			items: []item.SelectItem{
				item.NewColumn("user_id", ""),
			},
			name:    "user_id",
			present: false,
		},
		{
			description: "direct alias match returns input",
			items: []item.SelectItem{
				item.NewColumn("user_id", "uid"),
			},
			name:    "uid",
			expect:  "uid",
			present: true,
		},
		{
			description: "quoted input normalized",
			items: []item.SelectItem{
				item.NewColumn("user_id", "uid"),
			},
			name:    "`uid`",
			expect:  "uid",
			present: true,
		},
		{
			description: "unqualified star makes resolution undefined",
			items: []item.SelectItem{
				item.NewStar(""),
				item.NewColumn("user_id", "uid"),
			},
			name:    "user_id",
			present: false,
		},
		{
			description: "qualified star does not block resolution",
			items: []item.SelectItem{
				item.NewStar("o"),
				item.NewColumn("user_id", "uid"),
			},
			name:    "user_id",
			expect:  "uid",
			present: true,
		},
		{
			description: "first match in declaration order wins",
			items: []item.SelectItem{
				item.NewColumn("user_id", "first"),
				item.NewColumn("user_id", "second"),
			},
			name:    "user_id",
			expect:  "first",
			present: true,
		},
		{
			description: "no match",
			items: []item.SelectItem{
				item.NewColumn("user_id", "uid"),
			},
			name:    "order_id",
			present: false,
		},
	}

	for _, testCase := range testCases {
		statement := NewSelectStatement(nil)
		for _, each := range testCase.items {
			statement.AddItem(each)
		}
		actual, present := statement.Alias(testCase.name)
		assert.Equal(t, testCase.present, present, testCase.description)
		if testCase.present {
			assert.Equal(t, testCase.expect, actual, testCase.description)
		}
	}
}
