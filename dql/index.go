package dql

import (
	"fmt"

	"github.com/KevinQian/incubator-shardingsphere/ast/orderby"
	"github.com/KevinQian/incubator-shardingsphere/errx"
	"github.com/pkg/errors"
)

//SetIndexForItems assigns the physical column position to every aggregation,
//order by and group by item, given the column label to position mapping one
//shard execution revealed. Calling it again with the same mapping is a no-op
//beyond re-assigning identical positions. On a missing label the error is
//returned immediately; positions assigned earlier in the pass stay set, the
//statement must not reach the merge engine in that state.
func (s *SelectStatement) SetIndexForItems(columnLabelIndex map[string]int) error {
	if err := s.setIndexForAggregationItems(columnLabelIndex); err != nil {
		return errors.Wrap(err, "failed to set aggregation item index")
	}
	if err := s.setIndexForOrderItems(columnLabelIndex, s.orderByItems, "order by"); err != nil {
		return errors.Wrap(err, "failed to set order by item index")
	}
	if err := s.setIndexForOrderItems(columnLabelIndex, s.groupByItems, "group by"); err != nil {
		return errors.Wrap(err, "failed to set group by item index")
	}
	return nil
}

func (s *SelectStatement) setIndexForAggregationItems(columnLabelIndex map[string]int) error {
	for _, each := range s.AggregationItems() {
		index, ok := columnLabelIndex[each.ColumnLabel()]
		if !ok {
			return errx.MissingIndex("aggregation", each.ColumnLabel(), each.Expression())
		}
		each.SetResolvedIndex(index)
	}
	return nil
}

func (s *SelectStatement) setIndexForOrderItems(columnLabelIndex map[string]int, orderItems []orderby.Item, op string) error {
	for _, each := range orderItems {
		if _, resolved := each.ResolvedIndex(); resolved {
			continue
		}
		columnLabel, err := s.orderItemColumnLabel(each, op)
		if err != nil {
			return err
		}
		index, ok := columnLabelIndex[columnLabel]
		if !ok {
			return errx.MissingIndex(op, columnLabel, describeOrderItem(each))
		}
		each.SetResolvedIndex(index)
	}
	return nil
}

//orderItemColumnLabel computes the mapping lookup key: a declared alias when
//the item's qualified name or expression resolves to one, otherwise the
//item's own text - the bare column name or the raw expression.
func (s *SelectStatement) orderItemColumnLabel(orderItem orderby.Item, op string) (string, error) {
	text, err := orderItemText(orderItem, op)
	if err != nil {
		return "", err
	}
	if alias, ok := s.findOrderItemAlias(orderItem, text); ok {
		return alias, nil
	}
	return text, nil
}

func (s *SelectStatement) findOrderItemAlias(orderItem orderby.Item, text string) (string, bool) {
	if qualifiedName, ok := orderItem.QualifiedName(); ok {
		return s.Alias(qualifiedName)
	}
	if text != "" {
		return s.Alias(text)
	}
	return "", false
}

func orderItemText(orderItem orderby.Item, op string) (string, error) {
	switch actual := orderItem.(type) {
	case *orderby.IndexItem:
		return "", nil
	case *orderby.ColumnItem:
		return actual.Name(), nil
	case *orderby.ExpressionItem:
		return actual.Expression(), nil
	default:
		return "", errx.UnsupportedVariant(op, actual)
	}
}

func describeOrderItem(orderItem orderby.Item) string {
	if qualifiedName, ok := orderItem.QualifiedName(); ok {
		return qualifiedName
	}
	if expression, ok := orderItem.(*orderby.ExpressionItem); ok {
		return expression.Expression()
	}
	if index, ok := orderItem.ResolvedIndex(); ok {
		return fmt.Sprintf("position %d", index)
	}
	return fmt.Sprintf("%T", orderItem)
}
