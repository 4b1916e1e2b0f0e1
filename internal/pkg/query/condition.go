package query

import "fmt"

// Condition renders one WHERE predicate. first is the index of the first
// parameter it may use; the returned map holds the parameters it used.
type Condition interface {
	SQL(first int) (string, map[string]interface{})
}

func param(i int) string {
	return fmt.Sprintf("p%d", i)
}

type eq struct {
	column string
	value  interface{}
}

// Eq matches column = value.
func Eq(column string, value interface{}) Condition {
	return eq{column: column, value: value}
}

func (c eq) SQL(first int) (string, map[string]interface{}) {
	name := param(first)
	return c.column + " = @" + name, map[string]interface{}{name: c.value}
}

type inUnnest struct {
	column string
	values []string
}

// InUnnest matches rows whose column is one of values.
func InUnnest(column string, values []string) Condition {
	return inUnnest{column: column, values: values}
}

func (c inUnnest) SQL(first int) (string, map[string]interface{}) {
	name := param(first)
	return c.column + " IN UNNEST(@" + name + ")", map[string]interface{}{name: c.values}
}

type inSelect struct {
	column   string
	selected string
	table    string
	where    Condition
}

// InSelect is a semi-join: column IN (SELECT selected FROM table WHERE where).
func InSelect(column, selected, table string, where Condition) Condition {
	return inSelect{column: column, selected: selected, table: table, where: where}
}

func (c inSelect) SQL(first int) (string, map[string]interface{}) {
	inner, params := c.where.SQL(first)
	return fmt.Sprintf("%s IN (SELECT %s FROM %s WHERE %s)", c.column, c.selected, c.table, inner), params
}

// JSONString selects a JSON column as its string encoding.
func JSONString(column string) string {
	return "TO_JSON_STRING(" + column + ")"
}
