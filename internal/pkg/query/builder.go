// Package query builds parameterised Spanner SELECT statements.
package query

import (
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction is an ORDER BY direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) keyword() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

// Builder is an immutable SELECT statement under construction.
// Every method returns a modified copy, so partial queries can be shared.
// Parameter names (@p0, @p1, ...) are assigned at Build time in WHERE order.
type Builder struct {
	table   string
	columns []string
	where   []Condition
	order   []sortKey
	limit   int64
	offset  int64
}

type sortKey struct {
	column    string
	direction Direction
}

// From starts a query over table.
func From(table string) *Builder {
	return &Builder{table: table}
}

// Select appends result columns or expressions. No columns selects *.
func (b *Builder) Select(columns ...string) *Builder {
	c := b.clone()
	c.columns = append(c.columns, columns...)
	return c
}

// Where adds a condition; conditions are joined with AND.
func (b *Builder) Where(cond Condition) *Builder {
	c := b.clone()
	c.where = append(c.where, cond)
	return c
}

// OrderBy appends a sort key after the existing ones.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	c := b.clone()
	c.order = append(c.order, sortKey{column: column, direction: direction})
	return c
}

// Limit caps the row count. Zero means no limit.
func (b *Builder) Limit(n int64) *Builder {
	c := b.clone()
	c.limit = n
	return c
}

// Offset skips n rows. Zero means no offset.
func (b *Builder) Offset(n int64) *Builder {
	c := b.clone()
	c.offset = n
	return c
}

// Build renders the statement.
func (b *Builder) Build() spanner.Statement {
	params := make(map[string]interface{})
	parts := []string{"SELECT " + b.selectList(), "FROM " + b.table}

	if len(b.where) > 0 {
		parts = append(parts, "WHERE "+b.whereClause(params))
	}
	if len(b.order) > 0 {
		keys := make([]string, len(b.order))
		for i, k := range b.order {
			keys[i] = k.column + " " + k.direction.keyword()
		}
		parts = append(parts, "ORDER BY "+strings.Join(keys, ", "))
	}
	if b.limit > 0 {
		parts = append(parts, "LIMIT @limit")
		params["limit"] = b.limit
	}
	if b.offset > 0 {
		parts = append(parts, "OFFSET @offset")
		params["offset"] = b.offset
	}

	return spanner.Statement{SQL: strings.Join(parts, " "), Params: params}
}

func (b *Builder) selectList() string {
	if len(b.columns) == 0 {
		return "*"
	}
	return strings.Join(b.columns, ", ")
}

func (b *Builder) whereClause(params map[string]interface{}) string {
	fragments := make([]string, 0, len(b.where))
	next := 0
	for _, cond := range b.where {
		fragment, condParams := cond.SQL(next)
		for name, v := range condParams {
			params[name] = v
		}
		next += len(condParams)
		fragments = append(fragments, fragment)
	}
	return strings.Join(fragments, " AND ")
}

func (b *Builder) clone() *Builder {
	c := *b
	c.columns = append([]string(nil), b.columns...)
	c.where = append([]Condition(nil), b.where...)
	c.order = append([]sortKey(nil), b.order...)
	return &c
}
