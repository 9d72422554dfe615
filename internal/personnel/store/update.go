package store

import (
	"fmt"
	"strings"
)

// setClause accumulates "column = $n" pairs for a partial UPDATE.
type setClause struct {
	columns []string
	args    []any
}

func (s *setClause) add(column string, value any) {
	s.args = append(s.args, value)
	s.columns = append(s.columns, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

func (s *setClause) empty() bool {
	return len(s.columns) == 0
}

// build renders "UPDATE table SET ... WHERE key = $n" with the key bound last.
func (s *setClause) build(table, keyColumn string, key any) (string, []any) {
	args := append(s.args, key)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		table, strings.Join(s.columns, ", "), keyColumn, len(args))
	return query, args
}
