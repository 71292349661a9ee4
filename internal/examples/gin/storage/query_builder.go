//go:generate mockgen -source=query_builder.go -destination=../mocks/connection.go -package=mocks
package storage

import (
	"fmt"

	"github.com/vialkit/vial/internal/examples/gin/logging"
)

// Row is a single result row keyed by column name.
type Row map[string]any

// Connection runs a query against whatever backs the store.
type Connection interface {
	Execute(query string) ([]Row, error)
}

// QueryBuilder composes select queries and runs them through an injected
// Connection. Conn and Log are the dependencies the container fills in; the
// unexported fields are query state accumulated by the fluent calls.
type QueryBuilder struct {
	Conn Connection
	Log  logging.Logger

	columns string
	table   string
}

func (qb *QueryBuilder) Select(columns string) *QueryBuilder {
	qb.columns = columns
	return qb
}

func (qb *QueryBuilder) From(table string) *QueryBuilder {
	qb.table = table
	return qb
}

// Get runs the accumulated query. The query text is logged before execution,
// and a failure is logged as a warning before being returned.
func (qb *QueryBuilder) Get() ([]Row, error) {
	query := fmt.Sprintf("select %s from %s", qb.columns, qb.table)
	qb.Log.Info(fmt.Sprintf("running query: %s", query))
	rows, err := qb.Conn.Execute(query)
	if err != nil {
		qb.Log.Warning(fmt.Sprintf("query failed: %s: %v", query, err))
		return nil, err
	}
	return rows, nil
}
