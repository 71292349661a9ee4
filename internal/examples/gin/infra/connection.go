package infra

import (
	"database/sql"

	"github.com/vialkit/vial/internal/examples/gin/storage"
)

// SQLiteConnection adapts *sql.DB to the storage.Connection capability,
// returning rows as column name keyed maps.
type SQLiteConnection struct {
	DB *sql.DB
}

func (c *SQLiteConnection) Execute(query string) ([]storage.Row, error) {
	rows, err := c.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var result []storage.Row
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(storage.Row, len(columns))
		for i, column := range columns {
			row[column] = values[i]
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
