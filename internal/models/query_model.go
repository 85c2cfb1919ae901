package models

import "github.com/google/uuid"

type QueryResult struct {
	ExecutionID   uuid.UUID       `json:"execution_id"`
	Query         string          `json:"query"`
	Columns       []string        `json:"columns"`
	Rows          [][]interface{} `json:"rows"`
	RowCount      int             `json:"row_count"`
	Truncated     bool            `json:"truncated,omitempty"`
	ExecutionTime int64           `json:"execution_time_ms"`
	Error         string          `json:"error,omitempty"`
}

// Value returns the cell at row i under the first column named col, or nil.
func (r *QueryResult) Value(i int, col string) interface{} {
	if i < 0 || i >= len(r.Rows) {
		return nil
	}
	for j, name := range r.Columns {
		if name == col && j < len(r.Rows[i]) {
			return r.Rows[i][j]
		}
	}
	return nil
}

func (r *QueryResult) Prepare() {
	if r.ExecutionID == uuid.Nil {
		r.ExecutionID = uuid.New()
	}
	if r.Rows == nil {
		r.Rows = [][]interface{}{}
	}
	if r.Columns == nil {
		r.Columns = []string{}
	}
	r.RowCount = len(r.Rows)
}
