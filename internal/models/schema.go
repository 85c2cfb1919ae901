package models

// ColumnInfo is one row of PRAGMA table_info reduced to what the
// table info panel shows.
type ColumnInfo struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	PrimaryKey bool   `json:"primary_key,omitempty"`
}

type ForeignKey struct {
	FromColumn string `gorm:"column:from_column" json:"from_column"`
	ToTable    string `gorm:"column:to_table" json:"to_table"`
	ToColumn   string `gorm:"column:to_column" json:"to_column"`
}

type TableInfo struct {
	Name        string       `json:"name"`
	Columns     []ColumnInfo `json:"columns"`
	ForeignKeys []ForeignKey `json:"foreign_keys,omitempty"`
}
