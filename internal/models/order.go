package models

// Order matches the orders practice table. PlacedAt is kept as the
// YYYY-MM-DD text the beginner examples sort and filter on.
type Order struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64   `gorm:"not null" json:"user_id"`
	Amount    float64 `gorm:"type:real;not null" json:"amount"`
	Status    string  `gorm:"type:text;not null" json:"status"` // PAID, PENDING, CANCELLED
	PlacedAt  string  `gorm:"column:created_at;type:text;not null" json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}
