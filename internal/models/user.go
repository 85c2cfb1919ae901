package models

// User matches the users practice table.
type User struct {
	ID    int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"type:text;not null" json:"name"`
	Email *string `gorm:"type:text" json:"email,omitempty"`
	City  *string `gorm:"type:text" json:"city,omitempty"`
}

func (User) TableName() string {
	return "users"
}
