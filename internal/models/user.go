package models

// User exists to satisfy the generic storage contract; nothing in the
// survey flow reads it.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"password" gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}

// InsertUser carries the caller-supplied fields of a new user.
type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
