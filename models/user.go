package models

// User is a jam participant. The ID is a caller-supplied Discord
// snowflake, never generated by the database, and the row persists across
// jams to accumulate a participation history.
type User struct {
	ID int64 `gorm:"primaryKey;autoIncrement:false" json:"id"`
}

func (User) TableName() string {
	return "users"
}
