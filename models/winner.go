package models

// Winner marks a user as a top-ten finisher of a jam. The composite
// primary key backs the duplicate-winner pre-check, so a race between two
// winner batches fails at commit instead of double-recording.
type Winner struct {
	JamID      int   `gorm:"primaryKey;autoIncrement:false" json:"jam_id"`
	UserID     int64 `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	FirstPlace bool  `gorm:"not null" json:"first_place"`
}

func (Winner) TableName() string {
	return "winners"
}
