package models

// Jam is a single code jam event.
//
// The partial unique index on Ongoing admits at most one row with
// ongoing = true, so the "only one ongoing jam" rule holds even when two
// transactions race on the demote-then-promote sequence: the second
// commit fails the index instead of leaving two ongoing jams behind.
type Jam struct {
	ID      int    `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Ongoing bool   `gorm:"not null;default:false;uniqueIndex:jams_one_ongoing_unique,where:ongoing" json:"ongoing"`

	Teams []Team `gorm:"foreignKey:JamID" json:"-"`
}

func (Jam) TableName() string {
	return "jams"
}
