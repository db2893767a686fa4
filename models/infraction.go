package models

type InfractionType string

const (
	InfractionNote    InfractionType = "note"
	InfractionBan     InfractionType = "ban"
	InfractionWarning InfractionType = "warning"
)

// Valid reports whether t is one of the known infraction types.
func (t InfractionType) Valid() bool {
	switch t {
	case InfractionNote, InfractionBan, InfractionWarning:
		return true
	}
	return false
}

// Infraction is a behavioral record issued to a user within a jam.
// Rows are immutable once created; there is no update operation.
type Infraction struct {
	ID             int            `gorm:"primaryKey" json:"id"`
	UserID         int64          `gorm:"not null;index" json:"user_id"`
	JamID          int            `gorm:"not null;index" json:"jam_id"`
	InfractionType InfractionType `gorm:"type:varchar(16);not null" json:"infraction_type"`
	Reason         string         `gorm:"not null" json:"reason"`
}

func (Infraction) TableName() string {
	return "infractions"
}
