package models

// TeamMember records that a user belongs to a team. The composite primary
// key keeps a user from appearing on the same team twice.
type TeamMember struct {
	TeamID   int   `gorm:"primaryKey;autoIncrement:false" json:"team_id"`
	UserID   int64 `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	IsLeader bool  `gorm:"not null" json:"is_leader"`
}

func (TeamMember) TableName() string {
	return "team_has_user"
}
