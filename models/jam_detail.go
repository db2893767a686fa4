package models

type ExperienceLevel string

const (
	ExperienceBeginner        ExperienceLevel = "beginner"
	ExperienceDecent          ExperienceLevel = "decent"
	ExperienceExperienced     ExperienceLevel = "experienced"
	ExperienceVeryExperienced ExperienceLevel = "very_experienced"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case ExperienceBeginner, ExperienceDecent, ExperienceExperienced, ExperienceVeryExperienced:
		return true
	}
	return false
}

// JamSpecificDetail holds the form answers a user submits for one jam:
// experience levels, timezone and whether they are willing to lead a
// team. One row per (user, jam).
type JamSpecificDetail struct {
	ID                      int             `gorm:"primaryKey" json:"id"`
	UserID                  int64           `gorm:"not null;uniqueIndex:jam_detail_user_jam_unique,priority:1" json:"user_id"`
	JamID                   int             `gorm:"not null;uniqueIndex:jam_detail_user_jam_unique,priority:2" json:"jam_id"`
	ExperienceLevelGit      ExperienceLevel `gorm:"type:varchar(32);not null" json:"experience_level_git"`
	ExperienceLevelLanguage ExperienceLevel `gorm:"type:varchar(32);not null" json:"experience_level_language"`
	TimeZone                string          `gorm:"not null" json:"time_zone"`
	WillingToLead           bool            `gorm:"not null" json:"willing_to_lead"`
}

func (JamSpecificDetail) TableName() string {
	return "jam_specific_details"
}
