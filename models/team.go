package models

import "strings"

// Team is a group of users participating in one jam.
//
// NameNormalized holds the case-folded name and is part of the composite
// unique index with JamID, which makes team names case-insensitively
// unique within a jam while the same name may repeat across jams.
type Team struct {
	ID             int    `gorm:"primaryKey" json:"id"`
	JamID          int    `gorm:"not null;uniqueIndex:team_name_jam_unique,priority:2" json:"jam_id"`
	Name           string `gorm:"not null" json:"name"`
	NameNormalized string `gorm:"not null;uniqueIndex:team_name_jam_unique,priority:1" json:"-"`
	LeaderID       int64  `gorm:"not null" json:"leader_id"`

	// Nullable to accommodate historic rows created before the Discord
	// handles were recorded.
	DiscordRoleID    *int64 `json:"discord_role_id"`
	DiscordChannelID *int64 `json:"discord_channel_id"`

	// Set only by the winner-recording operation.
	Winner           *bool `json:"winner"`
	FirstPlaceWinner *bool `json:"first_place_winner"`

	Members []TeamMember `gorm:"foreignKey:TeamID" json:"-"`
}

func (Team) TableName() string {
	return "teams"
}

// NormalizeTeamName folds a team name for the uniqueness check.
func NormalizeTeamName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
