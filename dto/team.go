package dto

type TeamUserResp struct {
	UserID   int64 `json:"user_id"`
	IsLeader bool  `json:"is_leader"`
}

type TeamResp struct {
	ID               int            `json:"id"`
	JamID            int            `json:"jam_id"`
	Name             string         `json:"name"`
	Users            []TeamUserResp `json:"users"`
	DiscordRoleID    *int64         `json:"discord_role_id"`
	DiscordChannelID *int64         `json:"discord_channel_id"`
}
