package dto

// ========== Request DTOs ==========

type CreateJamUser struct {
	UserID   int64 `json:"user_id" binding:"required"`
	IsLeader bool  `json:"is_leader"`
}

type CreateJamTeam struct {
	Name             string          `json:"name" binding:"required"`
	Users            []CreateJamUser `json:"users" binding:"required,dive"`
	DiscordRoleID    *int64          `json:"discord_role_id"`
	DiscordChannelID *int64          `json:"discord_channel_id"`
}

type CreateJamReq struct {
	Name    string          `json:"name" binding:"required"`
	Ongoing bool            `json:"ongoing"`
	Teams   []CreateJamTeam `json:"teams" binding:"dive"`
}

// ModifyJamReq is a partial update; nil fields are left untouched.
type ModifyJamReq struct {
	Name    *string `json:"name"`
	Ongoing *bool   `json:"ongoing"`
}

// ========== Response DTOs ==========

type JamResp struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Ongoing     bool             `json:"ongoing"`
	Teams       []TeamResp       `json:"teams"`
	Infractions []InfractionResp `json:"infractions"`
	Winners     []WinnerResp     `json:"winners"`
}
