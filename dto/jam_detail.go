package dto

type UpsertJamDetailReq struct {
	ExperienceLevelGit      string `json:"experience_level_git" binding:"required"`
	ExperienceLevelLanguage string `json:"experience_level_language" binding:"required"`
	TimeZone                string `json:"time_zone" binding:"required"`
	WillingToLead           bool   `json:"willing_to_lead"`
}

type JamDetailResp struct {
	UserID                  int64  `json:"user_id"`
	JamID                   int    `json:"jam_id"`
	ExperienceLevelGit      string `json:"experience_level_git"`
	ExperienceLevelLanguage string `json:"experience_level_language"`
	TimeZone                string `json:"time_zone"`
	WillingToLead           bool   `json:"willing_to_lead"`
}
