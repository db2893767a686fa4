package dto

type CreateInfractionReq struct {
	UserID         int64  `json:"user_id" binding:"required"`
	JamID          int    `json:"jam_id" binding:"required"`
	InfractionType string `json:"infraction_type" binding:"required"`
	Reason         string `json:"reason" binding:"required"`
}

type InfractionResp struct {
	ID             int    `json:"id"`
	UserID         int64  `json:"user_id"`
	JamID          int    `json:"jam_id"`
	InfractionType string `json:"infraction_type"`
	Reason         string `json:"reason"`
}
