package dto

// WinnerEntry is one element of the winner batch posted for a jam.
type WinnerEntry struct {
	UserID     int64 `json:"user_id" binding:"required"`
	FirstPlace bool  `json:"first_place"`
}

type WinnerResp struct {
	JamID      int   `json:"jam_id"`
	UserID     int64 `json:"user_id"`
	FirstPlace bool  `json:"first_place"`
}
