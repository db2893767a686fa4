package dto

// ParticipationRecord aggregates one team membership of a user: the jam
// and team it belongs to, whether the user placed in that jam, and the
// infractions issued to the user within it.
type ParticipationRecord struct {
	JamID       int              `json:"jam_id"`
	TeamID      int              `json:"team_id"`
	IsLeader    bool             `json:"is_leader"`
	Top10       bool             `json:"top_10"`
	FirstPlace  bool             `json:"first_place"`
	Infractions []InfractionResp `json:"infractions"`
}

type UserResp struct {
	ID                   int64                 `json:"id"`
	ParticipationHistory []ParticipationRecord `json:"participation_history"`
}

// CurrentTeamResp is a user's membership in the ongoing jam.
type CurrentTeamResp struct {
	UserID   int64    `json:"user_id"`
	Team     TeamResp `json:"team"`
	IsLeader bool     `json:"is_leader"`
}
