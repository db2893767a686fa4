package mappers

import (
	"jamapi/dto"
	"jamapi/models"
)

// MapParticipation builds one history record from a membership and the
// winner/infraction rows already filtered down to that user and jam.
func MapParticipation(member models.TeamMember, team models.Team, winner *models.Winner, infractions []models.Infraction) dto.ParticipationRecord {
	rec := dto.ParticipationRecord{
		JamID:       team.JamID,
		TeamID:      team.ID,
		IsLeader:    member.IsLeader,
		Infractions: make([]dto.InfractionResp, 0, len(infractions)),
	}
	if winner != nil {
		rec.Top10 = true
		rec.FirstPlace = winner.FirstPlace
	}
	for _, inf := range infractions {
		rec.Infractions = append(rec.Infractions, MapInfractionToResp(inf))
	}
	return rec
}

func MapUserToResp(user models.User, history []dto.ParticipationRecord) dto.UserResp {
	return dto.UserResp{
		ID:                   user.ID,
		ParticipationHistory: history,
	}
}
