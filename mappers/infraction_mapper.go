package mappers

import (
	"jamapi/dto"
	"jamapi/models"
)

func MapInfractionToResp(inf models.Infraction) dto.InfractionResp {
	return dto.InfractionResp{
		ID:             inf.ID,
		UserID:         inf.UserID,
		JamID:          inf.JamID,
		InfractionType: string(inf.InfractionType),
		Reason:         inf.Reason,
	}
}
