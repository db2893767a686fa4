package mappers

import (
	"jamapi/dto"
	"jamapi/models"
)

func MapJamToResp(jam models.Jam, teams []dto.TeamResp, infractions []models.Infraction, winners []models.Winner) dto.JamResp {
	infractionResps := make([]dto.InfractionResp, 0, len(infractions))
	for _, inf := range infractions {
		infractionResps = append(infractionResps, MapInfractionToResp(inf))
	}
	winnerResps := make([]dto.WinnerResp, 0, len(winners))
	for _, w := range winners {
		winnerResps = append(winnerResps, MapWinnerToResp(w))
	}
	return dto.JamResp{
		ID:          jam.ID,
		Name:        jam.Name,
		Ongoing:     jam.Ongoing,
		Teams:       teams,
		Infractions: infractionResps,
		Winners:     winnerResps,
	}
}
