package mappers

import (
	"jamapi/dto"
	"jamapi/models"
)

func MapWinnerToResp(w models.Winner) dto.WinnerResp {
	return dto.WinnerResp{
		JamID:      w.JamID,
		UserID:     w.UserID,
		FirstPlace: w.FirstPlace,
	}
}
