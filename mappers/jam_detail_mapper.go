package mappers

import (
	"jamapi/dto"
	"jamapi/models"
)

func MapJamDetailToResp(d models.JamSpecificDetail) dto.JamDetailResp {
	return dto.JamDetailResp{
		UserID:                  d.UserID,
		JamID:                   d.JamID,
		ExperienceLevelGit:      string(d.ExperienceLevelGit),
		ExperienceLevelLanguage: string(d.ExperienceLevelLanguage),
		TimeZone:                d.TimeZone,
		WillingToLead:           d.WillingToLead,
	}
}
