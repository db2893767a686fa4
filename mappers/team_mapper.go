package mappers

import (
	"jamapi/dto"
	"jamapi/models"
)

func MapMemberToTeamUserResp(m models.TeamMember) dto.TeamUserResp {
	return dto.TeamUserResp{
		UserID:   m.UserID,
		IsLeader: m.IsLeader,
	}
}

func MapTeamToResp(team models.Team, members []models.TeamMember) dto.TeamResp {
	users := make([]dto.TeamUserResp, 0, len(members))
	for _, m := range members {
		users = append(users, MapMemberToTeamUserResp(m))
	}
	return dto.TeamResp{
		ID:               team.ID,
		JamID:            team.JamID,
		Name:             team.Name,
		Users:            users,
		DiscordRoleID:    team.DiscordRoleID,
		DiscordChannelID: team.DiscordChannelID,
	}
}
