package services

import (
	"errors"

	"gorm.io/gorm"

	"jamapi/dto"
	"jamapi/mappers"
	"jamapi/models"
)

// The functions here re-read normalized rows into the nested response
// views. They run inside the caller's transaction so a mutation and the
// view returned for it come from the same snapshot.

func buildTeamView(tx *gorm.DB, team models.Team) (dto.TeamResp, error) {
	var members []models.TeamMember
	if err := tx.Where("team_id = ?", team.ID).Order("user_id").Find(&members).Error; err != nil {
		return dto.TeamResp{}, internalf(err, "loading team members")
	}
	return mappers.MapTeamToResp(team, members), nil
}

func buildJamView(tx *gorm.DB, jam models.Jam) (*dto.JamResp, error) {
	// Teams in insertion order.
	var teams []models.Team
	if err := tx.Where("jam_id = ?", jam.ID).Order("id").Find(&teams).Error; err != nil {
		return nil, internalf(err, "loading jam teams")
	}

	teamViews := make([]dto.TeamResp, 0, len(teams))
	for _, team := range teams {
		view, err := buildTeamView(tx, team)
		if err != nil {
			return nil, err
		}
		teamViews = append(teamViews, view)
	}

	var infractions []models.Infraction
	if err := tx.Where("jam_id = ?", jam.ID).Order("id").Find(&infractions).Error; err != nil {
		return nil, internalf(err, "loading jam infractions")
	}

	var winners []models.Winner
	if err := tx.Where("jam_id = ?", jam.ID).Order("user_id").Find(&winners).Error; err != nil {
		return nil, internalf(err, "loading jam winners")
	}

	resp := mappers.MapJamToResp(jam, teamViews, infractions, winners)
	return &resp, nil
}

func loadJamView(tx *gorm.DB, jamID int) (*dto.JamResp, error) {
	var jam models.Jam
	if err := tx.First(&jam, "id = ?", jamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("CodeJam with specified ID could not be found.")
		}
		return nil, internalf(err, "loading jam")
	}
	return buildJamView(tx, jam)
}

// loadUserHistory walks every membership the user has ever had and joins
// it against the owning team, that jam's winner record for the user, and
// the infractions issued to the user within that jam.
func loadUserHistory(tx *gorm.DB, userID int64) ([]dto.ParticipationRecord, error) {
	var members []models.TeamMember
	if err := tx.Where("user_id = ?", userID).Order("team_id").Find(&members).Error; err != nil {
		return nil, internalf(err, "loading user memberships")
	}

	history := make([]dto.ParticipationRecord, 0, len(members))
	for _, member := range members {
		var team models.Team
		if err := tx.First(&team, "id = ?", member.TeamID).Error; err != nil {
			return nil, internalf(err, "loading membership team")
		}

		var winner *models.Winner
		var row models.Winner
		err := tx.First(&row, "jam_id = ? AND user_id = ?", team.JamID, userID).Error
		switch {
		case err == nil:
			winner = &row
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, internalf(err, "loading winner record")
		}

		var infractions []models.Infraction
		if err := tx.Where("jam_id = ? AND user_id = ?", team.JamID, userID).Order("id").Find(&infractions).Error; err != nil {
			return nil, internalf(err, "loading user infractions")
		}

		history = append(history, mappers.MapParticipation(member, team, winner, infractions))
	}
	return history, nil
}

func loadUserView(tx *gorm.DB, userID int64) (*dto.UserResp, error) {
	var user models.User
	if err := tx.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("User with specified ID could not be found.")
		}
		return nil, internalf(err, "loading user")
	}
	history, err := loadUserHistory(tx, userID)
	if err != nil {
		return nil, err
	}
	resp := mappers.MapUserToResp(user, history)
	return &resp, nil
}

func findOngoingJam(tx *gorm.DB) (*models.Jam, error) {
	var jam models.Jam
	if err := tx.First(&jam, "ongoing = ?", true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("There is no ongoing codejam.")
		}
		return nil, internalf(err, "loading ongoing jam")
	}
	return &jam, nil
}
