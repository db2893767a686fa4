package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jamapi/dto"
	"jamapi/mappers"
	"jamapi/models"
)

type WinnerService struct {
	db *gorm.DB
}

func NewWinnerService(db *gorm.DB) *WinnerService {
	return &WinnerService{db: db}
}

func (s *WinnerService) Get(ctx context.Context, jamID int) ([]dto.WinnerResp, error) {
	var resps []dto.WinnerResp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := findJam(tx, jamID); err != nil {
			return err
		}
		var winners []models.Winner
		if err := tx.Where("jam_id = ?", jamID).Order("user_id").Find(&winners).Error; err != nil {
			return internalf(err, "listing winners")
		}
		resps = make([]dto.WinnerResp, 0, len(winners))
		for _, w := range winners {
			resps = append(resps, mappers.MapWinnerToResp(w))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resps, nil
}

// Create records the winner batch for a jam as a single all-or-nothing
// insert, and stamps the winner flags on the users' teams in that jam.
func (s *WinnerService) Create(ctx context.Context, jamID int, entries []dto.WinnerEntry) ([]dto.WinnerResp, error) {
	var resps []dto.WinnerResp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Jam existence is checked first so an unknown jam is reported
		// as such even when the payload is also invalid.
		if err := findJam(tx, jamID); err != nil {
			return err
		}

		if len(entries) == 0 {
			return Unprocessablef("Winners list is empty.")
		}

		ids := make([]int64, 0, len(entries))
		seen := make(map[int64]struct{}, len(entries))
		for _, entry := range entries {
			if _, dup := seen[entry.UserID]; dup {
				return Unprocessablef("The provided users contain one or more duplicates.")
			}
			seen[entry.UserID] = struct{}{}
			ids = append(ids, entry.UserID)
		}

		var userCount int64
		if err := tx.Model(&models.User{}).Where("id IN ?", ids).Count(&userCount).Error; err != nil {
			return internalf(err, "checking winner users")
		}
		if userCount != int64(len(ids)) {
			return NotFoundf("Some users could not be found in the database.")
		}

		var existing int64
		if err := tx.Model(&models.Winner{}).Where("jam_id = ? AND user_id IN ?", jamID, ids).Count(&existing).Error; err != nil {
			return internalf(err, "checking existing winners")
		}
		if existing > 0 {
			return Conflictf("Some winners already exist in the database.")
		}

		resps = make([]dto.WinnerResp, 0, len(entries))
		for _, entry := range entries {
			winner := models.Winner{JamID: jamID, UserID: entry.UserID, FirstPlace: entry.FirstPlace}
			if err := tx.Create(&winner).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return Conflictf("Some winners already exist in the database.")
				}
				return internalf(err, "creating winner")
			}

			// The flags only ever go up: a team with any winner is a
			// winning team, and a team with any first-place winner keeps
			// that stamp no matter how many teammates follow in the batch.
			memberTeams := tx.Model(&models.TeamMember{}).Select("team_id").Where("user_id = ?", entry.UserID)
			err := tx.Model(&models.Team{}).
				Where("jam_id = ? AND id IN (?)", jamID, memberTeams).
				Update("winner", true).Error
			if err != nil {
				return internalf(err, "stamping team winner flag")
			}
			if entry.FirstPlace {
				err := tx.Model(&models.Team{}).
					Where("jam_id = ? AND id IN (?)", jamID, memberTeams).
					Update("first_place_winner", true).Error
				if err != nil {
					return internalf(err, "stamping team first place flag")
				}
			}

			resps = append(resps, mappers.MapWinnerToResp(winner))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resps, nil
}

func findJam(tx *gorm.DB, id int) error {
	if err := tx.First(&models.Jam{}, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFoundf("Jam with specified ID could not be found.")
		}
		return internalf(err, "loading jam")
	}
	return nil
}
