package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jamapi/dto"
	"jamapi/mappers"
	"jamapi/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// List returns every user together with their full participation
// history. This fans out per membership and is deliberately correct over
// fast; the user table is small.
func (s *UserService) List(ctx context.Context) ([]dto.UserResp, error) {
	var resps []dto.UserResp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var users []models.User
		if err := tx.Order("id").Find(&users).Error; err != nil {
			return internalf(err, "listing users")
		}
		resps = make([]dto.UserResp, 0, len(users))
		for _, user := range users {
			history, err := loadUserHistory(tx, user.ID)
			if err != nil {
				return err
			}
			resps = append(resps, mappers.MapUserToResp(user, history))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resps, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*dto.UserResp, error) {
	var resp *dto.UserResp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		resp, err = loadUserView(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Create registers a user under the caller-supplied snowflake id.
func (s *UserService) Create(ctx context.Context, id int64) (*dto.UserResp, error) {
	var resp *dto.UserResp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return internalf(err, "checking user existence")
		}
		if count > 0 {
			return Conflictf("User with specified ID already exists.")
		}
		user := models.User{ID: id}
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return Conflictf("User with specified ID already exists.")
			}
			return internalf(err, "creating user")
		}
		resp = &dto.UserResp{ID: id, ParticipationHistory: []dto.ParticipationRecord{}}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// CurrentTeam returns the user's membership in the ongoing jam.
func (s *UserService) CurrentTeam(ctx context.Context, userID int64) (*dto.CurrentTeamResp, error) {
	var resp dto.CurrentTeamResp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.User{}, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("User with specified ID could not be found.")
			}
			return internalf(err, "loading user")
		}

		jam, err := findOngoingJam(tx)
		if err != nil {
			return err
		}

		var team models.Team
		err = tx.
			Joins("JOIN team_has_user ON team_has_user.team_id = teams.id").
			Where("team_has_user.user_id = ? AND teams.jam_id = ?", userID, jam.ID).
			First(&team).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("User with specified ID isn't participating in the ongoing codejam.")
			}
			return internalf(err, "loading current team")
		}

		var member models.TeamMember
		if err := tx.First(&member, "team_id = ? AND user_id = ?", team.ID, userID).Error; err != nil {
			return internalf(err, "loading membership")
		}

		teamView, err := buildTeamView(tx, team)
		if err != nil {
			return err
		}
		resp = dto.CurrentTeamResp{UserID: userID, Team: teamView, IsLeader: member.IsLeader}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *UserService) GetDetail(ctx context.Context, userID int64, jamID int) (*dto.JamDetailResp, error) {
	var resp dto.JamDetailResp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var detail models.JamSpecificDetail
		if err := tx.First(&detail, "user_id = ? AND jam_id = ?", userID, jamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("No jam specific details found for this user and jam.")
			}
			return internalf(err, "loading jam specific details")
		}
		resp = mappers.MapJamDetailToResp(detail)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpsertDetail creates or replaces the per-jam form answers of a user.
func (s *UserService) UpsertDetail(ctx context.Context, userID int64, jamID int, req dto.UpsertJamDetailReq) (*dto.JamDetailResp, error) {
	git := models.ExperienceLevel(req.ExperienceLevelGit)
	language := models.ExperienceLevel(req.ExperienceLevelLanguage)
	if !git.Valid() || !language.Valid() {
		return nil, Unprocessablef("Experience levels must be one of: beginner, decent, experienced, very_experienced.")
	}

	var resp dto.JamDetailResp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.User{}, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("User with specified ID could not be found.")
			}
			return internalf(err, "loading user")
		}
		if err := tx.First(&models.Jam{}, "id = ?", jamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("Jam with specified ID could not be found.")
			}
			return internalf(err, "loading jam")
		}

		detail := models.JamSpecificDetail{
			UserID:                  userID,
			JamID:                   jamID,
			ExperienceLevelGit:      git,
			ExperienceLevelLanguage: language,
			TimeZone:                req.TimeZone,
			WillingToLead:           req.WillingToLead,
		}

		var existing models.JamSpecificDetail
		err := tx.First(&existing, "user_id = ? AND jam_id = ?", userID, jamID).Error
		switch {
		case err == nil:
			detail.ID = existing.ID
			if err := tx.Model(&existing).Updates(map[string]any{
				"experience_level_git":      git,
				"experience_level_language": language,
				"time_zone":                 req.TimeZone,
				"willing_to_lead":           req.WillingToLead,
			}).Error; err != nil {
				return internalf(err, "updating jam specific details")
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&detail).Error; err != nil {
				return internalf(err, "creating jam specific details")
			}
		default:
			return internalf(err, "loading jam specific details")
		}

		resp = mappers.MapJamDetailToResp(detail)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
