package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jamapi/dto"
	"jamapi/mappers"
	"jamapi/models"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

func (s *TeamService) List(ctx context.Context) ([]dto.TeamResp, error) {
	var resps []dto.TeamResp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var teams []models.Team
		if err := tx.Order("id").Find(&teams).Error; err != nil {
			return internalf(err, "listing teams")
		}
		resps = make([]dto.TeamResp, 0, len(teams))
		for _, team := range teams {
			view, err := buildTeamView(tx, team)
			if err != nil {
				return err
			}
			resps = append(resps, view)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resps, nil
}

func (s *TeamService) Get(ctx context.Context, id int) (*dto.TeamResp, error) {
	var resp dto.TeamResp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		team, err := findTeam(tx, id)
		if err != nil {
			return err
		}
		resp, err = buildTeamView(tx, *team)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// FindByName looks a team up by its case-folded name. With no jam id the
// search is scoped to the ongoing jam.
func (s *TeamService) FindByName(ctx context.Context, name string, jamID *int) (*dto.TeamResp, error) {
	var resp dto.TeamResp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		targetJam := 0
		if jamID != nil {
			targetJam = *jamID
		} else {
			jam, err := findOngoingJam(tx)
			if err != nil {
				return err
			}
			targetJam = jam.ID
		}

		var team models.Team
		err := tx.First(&team, "name_normalized = ? AND jam_id = ?", models.NormalizeTeamName(name), targetJam).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("Team with specified name could not be found.")
			}
			return internalf(err, "finding team by name")
		}
		resp, err = buildTeamView(tx, team)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *TeamService) Users(ctx context.Context, teamID int) ([]dto.TeamUserResp, error) {
	var resps []dto.TeamUserResp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findTeam(tx, teamID); err != nil {
			return err
		}
		var members []models.TeamMember
		if err := tx.Where("team_id = ?", teamID).Order("user_id").Find(&members).Error; err != nil {
			return internalf(err, "listing team members")
		}
		resps = make([]dto.TeamUserResp, 0, len(members))
		for _, m := range members {
			resps = append(resps, mappers.MapMemberToTeamUserResp(m))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resps, nil
}

// AddUser adds an existing user to an existing team. Adding a user that
// is already on the team is a conflict, never a silent no-op.
func (s *TeamService) AddUser(ctx context.Context, teamID int, userID int64, isLeader bool) (*dto.TeamUserResp, error) {
	var resp dto.TeamUserResp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findTeam(tx, teamID); err != nil {
			return err
		}
		if err := tx.First(&models.User{}, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("User with specified ID could not be found.")
			}
			return internalf(err, "loading user")
		}

		var count int64
		if err := tx.Model(&models.TeamMember{}).Where("team_id = ? AND user_id = ?", teamID, userID).Count(&count).Error; err != nil {
			return internalf(err, "checking existing membership")
		}
		if count > 0 {
			return Conflictf("User is already a member of this team.")
		}

		member := models.TeamMember{TeamID: teamID, UserID: userID, IsLeader: isLeader}
		if err := tx.Create(&member).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return Conflictf("User is already a member of this team.")
			}
			return internalf(err, "creating membership")
		}
		resp = mappers.MapMemberToTeamUserResp(member)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// RemoveUser deletes a membership edge. A missing edge on a valid team is
// an invalid-state error rather than not-found: the team exists, the
// relation does not.
func (s *TeamService) RemoveUser(ctx context.Context, teamID int, userID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findTeam(tx, teamID); err != nil {
			return err
		}
		res := tx.Where("team_id = ? AND user_id = ?", teamID, userID).Delete(&models.TeamMember{})
		if res.Error != nil {
			return internalf(res.Error, "deleting membership")
		}
		if res.RowsAffected == 0 {
			return InvalidStatef("User is not a member of this team.")
		}
		return nil
	})
}

func findTeam(tx *gorm.DB, id int) (*models.Team, error) {
	var team models.Team
	if err := tx.First(&team, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("Team with specified ID could not be found.")
		}
		return nil, internalf(err, "loading team")
	}
	return &team, nil
}
