package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jamapi/dto"
	"jamapi/mappers"
	"jamapi/models"
)

type InfractionService struct {
	db *gorm.DB
}

func NewInfractionService(db *gorm.DB) *InfractionService {
	return &InfractionService{db: db}
}

func (s *InfractionService) List(ctx context.Context) ([]dto.InfractionResp, error) {
	var resps []dto.InfractionResp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var infractions []models.Infraction
		if err := tx.Order("id").Find(&infractions).Error; err != nil {
			return internalf(err, "listing infractions")
		}
		resps = make([]dto.InfractionResp, 0, len(infractions))
		for _, inf := range infractions {
			resps = append(resps, mappers.MapInfractionToResp(inf))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resps, nil
}

func (s *InfractionService) Get(ctx context.Context, id int) (*dto.InfractionResp, error) {
	var resp dto.InfractionResp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inf models.Infraction
		if err := tx.First(&inf, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("Infraction with specified ID could not be found.")
			}
			return internalf(err, "loading infraction")
		}
		resp = mappers.MapInfractionToResp(inf)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Create records an infraction after verifying both referenced entities
// exist. Infractions are immutable; there is no update path.
func (s *InfractionService) Create(ctx context.Context, req dto.CreateInfractionReq) (*dto.InfractionResp, error) {
	infractionType := models.InfractionType(req.InfractionType)
	if !infractionType.Valid() {
		return nil, Unprocessablef("Infraction type must be one of: note, ban, warning.")
	}

	var resp dto.InfractionResp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Jam{}, "id = ?", req.JamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("Jam with specified ID could not be found.")
			}
			return internalf(err, "loading jam")
		}
		if err := tx.First(&models.User{}, "id = ?", req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("User with specified ID could not be found.")
			}
			return internalf(err, "loading user")
		}

		inf := models.Infraction{
			UserID:         req.UserID,
			JamID:          req.JamID,
			InfractionType: infractionType,
			Reason:         req.Reason,
		}
		if err := tx.Create(&inf).Error; err != nil {
			return internalf(err, "creating infraction")
		}
		resp = mappers.MapInfractionToResp(inf)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
