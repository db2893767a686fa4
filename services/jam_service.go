package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jamapi/dto"
	"jamapi/models"
)

const (
	ongoingJamCacheKey = "codejam:ongoing_id"
	ongoingJamCacheTTL = time.Hour
)

// JamService implements the jam lifecycle operations. The redis client is
// optional; when present it caches the ongoing jam id, with the database
// always remaining the source of truth.
type JamService struct {
	db  *gorm.DB
	rdb *redis.Client
	log *zap.Logger
}

func NewJamService(db *gorm.DB, rdb *redis.Client, log *zap.Logger) *JamService {
	return &JamService{db: db, rdb: rdb, log: log}
}

// List returns all jams, newest first.
func (s *JamService) List(ctx context.Context) ([]dto.JamResp, error) {
	var resps []dto.JamResp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var jams []models.Jam
		if err := tx.Order("id DESC").Find(&jams).Error; err != nil {
			return internalf(err, "listing jams")
		}
		resps = make([]dto.JamResp, 0, len(jams))
		for _, jam := range jams {
			view, err := buildJamView(tx, jam)
			if err != nil {
				return err
			}
			resps = append(resps, *view)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resps, nil
}

// Get returns one jam view. The id -1 is a sentinel for the ongoing jam.
func (s *JamService) Get(ctx context.Context, id int) (*dto.JamResp, error) {
	if id == -1 {
		return s.getOngoing(ctx)
	}
	var resp *dto.JamResp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		resp, err = loadJamView(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *JamService) getOngoing(ctx context.Context) (*dto.JamResp, error) {
	// Cached id is only a hint; the row is re-checked against the
	// ongoing flag so a stale entry cannot resurrect a demoted jam.
	if id, ok := s.cachedOngoingID(ctx); ok {
		var resp *dto.JamResp
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var jam models.Jam
			if err := tx.First(&jam, "id = ? AND ongoing = ?", id, true).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil // stale cache entry
				}
				return internalf(err, "loading cached ongoing jam")
			}
			var err error
			resp, err = buildJamView(tx, jam)
			return err
		})
		if err != nil {
			return nil, err
		}
		if resp != nil {
			return resp, nil
		}
		s.invalidateOngoingCache(ctx)
	}

	var resp *dto.JamResp
	var ongoingID int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		jam, err := findOngoingJam(tx)
		if err != nil {
			return err
		}
		ongoingID = jam.ID
		resp, err = buildJamView(tx, *jam)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.cacheOngoingID(ctx, ongoingID)
	return resp, nil
}

// Create creates a jam together with its team roster. Users referenced by
// the roster are upserted: created when absent, left alone when present.
// When ongoing is requested every other jam is demoted in the same
// transaction.
func (s *JamService) Create(ctx context.Context, req dto.CreateJamReq) (*dto.JamResp, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, Unprocessablef("Jam name must not be empty.")
	}

	seenNames := make(map[string]struct{}, len(req.Teams))
	leaders := make([]int64, 0, len(req.Teams))
	for _, team := range req.Teams {
		normalized := models.NormalizeTeamName(team.Name)
		if normalized == "" {
			return nil, Unprocessablef("Team name must not be empty.")
		}
		if _, dup := seenNames[normalized]; dup {
			return nil, Conflictf("Team name %q is already taken in this jam.", team.Name)
		}
		seenNames[normalized] = struct{}{}

		leaderID, err := rosterLeader(team)
		if err != nil {
			return nil, err
		}
		leaders = append(leaders, leaderID)
	}

	var resp *dto.JamResp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.Ongoing {
			if err := demoteOngoingJams(tx); err != nil {
				return err
			}
		}

		jam := models.Jam{Name: req.Name, Ongoing: req.Ongoing}
		if err := tx.Create(&jam).Error; err != nil {
			return internalf(err, "creating jam")
		}

		for i, rawTeam := range req.Teams {
			for _, rawUser := range rawTeam.Users {
				user := models.User{ID: rawUser.UserID}
				if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error; err != nil {
					return internalf(err, "upserting roster user")
				}
			}

			team := models.Team{
				JamID:            jam.ID,
				Name:             rawTeam.Name,
				NameNormalized:   models.NormalizeTeamName(rawTeam.Name),
				LeaderID:         leaders[i],
				DiscordRoleID:    rawTeam.DiscordRoleID,
				DiscordChannelID: rawTeam.DiscordChannelID,
			}
			if err := tx.Create(&team).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return Conflictf("Team name %q is already taken in this jam.", rawTeam.Name)
				}
				return internalf(err, "creating team")
			}

			for _, rawUser := range rawTeam.Users {
				member := models.TeamMember{TeamID: team.ID, UserID: rawUser.UserID, IsLeader: rawUser.IsLeader}
				if err := tx.Create(&member).Error; err != nil {
					if errors.Is(err, gorm.ErrDuplicatedKey) {
						return Conflictf("User %d appears twice on team %q.", rawUser.UserID, rawTeam.Name)
					}
					return internalf(err, "creating team membership")
				}
			}
		}

		var err error
		resp, err = buildJamView(tx, jam)
		return err
	})
	if err != nil {
		return nil, err
	}
	if req.Ongoing {
		s.invalidateOngoingCache(ctx)
	}
	return resp, nil
}

// Modify applies a partial update. Promoting a jam to ongoing demotes all
// others atomically with the promotion.
func (s *JamService) Modify(ctx context.Context, id int, req dto.ModifyJamReq) (*dto.JamResp, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, Unprocessablef("Jam name must not be empty.")
	}

	var resp *dto.JamResp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var jam models.Jam
		if err := tx.First(&jam, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("Code Jam with specified ID does not exist.")
			}
			return internalf(err, "loading jam")
		}

		if req.Name != nil {
			if err := tx.Model(&jam).Update("name", *req.Name).Error; err != nil {
				return internalf(err, "updating jam name")
			}
		}

		if req.Ongoing != nil {
			if *req.Ongoing {
				if err := demoteOngoingJams(tx); err != nil {
					return err
				}
			}
			if err := tx.Model(&jam).Update("ongoing", *req.Ongoing).Error; err != nil {
				return internalf(err, "updating ongoing flag")
			}
		}

		var err error
		resp, err = loadJamView(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if req.Ongoing != nil {
		s.invalidateOngoingCache(ctx)
	}
	return resp, nil
}

// rosterLeader returns the single leader of a roster team, rejecting
// rosters with zero or multiple leaders.
func rosterLeader(team dto.CreateJamTeam) (int64, error) {
	var leaderID int64
	found := false
	for _, user := range team.Users {
		if !user.IsLeader {
			continue
		}
		if found {
			return 0, Unprocessablef("Team %q has more than one leader.", team.Name)
		}
		leaderID = user.UserID
		found = true
	}
	if !found {
		return 0, Unprocessablef("Team %q has no leader.", team.Name)
	}
	return leaderID, nil
}

func demoteOngoingJams(tx *gorm.DB) error {
	if err := tx.Model(&models.Jam{}).Where("ongoing = ?", true).Update("ongoing", false).Error; err != nil {
		return internalf(err, "demoting ongoing jams")
	}
	return nil
}

func (s *JamService) cachedOngoingID(ctx context.Context) (int, bool) {
	if s.rdb == nil {
		return 0, false
	}
	id, err := s.rdb.Get(ctx, ongoingJamCacheKey).Int()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("ongoing jam cache read failed", zap.Error(err))
		}
		return 0, false
	}
	return id, true
}

func (s *JamService) cacheOngoingID(ctx context.Context, id int) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Set(ctx, ongoingJamCacheKey, id, ongoingJamCacheTTL).Err(); err != nil {
		s.log.Warn("ongoing jam cache write failed", zap.Error(err))
	}
}

func (s *JamService) invalidateOngoingCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, ongoingJamCacheKey).Err(); err != nil {
		s.log.Warn("ongoing jam cache invalidation failed", zap.Error(err))
	}
}
