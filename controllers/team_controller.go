package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jamapi/services"
	"jamapi/utils"
)

type TeamController struct {
	teams *services.TeamService
	log   *zap.Logger
}

func NewTeamController(teams *services.TeamService, log *zap.Logger) *TeamController {
	return &TeamController{teams: teams, log: log}
}

func (ct *TeamController) List(c *gin.Context) {
	resps, err := ct.teams.List(c.Request.Context())
	if err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, resps)
}

func (ct *TeamController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ParamError(c, "team id must be an integer")
		return
	}
	resp, err := ct.teams.Get(c.Request.Context(), id)
	if err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Find matches a team by name, case-insensitively. Without a jam_id the
// search is scoped to the ongoing jam.
func (ct *TeamController) Find(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		utils.ParamError(c, "name query parameter is required")
		return
	}

	var jamID *int
	if raw := c.Query("jam_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			utils.ParamError(c, "jam_id must be an integer")
			return
		}
		jamID = &id
	}

	resp, err := ct.teams.FindByName(c.Request.Context(), name, jamID)
	if err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ct *TeamController) Users(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ParamError(c, "team id must be an integer")
		return
	}
	resps, err := ct.teams.Users(c.Request.Context(), id)
	if err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, resps)
}

func (ct *TeamController) AddUser(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ParamError(c, "team id must be an integer")
		return
	}
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		utils.ParamError(c, "user id must be an integer")
		return
	}

	isLeader := false
	if raw := c.Query("is_leader"); raw != "" {
		isLeader, err = strconv.ParseBool(raw)
		if err != nil {
			utils.ParamError(c, "is_leader must be a boolean")
			return
		}
	}

	resp, err := ct.teams.AddUser(c.Request.Context(), teamID, userID, isLeader)
	if err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ct *TeamController) RemoveUser(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ParamError(c, "team id must be an integer")
		return
	}
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		utils.ParamError(c, "user id must be an integer")
		return
	}

	if err := ct.teams.RemoveUser(c.Request.Context(), teamID, userID); err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
