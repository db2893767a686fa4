package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jamapi/dto"
	"jamapi/services"
	"jamapi/utils"
)

type UserController struct {
	users *services.UserService
	log   *zap.Logger
}

func NewUserController(users *services.UserService, log *zap.Logger) *UserController {
	return &UserController{users: users, log: log}
}

func (ct *UserController) List(c *gin.Context) {
	resps, err := ct.users.List(c.Request.Context())
	if err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, resps)
}

func (ct *UserController) Get(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	resp, err := ct.users.Get(c.Request.Context(), id)
	if err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ct *UserController) Create(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	resp, err := ct.users.Create(c.Request.Context(), id)
	if err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ct *UserController) CurrentTeam(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	resp, err := ct.users.CurrentTeam(c.Request.Context(), id)
	if err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ct *UserController) GetDetail(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	jamID, err := strconv.Atoi(c.Param("jam_id"))
	if err != nil {
		utils.ParamError(c, "jam id must be an integer")
		return
	}
	resp, err := ct.users.GetDetail(c.Request.Context(), userID, jamID)
	if err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ct *UserController) UpsertDetail(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	jamID, err := strconv.Atoi(c.Param("jam_id"))
	if err != nil {
		utils.ParamError(c, "jam id must be an integer")
		return
	}
	var req dto.UpsertJamDetailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}
	resp, err := ct.users.UpsertDetail(c.Request.Context(), userID, jamID, req)
	if err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// userIDParam parses the snowflake id path segment; snowflakes need the
// full 64-bit range.
func userIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ParamError(c, "user id must be an integer")
		return 0, false
	}
	return id, true
}
