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

type JamController struct {
	jams *services.JamService
	log  *zap.Logger
}

func NewJamController(jams *services.JamService, log *zap.Logger) *JamController {
	return &JamController{jams: jams, log: log}
}

func (ct *JamController) List(c *gin.Context) {
	resps, err := ct.jams.List(c.Request.Context())
	if err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, resps)
}

// Get returns one jam; the id -1 resolves to the ongoing jam.
func (ct *JamController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ParamError(c, "codejam id must be an integer")
		return
	}
	resp, err := ct.jams.Get(c.Request.Context(), id)
	if err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ct *JamController) Create(c *gin.Context) {
	var req dto.CreateJamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}
	resp, err := ct.jams.Create(c.Request.Context(), req)
	if err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ct *JamController) Modify(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ParamError(c, "codejam id must be an integer")
		return
	}
	var req dto.ModifyJamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}
	resp, err := ct.jams.Modify(c.Request.Context(), id, req)
	if err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
