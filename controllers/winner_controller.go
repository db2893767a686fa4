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

type WinnerController struct {
	winners *services.WinnerService
	log     *zap.Logger
}

func NewWinnerController(winners *services.WinnerService, log *zap.Logger) *WinnerController {
	return &WinnerController{winners: winners, log: log}
}

func (ct *WinnerController) Get(c *gin.Context) {
	jamID, err := strconv.Atoi(c.Param("jam_id"))
	if err != nil {
		utils.ParamError(c, "jam id must be an integer")
		return
	}
	resps, err := ct.winners.Get(c.Request.Context(), jamID)
	if err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, resps)
}

// Create accepts the winner batch for a jam as a bare JSON array.
func (ct *WinnerController) Create(c *gin.Context) {
	jamID, err := strconv.Atoi(c.Param("jam_id"))
	if err != nil {
		utils.ParamError(c, "jam id must be an integer")
		return
	}
	var entries []dto.WinnerEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		utils.BindError(c, err)
		return
	}
	resps, err := ct.winners.Create(c.Request.Context(), jamID, entries)
	if err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, resps)
}
