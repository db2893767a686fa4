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

type InfractionController struct {
	infractions *services.InfractionService
	log         *zap.Logger
}

func NewInfractionController(infractions *services.InfractionService, log *zap.Logger) *InfractionController {
	return &InfractionController{infractions: infractions, log: log}
}

func (ct *InfractionController) List(c *gin.Context) {
	resps, err := ct.infractions.List(c.Request.Context())
	if err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, resps)
}

func (ct *InfractionController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ParamError(c, "infraction id must be an integer")
		return
	}
	resp, err := ct.infractions.Get(c.Request.Context(), id)
	if err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ct *InfractionController) Create(c *gin.Context) {
	var req dto.CreateInfractionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}
	resp, err := ct.infractions.Create(c.Request.Context(), req)
	if err != nil {
		utils.RenderError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
