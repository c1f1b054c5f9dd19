package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ehc32/Hostal-Acuario-sub000/models"
	"github.com/ehc32/Hostal-Acuario-sub000/services"
	"github.com/ehc32/Hostal-Acuario-sub000/utils"
)

type ConfigController struct {
	Config *services.ConfigService
}

func NewConfigController(config *services.ConfigService) *ConfigController {
	return &ConfigController{Config: config}
}

func (cc *ConfigController) Get(c *gin.Context) {
	cfg, err := cc.Config.Get()
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to load configuration", err.Error())
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (cc *ConfigController) Update(c *gin.Context) {
	var payload models.Configuration
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}

	cfg, err := cc.Config.Update(payload)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to update configuration", err.Error())
		return
	}
	c.JSON(http.StatusOK, cfg)
}
