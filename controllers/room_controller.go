package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ehc32/Hostal-Acuario-sub000/config"
	"github.com/ehc32/Hostal-Acuario-sub000/models"
	"github.com/ehc32/Hostal-Acuario-sub000/utils"
)

// Public room reads: the browsing pages fetch these without authentication.

func GetRooms(c *gin.Context) {
	var rooms []models.Room
	q := config.DB.Order("created_at DESC")
	if climate := c.Query("climate"); climate != "" {
		q = q.Where("climate = ?", climate)
	}
	if err := q.Find(&rooms).Error; err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to retrieve rooms", err.Error())
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func GetRoomBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var room models.Room
	if err := config.DB.Where("slug = ?", slug).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to retrieve room", err.Error())
		return
	}
	c.JSON(http.StatusOK, room)
}
