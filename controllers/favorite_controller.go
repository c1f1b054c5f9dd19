package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ehc32/Hostal-Acuario-sub000/middleware"
	"github.com/ehc32/Hostal-Acuario-sub000/services"
	"github.com/ehc32/Hostal-Acuario-sub000/utils"
)

type FavoriteController struct {
	Favorites *services.FavoriteService
}

func NewFavoriteController(favorites *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Favorites: favorites}
}

func (fc *FavoriteController) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	favorites, err := fc.Favorites.ListForUser(userID)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to retrieve favorites", err.Error())
		return
	}
	c.JSON(http.StatusOK, favorites)
}

type togglePayload struct {
	RoomID uint `json:"roomId"`
}

func (fc *FavoriteController) Toggle(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var payload togglePayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.RoomID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "roomId is required")
		return
	}

	status, err := fc.Favorites.Toggle(userID, payload.RoomID)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to toggle favorite", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}
