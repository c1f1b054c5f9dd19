package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ehc32/Hostal-Acuario-sub000/models"
	"github.com/ehc32/Hostal-Acuario-sub000/services"
	"github.com/ehc32/Hostal-Acuario-sub000/utils"
)

// AdminRoomController exposes the back-office room CRUD and the bulk import.
type AdminRoomController struct {
	Rooms *services.RoomService
}

func NewAdminRoomController(rooms *services.RoomService) *AdminRoomController {
	return &AdminRoomController{Rooms: rooms}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func (ac *AdminRoomController) List(c *gin.Context) {
	rooms, err := ac.Rooms.GetAll(c.Query("climate"))
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to retrieve rooms", err.Error())
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (ac *AdminRoomController) Create(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}

	if err := ac.Rooms.Create(&room); err != nil {
		switch {
		case errors.Is(err, services.ErrRoomTitleMissing),
			errors.Is(err, services.ErrTooManyImages),
			errors.Is(err, services.ErrInvalidClimate):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to create room", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, room)
}

func (ac *AdminRoomController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	room, err := ac.Rooms.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to retrieve room", err.Error())
		return
	}
	c.JSON(http.StatusOK, room)
}

func (ac *AdminRoomController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}

	room, err := ac.Rooms.Update(id, updates)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, "room not found")
		case errors.Is(err, services.ErrTooManyImages),
			errors.Is(err, services.ErrInvalidClimate):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to update room", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, room)
}

func (ac *AdminRoomController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ac.Rooms.DeleteCascade(id); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to delete room", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "room deleted"})
}

func (ac *AdminRoomController) Import(c *gin.Context) {
	var rows []map[string]interface{}
	if err := c.ShouldBindJSON(&rows); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "expected an array of rows", err.Error())
		return
	}
	if len(rows) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "no rows to import")
		return
	}

	result := ac.Rooms.Import(rows)
	c.JSON(http.StatusOK, result)
}
