package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ehc32/Hostal-Acuario-sub000/services"
	"github.com/ehc32/Hostal-Acuario-sub000/utils"
)

// UserController exposes the admin client-management endpoints.
type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (uc *UserController) List(c *gin.Context) {
	users, err := uc.Users.List()
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to retrieve users", err.Error())
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) Update(c *gin.Context) {
	var payload services.UserUpdateInput
	if err := c.ShouldBindJSON(&payload); err != nil || payload.ID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload, id is required")
		return
	}

	user, err := uc.Users.Update(payload)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			utils.JSONError(c, http.StatusNotFound, "user not found")
		case errors.Is(err, services.ErrInvalidRole),
			errors.Is(err, services.ErrInvalidStatus):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to update user", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/admin/users?id=&permanent= — soft by default,
// hard with permanent=true.
func (uc *UserController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}
	permanent := c.Query("permanent") == "true"

	if err := uc.Users.Delete(uint(id), permanent); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "user not found")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to delete user", err.Error())
		return
	}

	if permanent {
		c.JSON(http.StatusOK, gin.H{"message": "user permanently deleted"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deactivated"})
}
