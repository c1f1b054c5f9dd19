package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ehc32/Hostal-Acuario-sub000/middleware"
	"github.com/ehc32/Hostal-Acuario-sub000/services"
	"github.com/ehc32/Hostal-Acuario-sub000/utils"
)

type ReviewController struct {
	Reviews *services.ReviewService
	Rooms   *services.RoomService
}

func NewReviewController(reviews *services.ReviewService, rooms *services.RoomService) *ReviewController {
	return &ReviewController{Reviews: reviews, Rooms: rooms}
}

func (rc *ReviewController) ListForRoom(c *gin.Context) {
	room, err := rc.Rooms.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to retrieve room", err.Error())
		return
	}

	reviews, err := rc.Reviews.ListForRoom(room.ID)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to retrieve reviews", err.Error())
		return
	}
	c.JSON(http.StatusOK, reviews)
}

type createReviewPayload struct {
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	UserName string `json:"userName"`
}

// Create accepts anonymous reviews: when a session is present the review is
// linked to the user, otherwise only the provided display name is kept.
func (rc *ReviewController) Create(c *gin.Context) {
	room, err := rc.Rooms.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to retrieve room", err.Error())
		return
	}

	var payload createReviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}

	var userID *uint
	if id, ok := middleware.CurrentUserID(c); ok {
		userID = &id
	}

	review, err := rc.Reviews.Create(room.ID, userID, payload.Rating, payload.Comment, payload.UserName)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRating) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to create review", err.Error())
		return
	}
	c.JSON(http.StatusCreated, review)
}
