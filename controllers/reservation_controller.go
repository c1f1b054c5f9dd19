package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ehc32/Hostal-Acuario-sub000/middleware"
	"github.com/ehc32/Hostal-Acuario-sub000/services"
	"github.com/ehc32/Hostal-Acuario-sub000/utils"
)

type ReservationController struct {
	Reservations *services.ReservationService
}

func NewReservationController(reservations *services.ReservationService) *ReservationController {
	return &ReservationController{Reservations: reservations}
}

type createReservationPayload struct {
	RoomID    uint                 `json:"roomId"`
	Type      string               `json:"type"`
	StartDate string               `json:"startDate"`
	EndDate   string               `json:"endDate"`
	Guest     *services.GuestInput `json:"guest"`
}

// parseDate accepts the date-only form the booking widget sends and full
// RFC3339 timestamps for hourly sessions.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func (rc *ReservationController) Create(c *gin.Context) {
	var payload createReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}

	start, err := parseDate(payload.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid startDate")
		return
	}
	end, err := parseDate(payload.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid endDate")
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	reservation, err := rc.Reservations.Create(userID, services.CreateReservationInput{
		RoomID:    payload.RoomID,
		Type:      payload.Type,
		StartDate: start,
		EndDate:   end,
		Guest:     payload.Guest,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, "room not found")
		case errors.Is(err, services.ErrGuestAccountExists):
			utils.JSONError(c, http.StatusConflict, "an account with this email or phone already exists, please log in")
		case errors.Is(err, services.ErrCheckoutBeforeCheckin),
			errors.Is(err, services.ErrHourlyNotSupported),
			errors.Is(err, services.ErrInvalidBookingType),
			errors.Is(err, services.ErrGuestDataRequired):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to create reservation", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, reservation)
}

func (rc *ReservationController) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	list, err := rc.Reservations.List(userID, middleware.IsAdmin(c))
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to retrieve reservations", err.Error())
		return
	}
	c.JSON(http.StatusOK, list)
}

func (rc *ReservationController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reservation, err := rc.Reservations.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.JSONError(c, http.StatusNotFound, "reservation not found")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to retrieve reservation", err.Error())
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	if !middleware.IsAdmin(c) && reservation.UserID != userID {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	c.JSON(http.StatusOK, reservation)
}

type updateStatusPayload struct {
	Status string `json:"status"`
}

func (rc *ReservationController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload updateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Status == "" {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	reservation, err := rc.Reservations.UpdateStatus(id, payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReservationNotFound):
			utils.JSONError(c, http.StatusNotFound, "reservation not found")
		case errors.Is(err, services.ErrInvalidTransition):
			utils.JSONError(c, http.StatusBadRequest, "invalid status transition")
		default:
			utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to update reservation", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, reservation)
}

func (rc *ReservationController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := rc.Reservations.Delete(id); err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.JSONError(c, http.StatusNotFound, "reservation not found")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "failed to delete reservation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation deleted"})
}
