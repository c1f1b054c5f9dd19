package services

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ehc32/Hostal-Acuario-sub000/models"
	"github.com/ehc32/Hostal-Acuario-sub000/utils"
)

var (
	ErrCheckoutBeforeCheckin = errors.New("checkout must be after checkin")
	ErrHourlyNotSupported    = errors.New("room does not support hourly booking")
	ErrInvalidBookingType    = errors.New("invalid booking type")
	ErrGuestDataRequired     = errors.New("guest_data_required")
	ErrGuestAccountExists    = errors.New("account_exists_login_required")
	ErrReservationNotFound   = errors.New("reservation_not_found")
	ErrInvalidTransition     = errors.New("invalid_status_transition")
)

// ReservationService wraps *gorm.DB to keep reservation logic out of handlers.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// Quote computes nights and total for a stay. Nightly stays are billed per
// started night (ceiling of the elapsed time); hourly stays are a flat fee of
// the room's hourly rate, independent of the actual delta.
func Quote(room models.Room, bookingType string, startDate, endDate time.Time) (int, float64, error) {
	diffMs := endDate.Sub(startDate).Milliseconds()

	switch bookingType {
	case models.BookingNightly:
		nights := int(math.Ceil(float64(diffMs) / 86400000.0))
		if nights <= 0 {
			return 0, 0, ErrCheckoutBeforeCheckin
		}
		return nights, float64(nights) * room.Price, nil

	case models.BookingHourly:
		if diffMs < 0 {
			return 0, 0, ErrCheckoutBeforeCheckin
		}
		if room.PriceHour <= 0 {
			return 0, 0, ErrHourlyNotSupported
		}
		return 0, room.PriceHour, nil
	}

	return 0, 0, ErrInvalidBookingType
}

type GuestInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CreateReservationInput struct {
	RoomID    uint        `json:"roomId"`
	Type      string      `json:"type"`
	StartDate time.Time   `json:"startDate"`
	EndDate   time.Time   `json:"endDate"`
	Guest     *GuestInput `json:"guest,omitempty"`
}

// resolveGuestUser finds or creates the account for an unauthenticated
// checkout. An existing account matching the email OR phone is a conflict:
// the caller must log in instead of silently booking on someone else's
// account.
func (s *ReservationService) resolveGuestUser(guest *GuestInput) (uint, error) {
	if guest == nil {
		return 0, ErrGuestDataRequired
	}
	name := strings.TrimSpace(guest.Name)
	email := strings.ToLower(strings.TrimSpace(guest.Email))
	phone := strings.TrimSpace(guest.Phone)
	if name == "" || email == "" || phone == "" {
		return 0, ErrGuestDataRequired
	}

	var existing models.User
	err := s.DB.Where("email = ? OR phone = ?", email, phone).First(&existing).Error
	if err == nil {
		return 0, ErrGuestAccountExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("failed to look up guest account: %w", err)
	}

	// Low-friction convenience for walk-in guests: the phone number doubles
	// as the initial password.
	hash, err := bcrypt.GenerateFromPassword([]byte(phone), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash guest password: %w", err)
	}

	user := models.User{
		Name:     &name,
		Email:    email,
		Phone:    phone,
		Password: string(hash),
		Role:     models.RoleClient,
		Status:   models.UserStatusActive,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		// Unique index on email is the real uniqueness guard; a concurrent
		// checkout with the same email lands here instead of duplicating.
		if isDuplicateErr(err) {
			return 0, ErrGuestAccountExists
		}
		return 0, fmt.Errorf("failed to create guest account: %w", err)
	}
	return user.ID, nil
}

// Create validates, prices and persists a reservation with status PENDING.
// userID == 0 means unauthenticated; the guest payload is then required.
func (s *ReservationService) Create(userID uint, in CreateReservationInput) (*models.Reservation, error) {
	var room models.Room
	if err := s.DB.First(&room, in.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("db error checking room %d: %w", in.RoomID, err)
	}

	bookingType := strings.ToUpper(strings.TrimSpace(in.Type))
	if bookingType == "" {
		bookingType = models.BookingNightly
	}
	if !models.ValidBookingType(bookingType) {
		return nil, ErrInvalidBookingType
	}

	nights, total, err := Quote(room, bookingType, in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	if userID == 0 {
		userID, err = s.resolveGuestUser(in.Guest)
		if err != nil {
			return nil, err
		}
	}

	reservation := models.Reservation{
		UserID:    userID,
		RoomID:    room.ID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Nights:    nights,
		Total:     total,
		Status:    models.ReservationPending,
		Type:      bookingType,
	}
	if err := s.DB.Create(&reservation).Error; err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.notifyReservation(&reservation, room)

	if err := s.DB.Preload("Room").First(&reservation, reservation.ID).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// notifyReservation sends the confirmation email best-effort; a mail failure
// never fails the checkout.
func (s *ReservationService) notifyReservation(res *models.Reservation, room models.Room) {
	var user models.User
	if err := s.DB.First(&user, res.UserID).Error; err != nil {
		log.Printf("warning: reservation %d email skipped, user load failed: %v", res.ID, err)
		return
	}
	var cfg models.Configuration
	if err := s.DB.First(&cfg, models.ConfigurationID).Error; err != nil {
		log.Printf("warning: reservation %d email skipped, configuration load failed: %v", res.ID, err)
		return
	}
	name := user.Email
	if user.Name != nil && *user.Name != "" {
		name = *user.Name
	}
	if err := utils.SendReservationEmail(cfg, user.Email, name, room.Title, *res); err != nil {
		log.Printf("warning: failed to send reservation email for %d: %v", res.ID, err)
	}
}

func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.Preload("Room").Preload("User").First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to retrieve reservation: %w", err)
	}
	return &reservation, nil
}

// List returns all reservations for admins, or the caller's own otherwise.
func (s *ReservationService) List(userID uint, admin bool) ([]models.Reservation, error) {
	var list []models.Reservation
	q := s.DB.Preload("Room").Order("created_at DESC")
	if admin {
		q = q.Preload("User")
	} else {
		q = q.Where("user_id = ?", userID)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	return list, nil
}

// UpdateStatus applies a status transition, enforcing the legal moves
// server-side: PENDING -> CONFIRMED|CANCELLED, CONFIRMED -> CANCELLED|COMPLETED.
func (s *ReservationService) UpdateStatus(id uint, newStatus string) (*models.Reservation, error) {
	newStatus = strings.ToUpper(strings.TrimSpace(newStatus))

	var reservation models.Reservation
	if err := s.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to load reservation: %w", err)
	}

	if !models.CanTransitionReservation(reservation.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	if err := s.DB.Model(&reservation).Update("status", newStatus).Error; err != nil {
		return nil, fmt.Errorf("failed to update reservation status: %w", err)
	}
	reservation.Status = newStatus
	return &reservation, nil
}

func (s *ReservationService) Delete(id uint) error {
	result := s.DB.Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete reservation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}
