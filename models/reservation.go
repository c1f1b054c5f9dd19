package models

import "time"

const (
	ReservationPending   = "PENDING"
	ReservationConfirmed = "CONFIRMED"
	ReservationCancelled = "CANCELLED"
	ReservationCompleted = "COMPLETED"

	BookingNightly = "NIGHTLY"
	BookingHourly  = "HOURLY"
)

type Reservation struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;column:user_id" json:"userId"`
	RoomID uint `gorm:"index;column:room_id" json:"roomId"`

	StartDate time.Time `gorm:"column:start_date" json:"startDate"`
	EndDate   time.Time `gorm:"column:end_date" json:"endDate"`
	Nights    int       `json:"nights"`
	Total     float64   `json:"total"`
	Status    string    `gorm:"size:20;default:PENDING;index" json:"status"`
	Type      string    `gorm:"size:20;default:NIGHTLY" json:"type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

// reservationTransitions lists the legal status moves. CANCELLED and
// COMPLETED are terminal.
var reservationTransitions = map[string][]string{
	ReservationPending:   {ReservationConfirmed, ReservationCancelled},
	ReservationConfirmed: {ReservationCancelled, ReservationCompleted},
}

func CanTransitionReservation(from, to string) bool {
	for _, allowed := range reservationTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func ValidBookingType(t string) bool {
	return t == BookingNightly || t == BookingHourly
}
