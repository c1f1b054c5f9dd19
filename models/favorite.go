package models

import "time"

// Favorite is a toggle record: a row existing means the user favorited the
// room. The composite unique index keeps the toggle race-free at the store.
type Favorite struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index:idx_user_room,unique;column:user_id" json:"userId"`
	RoomID uint `gorm:"not null;index:idx_user_room,unique;column:room_id" json:"roomId"`

	CreatedAt time.Time `json:"created_at"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
