package models

import "time"

type Review struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	RoomID uint  `gorm:"index;column:room_id" json:"roomId"`
	UserID *uint `gorm:"index;column:user_id" json:"userId"` // nil for anonymous visitors

	Rating   int    `json:"rating"`
	Comment  string `gorm:"type:text" json:"comment"`
	UserName string `gorm:"size:255;column:user_name" json:"userName"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}
