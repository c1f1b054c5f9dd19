package models

import "time"

const (
	RoleAdmin  = "ADMIN"
	RoleClient = "CLIENT"

	UserStatusActive  = "ACTIVE"
	UserStatusDeleted = "DELETED"
)

type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     *string `gorm:"size:255" json:"name"`
	Email    string  `gorm:"uniqueIndex;size:150" json:"email"`
	Phone    string  `gorm:"size:50;index" json:"phone"`
	Password string  `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	Role     string  `gorm:"size:20;default:CLIENT" json:"role"`
	Status   string  `gorm:"size:20;default:ACTIVE" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
