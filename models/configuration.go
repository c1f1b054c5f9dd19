package models

import "time"

// ConfigurationID is the fixed primary key of the singleton settings row.
const ConfigurationID = 1

type Configuration struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	SiteName string `gorm:"size:255;column:site_name" json:"siteName"`
	Logo     string `gorm:"size:255" json:"logo"`
	Address  string `gorm:"type:text" json:"address"`
	Phone    string `gorm:"size:50" json:"phone"`
	Email    string `gorm:"size:150" json:"email"`
	Whatsapp string `gorm:"size:50" json:"whatsapp"`

	ImageHostKey    string `gorm:"size:255;column:image_host_key" json:"imageHostKey"`
	ImageHostSecret string `gorm:"size:255;column:image_host_secret" json:"imageHostSecret"`

	SMTPHost     string `gorm:"size:255;column:smtp_host" json:"smtpHost"`
	SMTPPort     string `gorm:"size:10;column:smtp_port" json:"smtpPort"`
	SMTPUser     string `gorm:"size:255;column:smtp_user" json:"smtpUser"`
	SMTPPassword string `gorm:"size:255;column:smtp_password" json:"smtpPassword"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
