package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ehc32/Hostal-Acuario-sub000/models"
)

type ConfigService struct {
	DB *gorm.DB
}

func NewConfigService(db *gorm.DB) *ConfigService {
	return &ConfigService{DB: db}
}

// Get returns the singleton configuration row, creating it with the default
// site name on first read.
func (s *ConfigService) Get() (*models.Configuration, error) {
	var cfg models.Configuration
	err := s.DB.First(&cfg, models.ConfigurationID).Error
	if err == nil {
		return &cfg, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg = models.Configuration{
		ID:       models.ConfigurationID,
		SiteName: "Hostal Acuario",
	}
	if err := s.DB.Create(&cfg).Error; err != nil {
		if isDuplicateErr(err) {
			// Concurrent first read created it; load that one.
			if err := s.DB.First(&cfg, models.ConfigurationID).Error; err == nil {
				return &cfg, nil
			}
		}
		return nil, fmt.Errorf("failed to create configuration: %w", err)
	}
	return &cfg, nil
}

// Update overwrites the singleton row with the given fields.
func (s *ConfigService) Update(in models.Configuration) (*models.Configuration, error) {
	cfg, err := s.Get()
	if err != nil {
		return nil, err
	}

	cfg.SiteName = in.SiteName
	cfg.Logo = in.Logo
	cfg.Address = in.Address
	cfg.Phone = in.Phone
	cfg.Email = in.Email
	cfg.Whatsapp = in.Whatsapp
	cfg.ImageHostKey = in.ImageHostKey
	cfg.ImageHostSecret = in.ImageHostSecret
	cfg.SMTPHost = in.SMTPHost
	cfg.SMTPPort = in.SMTPPort
	cfg.SMTPUser = in.SMTPUser
	cfg.SMTPPassword = in.SMTPPassword

	if err := s.DB.Save(cfg).Error; err != nil {
		return nil, fmt.Errorf("failed to update configuration: %w", err)
	}
	return cfg, nil
}
