package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehc32/Hostal-Acuario-sub000/models"
)

func TestConfigAutoCreatedOnFirstRead(t *testing.T) {
	db := setupTestDB(t)
	svc := NewConfigService(db)

	cfg, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, uint(models.ConfigurationID), cfg.ID)
	assert.Equal(t, "Hostal Acuario", cfg.SiteName)

	// Second read returns the same row, not another one
	again, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, cfg.ID, again.ID)

	var count int64
	db.Model(&models.Configuration{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestConfigUpdatePersistsFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewConfigService(db)

	updated, err := svc.Update(models.Configuration{
		SiteName: "Hostal Acuario Plaza",
		Phone:    "+57 300 123 4567",
		Email:    "contacto@hostalacuario.com",
		SMTPHost: "smtp.example.com",
		SMTPPort: "587",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hostal Acuario Plaza", updated.SiteName)

	cfg, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "Hostal Acuario Plaza", cfg.SiteName)
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
	assert.Equal(t, uint(models.ConfigurationID), cfg.ID)
}
