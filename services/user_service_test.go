package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehc32/Hostal-Acuario-sub000/models"
)

func strPtr(s string) *string { return &s }

func TestUserUpdateValidatesEnums(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	user := mustCreateUser(t, db, "cliente@example.com", "3001234567")

	_, err := svc.Update(UserUpdateInput{ID: user.ID, Role: strPtr("SUPERUSER")})
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = svc.Update(UserUpdateInput{ID: user.ID, Status: strPtr("FROZEN")})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	updated, err := svc.Update(UserUpdateInput{
		ID:     user.ID,
		Name:   strPtr("Cliente Uno"),
		Status: strPtr("deleted"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Name)
	assert.Equal(t, "Cliente Uno", *updated.Name)
	assert.Equal(t, models.UserStatusDeleted, updated.Status)
}

func TestUserSoftDeleteTogglesStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	user := mustCreateUser(t, db, "cliente@example.com", "3001234567")

	require.NoError(t, svc.Delete(user.ID, false))

	var loaded models.User
	require.NoError(t, db.First(&loaded, user.ID).Error)
	assert.Equal(t, models.UserStatusDeleted, loaded.Status)

	// Toggle back via update
	_, err := svc.Update(UserUpdateInput{ID: user.ID, Status: strPtr(models.UserStatusActive)})
	require.NoError(t, err)
	require.NoError(t, db.First(&loaded, user.ID).Error)
	assert.Equal(t, models.UserStatusActive, loaded.Status)
}

func TestUserPermanentDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	room := mustCreateRoom(t, db, "Suite", 100000, 0)
	user := mustCreateUser(t, db, "cliente@example.com", "3001234567")

	require.NoError(t, db.Create(&models.Reservation{
		UserID: user.ID, RoomID: room.ID,
		StartDate: day("2024-02-01"), EndDate: day("2024-02-02"),
		Nights: 1, Total: 100000,
		Status: models.ReservationPending, Type: models.BookingNightly,
	}).Error)
	require.NoError(t, db.Create(&models.Favorite{UserID: user.ID, RoomID: room.ID}).Error)
	require.NoError(t, db.Create(&models.Review{
		RoomID: room.ID, UserID: &user.ID, Rating: 4, Comment: "bien", UserName: "Cliente",
	}).Error)

	require.NoError(t, svc.Delete(user.ID, true))

	var users, reservations, favorites int64
	db.Model(&models.User{}).Where("id = ?", user.ID).Count(&users)
	db.Model(&models.Reservation{}).Where("user_id = ?", user.ID).Count(&reservations)
	db.Model(&models.Favorite{}).Where("user_id = ?", user.ID).Count(&favorites)
	assert.Equal(t, int64(0), users)
	assert.Equal(t, int64(0), reservations)
	assert.Equal(t, int64(0), favorites)

	// Reviews survive anonymized
	var review models.Review
	require.NoError(t, db.First(&review).Error)
	assert.Nil(t, review.UserID)
}

func TestUserDeleteNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	assert.ErrorIs(t, svc.Delete(999, true), ErrUserNotFound)
}
