package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehc32/Hostal-Acuario-sub000/models"
)

func TestToggleFavoriteIsItsOwnInverse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFavoriteService(db)
	room := mustCreateRoom(t, db, "Suite", 100000, 0)
	user := mustCreateUser(t, db, "cliente@example.com", "3001234567")

	status, err := svc.Toggle(user.ID, room.ID)
	require.NoError(t, err)
	assert.Equal(t, FavoriteAdded, status)

	status, err = svc.Toggle(user.ID, room.ID)
	require.NoError(t, err)
	assert.Equal(t, FavoriteRemoved, status)

	var count int64
	db.Model(&models.Favorite{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// Third toggle adds it back
	status, err = svc.Toggle(user.ID, room.ID)
	require.NoError(t, err)
	assert.Equal(t, FavoriteAdded, status)
}

func TestToggleFavoriteUnknownRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFavoriteService(db)
	user := mustCreateUser(t, db, "cliente@example.com", "3001234567")

	_, err := svc.Toggle(user.ID, 999)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestListForUserPreloadsRooms(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFavoriteService(db)
	room := mustCreateRoom(t, db, "Suite Ñandú", 100000, 0)
	alice := mustCreateUser(t, db, "alice@example.com", "3001")
	bob := mustCreateUser(t, db, "bob@example.com", "3002")

	_, err := svc.Toggle(alice.ID, room.ID)
	require.NoError(t, err)
	_, err = svc.Toggle(bob.ID, room.ID)
	require.NoError(t, err)

	favorites, err := svc.ListForUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, room.ID, favorites[0].RoomID)
	assert.Equal(t, "suite-nandu", favorites[0].Room.Slug)
}
