package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/ehc32/Hostal-Acuario-sub000/models"
)

func TestCreateRoomAssignsSlug(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db)

	room := models.Room{Title: "Suite Ñandú!", Price: 100000}
	require.NoError(t, svc.Create(&room))
	assert.Equal(t, "suite-nandu", room.Slug)
}

func TestCreateRoomSlugCollisions(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db)

	first := models.Room{Title: "Suite Ñandú", Price: 100000}
	second := models.Room{Title: "Suite Nandu", Price: 110000}
	third := models.Room{Title: "suite nandu!!", Price: 120000}

	require.NoError(t, svc.Create(&first))
	require.NoError(t, svc.Create(&second))
	require.NoError(t, svc.Create(&third))

	assert.Equal(t, "suite-nandu", first.Slug)
	assert.Equal(t, "suite-nandu-1", second.Slug)
	assert.Equal(t, "suite-nandu-2", third.Slug)
}

func TestCreateRoomValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db)

	err := svc.Create(&models.Room{Title: "   "})
	assert.ErrorIs(t, err, ErrRoomTitleMissing)

	err = svc.Create(&models.Room{Title: "Suite", Climate: "GLACIAR"})
	assert.ErrorIs(t, err, ErrInvalidClimate)

	images, _ := json.Marshal([]string{"a", "b", "c", "d", "e"})
	err = svc.Create(&models.Room{Title: "Suite", Images: datatypes.JSON(images)})
	assert.ErrorIs(t, err, ErrTooManyImages)
}

func TestDeleteCascade(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db)
	room := mustCreateRoom(t, db, "Suite", 100000, 0)
	other := mustCreateRoom(t, db, "Doble", 80000, 0)
	user := mustCreateUser(t, db, "cliente@example.com", "3001234567")

	seed := func(roomID uint) {
		require.NoError(t, db.Create(&models.Reservation{
			UserID: user.ID, RoomID: roomID,
			StartDate: day("2024-02-01"), EndDate: day("2024-02-02"),
			Nights: 1, Total: 100000,
			Status: models.ReservationPending, Type: models.BookingNightly,
		}).Error)
		require.NoError(t, db.Create(&models.Review{
			RoomID: roomID, Rating: 5, Comment: "excelente", UserName: "Ana",
		}).Error)
		require.NoError(t, db.Create(&models.Favorite{UserID: user.ID, RoomID: roomID}).Error)
	}
	seed(room.ID)
	seed(other.ID)

	require.NoError(t, svc.DeleteCascade(room.ID))

	count := func(model interface{}, roomID uint) int64 {
		var n int64
		db.Model(model).Where("room_id = ?", roomID).Count(&n)
		return n
	}

	// No orphans remain for the deleted room
	assert.Equal(t, int64(0), count(&models.Reservation{}, room.ID))
	assert.Equal(t, int64(0), count(&models.Review{}, room.ID))
	assert.Equal(t, int64(0), count(&models.Favorite{}, room.ID))
	var rooms int64
	db.Model(&models.Room{}).Where("id = ?", room.ID).Count(&rooms)
	assert.Equal(t, int64(0), rooms)

	// The other room's records are untouched
	assert.Equal(t, int64(1), count(&models.Reservation{}, other.ID))
	assert.Equal(t, int64(1), count(&models.Review{}, other.ID))
	assert.Equal(t, int64(1), count(&models.Favorite{}, other.ID))
}

func TestDeleteCascadeNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db)
	assert.ErrorIs(t, svc.DeleteCascade(999), ErrRoomNotFound)
}

func TestUpdateRoomStripsProtectedFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db)
	room := mustCreateRoom(t, db, "Suite", 100000, 0)

	updated, err := svc.Update(room.ID, map[string]interface{}{
		"id":      999,
		"title":   "Suite Renovada",
		"price":   150000.0,
		"climate": "aire",
	})
	require.NoError(t, err)

	assert.Equal(t, room.ID, updated.ID)
	assert.Equal(t, "Suite Renovada", updated.Title)
	assert.Equal(t, 150000.0, updated.Price)
	assert.Equal(t, models.ClimateAire, updated.Climate)
	// Title changes do not silently re-slug
	assert.Equal(t, "suite", updated.Slug)
}

func TestImportCountsPerRowFailures(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db)

	rows := []map[string]interface{}{
		{"titulo": "Habitación Uno", "precio": "100.000", "clima": "aire acondicionado"},
		{"titulo": "Habitación Dos", "precio": "sin precio"},
		{"title": "Room Three", "price": "$ 90,000", "climate": "fan"},
	}

	result := svc.Import(rows)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "row 2")

	var rooms []models.Room
	require.NoError(t, db.Order("id").Find(&rooms).Error)
	require.Len(t, rooms, 2)
	assert.Equal(t, 100000.0, rooms[0].Price)
	assert.Equal(t, models.ClimateAire, rooms[0].Climate)
	assert.Equal(t, 90000.0, rooms[1].Price)
	assert.Equal(t, models.ClimateVentilador, rooms[1].Climate)
}

func TestMapImportRow(t *testing.T) {
	t.Run("spanish aliases win first non-empty match", func(t *testing.T) {
		room, err := MapImportRow(map[string]interface{}{
			"nombre":      "Cabaña del Río",
			"descripcion": "Vista al río",
			"precio":      "120.000",
			"precio_hora": "20000",
			"titular":     "Don Rafael",
			"imagenes":    "a.jpg; b.jpg\nc.jpg",
			"servicios":   []interface{}{"wifi", "tv"},
		})
		require.NoError(t, err)

		assert.Equal(t, "Cabaña del Río", room.Title)
		assert.Equal(t, "Vista al río", room.Description)
		assert.Equal(t, 120000.0, room.Price)
		assert.Equal(t, 20000.0, room.PriceHour)
		assert.Equal(t, "Don Rafael", room.Holder)

		var images []string
		require.NoError(t, json.Unmarshal(room.Images, &images))
		assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, images)

		var amenities []string
		require.NoError(t, json.Unmarshal(room.Amenities, &amenities))
		assert.Equal(t, []string{"wifi", "tv"}, amenities)
	})

	t.Run("missing title fails the row", func(t *testing.T) {
		_, err := MapImportRow(map[string]interface{}{"precio": "100"})
		assert.Error(t, err)
	})

	t.Run("missing price falls back to the default", func(t *testing.T) {
		room, err := MapImportRow(map[string]interface{}{"title": "Sin Precio"})
		require.NoError(t, err)
		assert.Equal(t, defaultImportPrice, room.Price)
	})

	t.Run("images capped at four", func(t *testing.T) {
		room, err := MapImportRow(map[string]interface{}{
			"title":  "Muchas Fotos",
			"images": "1.jpg,2.jpg,3.jpg,4.jpg,5.jpg,6.jpg",
		})
		require.NoError(t, err)

		var images []string
		require.NoError(t, json.Unmarshal(room.Images, &images))
		assert.Len(t, images, models.MaxRoomImages)
	})

	t.Run("climate token matching", func(t *testing.T) {
		cases := map[string]string{
			"Aire Acondicionado": models.ClimateAire,
			"a/c":                models.ClimateAire,
			"Ventilador de Techo": models.ClimateVentilador,
			"fan":                 models.ClimateVentilador,
			"ninguno":             models.ClimateNone,
			"":                    models.ClimateNone,
		}
		for raw, want := range cases {
			room, err := MapImportRow(map[string]interface{}{"title": "X Room", "clima": raw})
			require.NoError(t, err)
			assert.Equal(t, want, room.Climate, "clima=%q", raw)
		}
	})
}
