package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ehc32/Hostal-Acuario-sub000/models"
)

const (
	FavoriteAdded   = "added"
	FavoriteRemoved = "removed"
)

type FavoriteService struct {
	DB *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{DB: db}
}

// Toggle flips the favorite state for (userID, roomID): present -> removed,
// absent -> added. Two consecutive calls always undo each other.
func (s *FavoriteService) Toggle(userID, roomID uint) (string, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrRoomNotFound
		}
		return "", fmt.Errorf("db error checking room %d: %w", roomID, err)
	}

	var favorite models.Favorite
	err := s.DB.Where("user_id = ? AND room_id = ?", userID, roomID).First(&favorite).Error
	if err == nil {
		if err := s.DB.Delete(&favorite).Error; err != nil {
			return "", fmt.Errorf("failed to remove favorite: %w", err)
		}
		return FavoriteRemoved, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to look up favorite: %w", err)
	}

	favorite = models.Favorite{UserID: userID, RoomID: roomID}
	if err := s.DB.Create(&favorite).Error; err != nil {
		// A concurrent toggle already inserted the row; the state the caller
		// asked for is in place either way.
		if isDuplicateErr(err) {
			return FavoriteAdded, nil
		}
		return "", fmt.Errorf("failed to add favorite: %w", err)
	}
	return FavoriteAdded, nil
}

// ListForUser returns the caller's favorites with their rooms preloaded.
func (s *FavoriteService) ListForUser(userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := s.DB.Preload("Room").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve favorites: %w", err)
	}
	return favorites, nil
}
