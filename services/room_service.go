package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/ehc32/Hostal-Acuario-sub000/models"
	"github.com/ehc32/Hostal-Acuario-sub000/utils"
)

var (
	ErrRoomNotFound     = errors.New("room_not_found")
	ErrRoomTitleMissing = errors.New("room title is required")
	ErrTooManyImages    = errors.New("a room supports at most 4 images")
	ErrInvalidClimate   = errors.New("invalid climate value")
	ErrSlugExhausted    = errors.New("could not assign a unique slug")
)

const maxSlugAttempts = 50

// isDuplicateErr detects unique-index violations across drivers (MySQL says
// "Duplicate entry", SQLite says "UNIQUE constraint failed").
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint")
}

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func validateImages(raw []byte) error {
	if len(raw) == 0 {
		return nil
	}
	var images []string
	if err := json.Unmarshal(raw, &images); err != nil {
		return fmt.Errorf("images must be an array of URLs: %w", err)
	}
	if len(images) > models.MaxRoomImages {
		return ErrTooManyImages
	}
	return nil
}

// Create validates and persists a room, assigning a unique slug. Uniqueness
// is backed by the index on rooms.slug: a probe picks the candidate and a
// retry with the next numeric suffix handles the insert racing another
// creation with the same title.
func (s *RoomService) Create(room *models.Room) error {
	room.Title = strings.TrimSpace(room.Title)
	if room.Title == "" {
		return ErrRoomTitleMissing
	}
	if room.Climate == "" {
		room.Climate = models.ClimateNone
	}
	if !models.ValidClimate(room.Climate) {
		return ErrInvalidClimate
	}
	if err := validateImages(room.Images); err != nil {
		return err
	}

	base := room.Slug
	if strings.TrimSpace(base) == "" {
		base = room.Title
	}
	base = utils.Slugify(base)

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		candidate := utils.SuffixedSlug(base, attempt)

		var count int64
		if err := s.DB.Model(&models.Room{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to probe slug %q: %w", candidate, err)
		}
		if count > 0 {
			continue
		}

		room.Slug = candidate
		err := s.DB.Create(room).Error
		if err == nil {
			return nil
		}
		if isDuplicateErr(err) {
			log.Printf("slug collision on %q (attempt %d), retrying", candidate, attempt+1)
			continue
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	return ErrSlugExhausted
}

func (s *RoomService) GetAll(climate string) ([]models.Room, error) {
	var rooms []models.Room
	q := s.DB.Order("created_at DESC")
	if climate != "" {
		q = q.Where("climate = ?", strings.ToUpper(climate))
	}
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to retrieve room: %w", err)
	}
	return &room, nil
}

func (s *RoomService) GetBySlug(slug string) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Where("slug = ?", slug).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to retrieve room: %w", err)
	}
	return &room, nil
}

// Update applies a partial update. Identity and derived columns are stripped;
// the slug only changes when the payload names one explicitly.
func (s *RoomService) Update(id uint, updates map[string]interface{}) (*models.Room, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	for _, k := range []string{"id", "ID", "created_at", "updated_at", "rating", "reviewsCount", "reviews_count"} {
		delete(updates, k)
	}

	if raw, ok := updates["climate"]; ok {
		climate, _ := raw.(string)
		climate = strings.ToUpper(strings.TrimSpace(climate))
		if !models.ValidClimate(climate) {
			return nil, ErrInvalidClimate
		}
		updates["climate"] = climate
	}

	if raw, ok := updates["images"]; ok {
		encoded, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid images payload: %w", err)
		}
		if err := validateImages(encoded); err != nil {
			return nil, err
		}
		updates["images"] = encoded
	}
	if raw, ok := updates["amenities"]; ok {
		encoded, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid amenities payload: %w", err)
		}
		updates["amenities"] = encoded
	}

	if raw, ok := updates["slug"]; ok {
		slug, _ := raw.(string)
		updates["slug"] = utils.Slugify(slug)
	}

	if err := s.DB.Model(room).Updates(updates).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, fmt.Errorf("slug already in use: %w", err)
		}
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	return s.GetByID(id)
}

// DeleteCascade removes a room together with every dependent reservation,
// review and favorite in a single transaction.
func (s *RoomService) DeleteCascade(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		if err := tx.Where("room_id = ?", id).Delete(&models.Reservation{}).Error; err != nil {
			return fmt.Errorf("failed to delete reservations for room %d: %w", id, err)
		}
		if err := tx.Where("room_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return fmt.Errorf("failed to delete reviews for room %d: %w", id, err)
		}
		if err := tx.Where("room_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return fmt.Errorf("failed to delete favorites for room %d: %w", id, err)
		}
		if err := tx.Delete(&room).Error; err != nil {
			return fmt.Errorf("failed to delete room %d: %w", id, err)
		}
		return nil
	})
}

type ImportResult struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// Import maps loosely-typed rows onto rooms. Failures are per-row: a bad row
// is counted and skipped, never aborting the batch.
func (s *RoomService) Import(rows []map[string]interface{}) ImportResult {
	result := ImportResult{}
	for i, row := range rows {
		room, err := MapImportRow(row)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}

		room.Slug = utils.ImportSlug(room.Title)
		if err := s.DB.Create(&room).Error; err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}
	return result
}
