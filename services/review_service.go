package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/ehc32/Hostal-Acuario-sub000/models"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// AnonymousReviewer is shown when a visitor leaves no name.
const AnonymousReviewer = "Anónimo"

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// Create stores a review and recomputes the room's rating aggregate inside
// the same transaction, so the denormalized columns never drift.
func (s *ReviewService) Create(roomID uint, userID *uint, rating int, comment, userName string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	userName = strings.TrimSpace(userName)
	if userName == "" {
		userName = AnonymousReviewer
	}

	review := models.Review{
		RoomID:   roomID,
		UserID:   userID,
		Rating:   rating,
		Comment:  strings.TrimSpace(comment),
		UserName: userName,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		if err := tx.Create(&review).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}

		var agg struct {
			Count int64
			Avg   float64
		}
		if err := tx.Model(&models.Review{}).
			Select("COUNT(*) as count, COALESCE(AVG(rating), 0) as avg").
			Where("room_id = ?", roomID).
			Scan(&agg).Error; err != nil {
			return fmt.Errorf("failed to aggregate reviews: %w", err)
		}

		return tx.Model(&models.Room{}).Where("id = ?", roomID).
			Updates(map[string]interface{}{
				"rating":        agg.Avg,
				"reviews_count": agg.Count,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewService) ListForRoom(roomID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.DB.Where("room_id = ?", roomID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	return reviews, nil
}
